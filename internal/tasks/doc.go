// Package tasks orchestrates multi-step lyrics operations with real-time progress reporting.
//
// # Core Operations
//
// [Engine] composes the lyrics resolver with the catalog and the emotion analyzer:
//
//  1. [Engine.BatchResolve] : resolve many (artist, title) queries
//     - A fixed pool of workers (default 4, at most 10) pulls queries from a channel
//     - A shared rate limiter (default 2 req/s) gates the start of each resolution
//     - Each resolution still queries its providers one at a time
//     - Results keep the input order; an optional output directory receives one text file per hit
//     and a manifest.json summarizing the batch
//
//  2. [Engine.AnalyzeTrack] : catalog track → lyrics → emotions
//     - Looks up the track, resolves lyrics for its primary artist and name
//     - Sends found lyrics to the analyzer
//
//  3. [Engine.AnalyzeQuery] : lyrics → emotions for an (artist, title) pair
//
// # Progress Reporting
//
// All operations use non-blocking channels for progress updates.
//
// The [ProgressUpdate] struct contains phase, step counters, messages, and optional data for advanced UI rendering.
// Updates use select with default to prevent blocking.
//
// # Input
//
// [ReadQueriesCSV] reads artist,title rows with an optional header.
package tasks

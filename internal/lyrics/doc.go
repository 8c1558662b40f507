// Package lyrics resolves plain-text song lyrics for an (artist, title) pair.
//
// # Pipeline
//
// A [Resolver] walks every title variant produced by [TitleVariants] and, for each variant, every
// [Provider] in its fixed priority order. The first provider text that survives [Sanitize] wins and is
// returned together with the variant that produced it.
//
//  1. [NormalizeTitle] strips collaboration and re-release markers ("(feat. …)", "[2009 Remaster]",
//     " - Remastered 2011") so a second spelling can be tried.
//  2. [LRCLib] is queried first, then [LyricsOVH].
//  3. [Sanitize] removes headings, footers and "Embed" artifacts that providers inject.
//
// # Outcomes
//
// Providers report three outcomes through a single (string, error) pair:
//   - found: non-empty text and a nil error
//   - not found: an error matching [ErrNotFound], which drives the fallback
//   - failed: any other error, usually an [*UpstreamError] with status and body
//
// A failed provider aborts the resolution unless the resolver was built with [WithFallThrough].
// When every variant and provider reports not found, [Resolver.Resolve] returns a [Result] whose
// Lyrics field is nil and no error.
//
// # Instrumentation
//
// Provider attempts and resolution outcomes are reported to an optional [Recorder];
// see the metrics package for the Prometheus implementation.
package lyrics

// Package services implements the HTTP clients that surround lyrics resolution.
//
// # Catalog
//
// [SpotifyService] implements [Catalog] against the Spotify Web API using the OAuth2 client-credentials
// grant. The token source is owned by the service instance and refreshes expired tokens on demand, so no
// token state is shared between instances.
//
// [SpotifyTrack.ToModel] flattens a catalog track into [models.Track]: artist names joined by ", ", the first
// album image, preview and external URLs.
//
// # Emotion Analysis
//
// [EmotionService] implements [Analyzer] by forwarding {artist, title, lyrics} to the ML service's
// POST /analyze endpoint. Each call is bounded by the configured timeout.
//
// # Error Handling
//
// Services use typed errors from shared package:
//   - [shared.ErrMissingCredentials] : Spotify client ID or secret not configured
//   - [shared.ErrAPIRequest] : catalog request failed or returned a non-2xx status
//   - [shared.ErrServiceUnavailable] : the analysis service failed or could not be reached
//   - [shared.ErrInvalidInput] : blank lyrics passed to [EmotionService.Analyze]
package services

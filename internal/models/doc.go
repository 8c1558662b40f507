// Package models defines the data transfer objects shared by the catalog, analysis and presentation layers.
//
//   - [Track] : catalog search hit as returned to clients (names joined, first album image)
//   - [AnalysisRequest] : payload sent to the emotion analysis service
//   - [Analysis] : labeled emotion scores and embedding returned for a song
//
// Lyrics values live in the lyrics package; these types only describe the collaborators around it.
package models

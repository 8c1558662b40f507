// package services defines the collaborators around lyrics resolution: the track catalog and the emotion analyzer.
package services

import (
	"context"

	"github.com/desertthunder/pulse/internal/models"
)

// Catalog searches a music catalog for tracks.
type Catalog interface {
	// SearchTracks returns up to limit tracks matching query. A blank query returns no tracks.
	SearchTracks(ctx context.Context, query string, limit int) ([]models.Track, error)

	// Track retrieves a single track by catalog ID.
	Track(ctx context.Context, id string) (*SpotifyTrack, error)

	// Name returns the name of the catalog (e.g., "Spotify")
	Name() string
}

// Analyzer scores the emotions expressed by a song's lyrics.
type Analyzer interface {
	// Analyze sends lyrics for analysis. Blank lyrics fail without a call.
	Analyze(ctx context.Context, req models.AnalysisRequest) (*models.Analysis, error)

	// Health reports whether the analyzer is reachable.
	Health(ctx context.Context) error
}

// package tasks implements batch lyrics resolution and track analysis.
//
// The core abstraction is Engine, which composes the resolver, catalog and analyzer.
// Operations emit progress updates via channels for non-blocking status reporting to CLI/UI layers.
package tasks

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/models"
	"github.com/desertthunder/pulse/internal/services"
	"github.com/desertthunder/pulse/internal/shared"
)

// Resolver resolves lyrics for a query; implemented by [lyrics.Resolver].
type Resolver interface {
	Resolve(ctx context.Context, q lyrics.Query) (*lyrics.Result, error)
}

// TrackAnalysis contains every step of a track analysis.
type TrackAnalysis struct {
	Track    *models.Track    // Catalog track (nil for query-based analysis)
	Lyrics   *lyrics.Result   // Resolution result
	Analysis *models.Analysis // Emotion analysis (nil when no lyrics were found)
}

// Engine runs lyrics operations that span more than one collaborator.
type Engine struct {
	resolver Resolver
	catalog  services.Catalog
	analyzer services.Analyzer
	logger   *log.Logger
}

// NewEngine creates an Engine. Catalog and analyzer may be nil for operations that do not need them.
func NewEngine(resolver Resolver, catalog services.Catalog, analyzer services.Analyzer, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{resolver: resolver, catalog: catalog, analyzer: analyzer, logger: logger}
}

// sendProgress sends a progress update through the channel without blocking.
// Uses select with default to ensure progress reporting never blocks execution.
func (e *Engine) sendProgress(progress chan<- ProgressUpdate, update ProgressUpdate) {
	if progress == nil {
		return
	}
	select {
	case progress <- update:
	default:
	}
}

// AnalyzeTrack looks up a catalog track, resolves its lyrics and analyzes them.
//
// When no lyrics are found the returned analysis has a nil Analysis and no error.
func (e *Engine) AnalyzeTrack(ctx context.Context, progress chan<- ProgressUpdate, trackID string) (*TrackAnalysis, error) {
	if e.catalog == nil {
		return nil, fmt.Errorf("%w: catalog not configured", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, fetchTrackUpdate(trackID))
	raw, err := e.catalog.Track(ctx, trackID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch track: %w", err)
	}
	track := raw.ToModel()

	result, err := e.AnalyzeQuery(ctx, progress, lyrics.Query{Artist: track.PrimaryArtist(), Title: track.Name})
	if result != nil {
		result.Track = &track
	}
	return result, err
}

// AnalyzeQuery resolves lyrics for q and, when found, analyzes them.
func (e *Engine) AnalyzeQuery(ctx context.Context, progress chan<- ProgressUpdate, q lyrics.Query) (*TrackAnalysis, error) {
	if e.resolver == nil {
		return nil, fmt.Errorf("%w: resolver not configured", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, resolveUpdate(1, 1, q))
	res, err := e.resolver.Resolve(ctx, q)
	if err != nil {
		return nil, err
	}

	out := &TrackAnalysis{Lyrics: res}
	if !res.Found() {
		e.sendProgress(progress, lyricsMissingUpdate(res))
		return out, nil
	}

	if e.analyzer == nil {
		return out, fmt.Errorf("%w: analyzer not configured", shared.ErrServiceUnavailable)
	}

	e.sendProgress(progress, analyzeUpdate(res))
	analysis, err := e.analyzer.Analyze(ctx, models.AnalysisRequest{Artist: res.Artist, Title: res.Title, Lyrics: res.Text()})
	if err != nil {
		return out, fmt.Errorf("analysis failed: %w", err)
	}
	out.Analysis = analysis
	return out, nil
}

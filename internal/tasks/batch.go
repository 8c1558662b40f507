package tasks

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/desertthunder/pulse/internal/formatter"
	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultWorkers   = 4
	maxWorkers       = 10
	defaultBatchRate = 2.0
	manifestName     = "manifest.json"
)

// BatchOpts contains configuration for batch resolution.
type BatchOpts struct {
	OutputDir  string  // Directory for lyric files and manifest.json (empty: nothing is written)
	NumWorkers int     // Concurrent workers (default: 4, max: 10)
	RateLimit  float64 // Resolutions started per second (default: 2)
}

// BatchItem is the outcome of one query.
type BatchItem struct {
	Index  int
	Query  lyrics.Query
	Result *lyrics.Result
	Error  error
	File   string // Written lyrics file, if any
}

// BatchResult summarizes a batch. Items keep the input order.
type BatchResult struct {
	ID              string
	Total           int
	Found           int
	Missing         int
	Failed          int
	Items           []BatchItem
	OutputDirectory string
	ManifestPath    string
	StartedAt       time.Time
	Duration        time.Duration
}

type manifestEntry struct {
	Artist   string `json:"artist"`
	Title    string `json:"title"`
	Resolved string `json:"resolved_title,omitempty"`
	Status   string `json:"status"`
	File     string `json:"file,omitempty"`
	Error    string `json:"error,omitempty"`
}

type manifest struct {
	ID        string          `json:"id"`
	StartedAt time.Time       `json:"started_at"`
	Duration  string          `json:"duration"`
	Total     int             `json:"total"`
	Found     int             `json:"found"`
	Missing   int             `json:"missing"`
	Failed    int             `json:"failed"`
	Items     []manifestEntry `json:"items"`
}

// BatchResolve resolves queries concurrently with rate limiting and progress tracking.
//
// Per-query failures are recorded on their item and do not stop the batch. Cancelling ctx stops
// dispatching; unprocessed items carry the context error, which is also returned.
func (e *Engine) BatchResolve(
	ctx context.Context,
	prog chan<- ProgressUpdate,
	queries []lyrics.Query,
	opts BatchOpts,
) (*BatchResult, error) {
	if e.resolver == nil {
		return nil, fmt.Errorf("%w: resolver not configured", shared.ErrServiceUnavailable)
	}

	if opts.NumWorkers <= 0 {
		opts.NumWorkers = defaultWorkers
	}
	if opts.NumWorkers > maxWorkers {
		opts.NumWorkers = maxWorkers
	}
	if opts.RateLimit <= 0 {
		opts.RateLimit = defaultBatchRate
	}

	if opts.OutputDir != "" {
		if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	result := &BatchResult{
		ID:              shared.GenerateID(),
		Total:           len(queries),
		Items:           make([]BatchItem, len(queries)),
		OutputDirectory: opts.OutputDir,
		StartedAt:       time.Now(),
	}
	for i, q := range queries {
		result.Items[i] = BatchItem{Index: i, Query: q}
	}

	limiter := rate.NewLimiter(rate.Limit(opts.RateLimit), 1)
	jobs := make(chan BatchItem)
	results := make(chan BatchItem, len(queries))

	var wg sync.WaitGroup
	for range opts.NumWorkers {
		wg.Add(1)
		go e.resolveWorker(ctx, &wg, limiter, jobs, results, opts.OutputDir)
	}

	go func() {
		defer close(jobs)
		for _, item := range result.Items {
			select {
			case <-ctx.Done():
				return
			case jobs <- item:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	done := make([]bool, len(queries))
	completed := 0
	for item := range results {
		completed++
		done[item.Index] = true
		result.Items[item.Index] = item
		e.sendProgress(prog, resolvedUpdate(completed, len(queries), item))
	}

	for i := range result.Items {
		if !done[i] {
			result.Items[i].Error = ctx.Err()
		}
		switch item := result.Items[i]; {
		case item.Error != nil:
			result.Failed++
		case item.Result.Found():
			result.Found++
		default:
			result.Missing++
		}
	}
	result.Duration = time.Since(result.StartedAt)

	if opts.OutputDir != "" {
		path := filepath.Join(opts.OutputDir, manifestName)
		if err := formatter.WriteJSONFile(result.manifest(), path); err != nil {
			return result, fmt.Errorf("batch completed but failed to write manifest: %w", err)
		}
		result.ManifestPath = path
		e.sendProgress(prog, manifestUpdate(path))
	}

	e.logger.Info("batch finished", "id", result.ID, "total", result.Total, "found", result.Found, "missing", result.Missing, "failed", result.Failed)
	return result, ctx.Err()
}

// resolveWorker resolves items from the jobs channel, waiting on the shared limiter before each one.
func (e *Engine) resolveWorker(
	ctx context.Context,
	wg *sync.WaitGroup,
	limiter *rate.Limiter,
	jobs <-chan BatchItem,
	results chan<- BatchItem,
	outputDir string,
) {
	defer wg.Done()

	for item := range jobs {
		if err := limiter.Wait(ctx); err != nil {
			item.Error = err
			results <- item
			continue
		}

		item.Result, item.Error = e.resolver.Resolve(ctx, item.Query)
		if item.Error == nil && item.Result.Found() && outputDir != "" {
			name := formatter.NumberedLyricsFilename(item.Index+1, item.Result)
			item.File, item.Error = formatter.WriteLyricsFileAs(item.Result, outputDir, name)
		}
		results <- item
	}
}

func (r *BatchResult) manifest() manifest {
	m := manifest{
		ID:        r.ID,
		StartedAt: r.StartedAt,
		Duration:  r.Duration.String(),
		Total:     r.Total,
		Found:     r.Found,
		Missing:   r.Missing,
		Failed:    r.Failed,
		Items:     make([]manifestEntry, 0, len(r.Items)),
	}

	for _, item := range r.Items {
		entry := manifestEntry{Artist: item.Query.Artist, Title: item.Query.Title}
		if item.File != "" {
			entry.File = filepath.Base(item.File)
		}
		switch {
		case item.Error != nil:
			entry.Status = "failed"
			entry.Error = item.Error.Error()
		case item.Result.Found():
			entry.Status = "found"
			entry.Resolved = item.Result.Title
		default:
			entry.Status = "not_found"
		}
		m.Items = append(m.Items, entry)
	}
	return m
}

package tasks

import (
	"fmt"

	"github.com/desertthunder/pulse/internal/lyrics"
)

// ProgressUpdate represents a progress event during a long-running operation.
//
// Used to send real-time updates to the CLI or UI layer for display.
type ProgressUpdate struct {
	Phase   Phase  // Operation phase
	Step    int    // Current step number within phase
	Total   int    // Total steps in this phase
	Message string // Human-readable message for display
	Data    any    // Optional phase-specific data for advanced UIs
}

// Operation phase enumeration
type Phase int

const (
	ResolveLyrics Phase = iota
	FetchTrack
	AnalyzeLyrics
	WriteOutput
)

func (p Phase) String() string {
	switch p {
	case ResolveLyrics:
		return "resolve_lyrics"
	case FetchTrack:
		return "fetch_track"
	case AnalyzeLyrics:
		return "analyze_lyrics"
	case WriteOutput:
		return "write_output"
	default:
		return ""
	}
}

func resolveUpdate(step, total int, q lyrics.Query) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveLyrics,
		Step:    step,
		Total:   total,
		Message: fmt.Sprintf("Resolving lyrics for %s - %s...", q.Artist, q.Title),
	}
}

func resolvedUpdate(step, total int, item BatchItem) ProgressUpdate {
	update := ProgressUpdate{Phase: ResolveLyrics, Step: step, Total: total, Data: item}
	switch {
	case item.Error != nil:
		update.Message = fmt.Sprintf("[%d/%d] ✗ %s - %s: %v", step, total, item.Query.Artist, item.Query.Title, item.Error)
	case item.Result.Found():
		update.Message = fmt.Sprintf("[%d/%d] ✓ %s - %s", step, total, item.Result.Artist, item.Result.Title)
	default:
		update.Message = fmt.Sprintf("[%d/%d] - %s - %s (not found)", step, total, item.Query.Artist, item.Query.Title)
	}
	return update
}

func lyricsMissingUpdate(r *lyrics.Result) ProgressUpdate {
	return ProgressUpdate{
		Phase:   ResolveLyrics,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("No lyrics found for %q by %q", r.Title, r.Artist),
		Data:    r,
	}
}

func fetchTrackUpdate(id string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   FetchTrack,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Fetching track %s...", id),
	}
}

func analyzeUpdate(r *lyrics.Result) ProgressUpdate {
	return ProgressUpdate{
		Phase:   AnalyzeLyrics,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Analyzing %s - %s...", r.Artist, r.Title),
	}
}

func manifestUpdate(path string) ProgressUpdate {
	return ProgressUpdate{
		Phase:   WriteOutput,
		Step:    1,
		Total:   1,
		Message: fmt.Sprintf("Wrote manifest %s", path),
	}
}

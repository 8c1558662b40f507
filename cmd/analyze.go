package main

import (
	"context"
	"fmt"
	"os"

	"github.com/desertthunder/pulse/internal/formatter"
	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/models"
	"github.com/desertthunder/pulse/internal/shared"
	"github.com/desertthunder/pulse/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Analyze runs emotion analysis for a catalog track, an artist/title pair or a local lyrics file.
func (r *Runner) Analyze(ctx context.Context, cmd *cli.Command) error {
	artist := cmd.String("artist")
	title := cmd.String("title")
	trackID := cmd.String("track-id")
	lyricsFile := cmd.String("lyrics-file")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if lyricsFile != "" {
		return r.analyzeFile(ctx, lyricsFile, artist, title, useJSON, pretty)
	}

	progressCh := make(chan tasks.ProgressUpdate, 10)
	done := r.drainProgress(progressCh)

	var result *tasks.TrackAnalysis
	var err error
	switch {
	case trackID != "":
		if err = r.requireCatalog(); err == nil {
			result, err = r.engine.AnalyzeTrack(ctx, progressCh, trackID)
		}
	case artist != "" && title != "":
		result, err = r.engine.AnalyzeQuery(ctx, progressCh, lyrics.Query{Artist: artist, Title: title})
	default:
		err = fmt.Errorf("%w: --track-id, --lyrics-file or both --artist and --title", shared.ErrMissingArgument)
	}
	close(progressCh)
	<-done

	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(result, pretty)
	}

	r.writePlain("\n")
	if !result.Lyrics.Found() {
		return r.writePlain("%s\n", formatter.NotFoundMessage(result.Lyrics))
	}
	return r.writeBytes(formatter.AnalysisToText(result.Analysis))
}

func (r *Runner) analyzeFile(ctx context.Context, path, artist, title string, useJSON, pretty bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read lyrics file: %w", err)
	}

	req := models.AnalysisRequest{Artist: artist, Title: title, Lyrics: string(data)}
	r.logger.Info("analyzing lyrics file", "path", path, "bytes", len(data))

	analysis, err := r.analyzer.Analyze(ctx, req)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(analysis, pretty)
	}
	return r.writeBytes(formatter.AnalysisToText(analysis))
}

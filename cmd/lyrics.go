package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/desertthunder/pulse/internal/formatter"
	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/shared"
	"github.com/desertthunder/pulse/internal/tasks"
	"github.com/urfave/cli/v3"
)

// LyricsGet resolves lyrics for a single artist/title pair and prints them in the requested format.
func (r *Runner) LyricsGet(ctx context.Context, cmd *cli.Command) error {
	q := lyrics.Query{Artist: cmd.String("artist"), Title: cmd.String("title")}
	format := strings.ToLower(cmd.String("format"))
	outputDir := cmd.String("output")

	switch format {
	case "text", "markdown", "md", "json", "":
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidArgument, format)
	}

	r.logger.Debug("resolving lyrics", "artist", q.Artist, "title", q.Title, "providers", r.resolver.Providers())

	result, err := r.resolver.Resolve(ctx, q)
	if err != nil {
		return err
	}

	if outputDir != "" {
		if !result.Found() {
			return r.writePlain("%s\n", formatter.NotFoundMessage(result))
		}
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
		path, err := formatter.WriteLyricsFile(result, outputDir)
		if err != nil {
			return err
		}
		r.logger.Info("lyrics saved", "file", path, "provider", result.Provider)
		return r.writePlain("✓ Lyrics saved to %s\n", path)
	}

	switch format {
	case "json":
		data, err := formatter.LyricsToJSON(result)
		if err != nil {
			return err
		}
		return r.writeBytes(append(data, '\n'))
	case "markdown", "md":
		return r.writeBytes(formatter.LyricsToMarkdown(result))
	default:
		return r.writeBytes(formatter.LyricsToText(result))
	}
}

// LyricsBatch resolves every query in a CSV file and writes lyric files plus a manifest.
func (r *Runner) LyricsBatch(ctx context.Context, cmd *cli.Command) error {
	input := cmd.String("input")
	opts := tasks.BatchOpts{
		OutputDir:  cmd.String("output"),
		NumWorkers: cmd.Int("workers"),
		RateLimit:  cmd.Float("rate"),
	}

	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("failed to open input: %w", err)
	}
	defer f.Close()

	queries, err := tasks.ReadQueriesCSV(f)
	if err != nil {
		return err
	}
	if len(queries) == 0 {
		return fmt.Errorf("%w: %s contains no queries", shared.ErrInvalidInput, input)
	}

	r.logger.Info("starting batch", "input", input, "queries", len(queries), "workers", opts.NumWorkers)
	r.writePlain("Resolving %d songs...\n\n", len(queries))

	progressCh := make(chan tasks.ProgressUpdate, 50)
	done := r.drainProgress(progressCh)

	result, err := r.engine.BatchResolve(ctx, progressCh, queries, opts)
	close(progressCh)
	<-done

	if result == nil {
		return err
	}

	r.writePlain("\n")
	r.writePlainHeader("Batch Complete!")
	r.writePlain("Found: %d/%d\n", result.Found, result.Total)
	r.writePlain("Missing: %d\n", result.Missing)
	r.writePlain("Failed: %d\n", result.Failed)
	r.writePlain("Duration: %s\n", result.Duration.Round(time.Millisecond))
	if result.ManifestPath != "" {
		r.writePlain("Manifest: %s\n", result.ManifestPath)
	}

	return err
}

// LyricsNormalize prints the title variants resolution would try, in order.
func (r *Runner) LyricsNormalize(ctx context.Context, cmd *cli.Command) error {
	title := strings.TrimSpace(cmd.StringArg("title"))
	if title == "" {
		return fmt.Errorf("%w: title", shared.ErrMissingArgument)
	}

	for i, variant := range lyrics.TitleVariants(title) {
		r.writePlain("%d. %s\n", i+1, variant)
	}
	return nil
}

// LyricsProviders lists the configured providers in the order they are consulted.
func (r *Runner) LyricsProviders(ctx context.Context, cmd *cli.Command) error {
	for i, name := range r.resolver.Providers() {
		r.writePlain("%d. %s\n", i+1, name)
	}
	return nil
}

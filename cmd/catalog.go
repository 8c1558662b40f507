package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/desertthunder/pulse/internal/formatter"
	"github.com/desertthunder/pulse/internal/models"
	"github.com/desertthunder/pulse/internal/services"
	"github.com/desertthunder/pulse/internal/shared"
	"github.com/urfave/cli/v3"
)

// CatalogSearch searches the catalog for tracks and prints them as a table or JSON.
func (r *Runner) CatalogSearch(ctx context.Context, cmd *cli.Command) error {
	query := cmd.StringArg("query")
	limit := services.ClampLimit(cmd.Int("limit"))
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if strings.TrimSpace(query) == "" {
		return fmt.Errorf("%w: query", shared.ErrMissingArgument)
	}
	if err := r.requireCatalog(); err != nil {
		return err
	}

	r.logger.Infof("searching %s for %q with limit %v", r.catalog.Name(), query, limit)

	tracks, err := r.catalog.SearchTracks(ctx, query, limit)
	if err != nil {
		return err
	}

	if useJSON {
		return r.writeJSON(map[string][]models.Track{"tracks": tracks}, pretty)
	}

	if len(tracks) == 0 {
		return r.writePlain("No tracks found for %q.\n", query)
	}
	r.writePlain("Found %d tracks:\n\n", len(tracks))
	return r.writeBytes(formatter.TracksToText(tracks))
}

// CatalogTrack prints a single catalog track.
func (r *Runner) CatalogTrack(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	useJSON := cmd.Bool("json")
	pretty := cmd.Bool("pretty")

	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: track id", shared.ErrMissingArgument)
	}
	if err := r.requireCatalog(); err != nil {
		return err
	}

	raw, err := r.catalog.Track(ctx, id)
	if err != nil {
		return err
	}
	track := raw.ToModel()

	if useJSON {
		return r.writeJSON(track, pretty)
	}

	r.writePlain("%s\n", track.Name)
	r.writePlain("   Artists: %s\n", track.Artists)
	if track.Album != "" {
		r.writePlain("   Album: %s\n", track.Album)
	}
	r.writePlain("   ID: %s\n", track.ID)
	if track.SpotifyURL != "" {
		r.writePlain("   URL: %s\n", track.SpotifyURL)
	}
	if track.PreviewURL != "" {
		r.writePlain("   Preview: %s\n", track.PreviewURL)
	}
	return nil
}

package main

import (
	"context"
	"fmt"

	"github.com/desertthunder/pulse/internal/shared"
	"github.com/urfave/cli/v3"
)

// SetupConfig writes a config file from the embedded template to the --config path.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	configPath := cmd.String("config")
	if configPath == "" {
		return fmt.Errorf("%w: --config path is required", shared.ErrMissingArgument)
	}

	r.logger.Info("creating config file", "path", configPath)
	if err := shared.CreateConfigFile(configPath); err != nil {
		return err
	}

	r.writePlain("✓ Config written to %s\n", configPath)
	r.writePlainln("Next steps:")
	r.writePlain("1. Set credentials.spotify.client_id and client_secret for catalog search\n")
	r.writePlain("2. Run 'pulse lyrics get --artist \"Daft Punk\" --title \"Get Lucky\"' to test resolution\n")
	return nil
}

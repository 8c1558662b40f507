// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// globalFlags are inherited by every subcommand.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to configuration file",
			Value:   "config.toml",
			Sources: cli.EnvVars("PULSE_CONFIG"),
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "Log level (debug, info, warn, error)",
			Sources: cli.EnvVars("LOG_LEVEL"),
		},
		&cli.StringFlag{
			Name:    "spotify-client-id",
			Usage:   "Spotify client ID",
			Sources: cli.EnvVars("SPOTIFY_CLIENT_ID"),
		},
		&cli.StringFlag{
			Name:    "spotify-client-secret",
			Usage:   "Spotify client secret",
			Sources: cli.EnvVars("SPOTIFY_CLIENT_SECRET"),
		},
		&cli.StringFlag{
			Name:    "ml-url",
			Usage:   "Emotion analysis service URL",
			Sources: cli.EnvVars("ML_SERVICE_URL"),
		},
	}
}

// lyricsCommand handles lyrics lookups
func lyricsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "lyrics",
		Aliases: []string{"l"},
		Usage:   "Resolve song lyrics",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Resolve lyrics for a single song",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "artist",
						Aliases:  []string{"a"},
						Usage:    "Artist name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "title",
						Aliases:  []string{"t"},
						Usage:    "Song title",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "format",
						Aliases: []string{"f"},
						Usage:   "Output format (text, markdown, json)",
						Value:   "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write the lyrics to this directory instead of stdout",
					},
				},
				Action: r.LyricsGet,
			},
			{
				Name:  "batch",
				Usage: "Resolve lyrics for every artist,title row of a CSV file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "input",
						Aliases:  []string{"i"},
						Usage:    "CSV file with artist,title rows",
						Required: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output directory for lyric files and manifest.json",
						Value:   "lyrics",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent workers (max 10)",
						Value: 4,
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Resolutions started per second",
						Value: 2,
					},
				},
				Action: r.LyricsBatch,
			},
			{
				Name:  "normalize",
				Usage: "Show the title variants tried during resolution",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "title",
					},
				},
				Action: r.LyricsNormalize,
			},
			{
				Name:   "providers",
				Usage:  "List lyrics providers in resolution order",
				Action: r.LyricsProviders,
			},
		},
	}
}

// catalogCommand handles Spotify catalog operations
func catalogCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "catalog",
		Aliases: []string{"spotify"},
		Usage:   "Search the Spotify catalog",
		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Search for tracks",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "query",
					},
				},
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of tracks to return (1-20)",
						Value: 8,
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.CatalogSearch,
			},
			{
				Name:  "track",
				Usage: "Show a single track",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "id",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.CatalogTrack,
			},
		},
	}
}

// analyzeCommand runs emotion analysis on resolved or local lyrics
func analyzeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Analyze the emotions of a song's lyrics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "artist",
				Aliases: []string{"a"},
				Usage:   "Artist name",
			},
			&cli.StringFlag{
				Name:    "title",
				Aliases: []string{"t"},
				Usage:   "Song title",
			},
			&cli.StringFlag{
				Name:  "track-id",
				Usage: "Spotify track ID to resolve and analyze",
			},
			&cli.StringFlag{
				Name:  "lyrics-file",
				Usage: "Analyze lyrics from a local file instead of resolving them",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Analyze,
	}
}

// serveCommand starts the HTTP API and frontend server
func serveCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Start the HTTP server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "host",
				Usage:   "Listen host (default from config)",
				Sources: cli.EnvVars("HOST"),
			},
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Listen port (default from config)",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:  "static-dir",
				Usage: "Directory holding the built frontend",
			},
			&cli.BoolFlag{
				Name:  "open",
				Usage: "Open the frontend in a browser once listening",
			},
		},
		Action: r.Serve,
	}
}

// setupCommand handles setup operations
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:   "config",
				Usage:  "Write a config.toml (path from --config) from the built-in template",
				Action: r.SetupConfig,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for interactive lyrics search.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch interactive TUI for lyrics search",
		Action:  r.TUI,
	}
}

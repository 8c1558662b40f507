package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/metrics"
	"github.com/desertthunder/pulse/internal/services"
	"github.com/desertthunder/pulse/internal/shared"
	"github.com/desertthunder/pulse/internal/tasks"
	"github.com/urfave/cli/v3"
)

const defaultHTTPTimeout = 20 * time.Second

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	opts       RunnerOpts
	config     *shared.Config
	resolver   *lyrics.Resolver
	catalog    services.Catalog
	analyzer   services.Analyzer
	metrics    *metrics.Metrics
	httpClient *http.Client
	logger     *log.Logger
	output     io.Writer
	engine     *tasks.Engine
}

// RunnerOpts contains configuration options for creating a Runner.
//
// Collaborators left nil are built from Config.
type RunnerOpts struct {
	Config     *shared.Config
	Resolver   *lyrics.Resolver
	Catalog    services.Catalog
	Analyzer   services.Analyzer
	Metrics    *metrics.Metrics
	HTTPClient *http.Client
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: defaultHTTPTimeout}
	}

	r := &Runner{
		opts:       opts,
		config:     opts.Config,
		httpClient: opts.HTTPClient,
		logger:     opts.Logger,
		output:     opts.Output,
	}
	r.wire()
	return r
}

// wire builds every collaborator not supplied through [RunnerOpts] from the current config.
func (r *Runner) wire() {
	r.metrics = r.opts.Metrics
	if r.metrics == nil {
		r.metrics = metrics.New()
	}

	r.resolver = r.opts.Resolver
	if r.resolver == nil {
		r.resolver = lyrics.NewResolver(
			lyrics.DefaultProviders(r.config.Lyrics, r.httpClient),
			lyrics.WithLogger(r.logger),
			lyrics.WithRecorder(r.metrics),
			lyrics.WithFallThrough(r.config.Lyrics.FallThroughOnFailure),
		)
	}

	r.catalog = r.opts.Catalog
	if r.catalog == nil && r.config.Credentials.Spotify.HasCredentials() {
		spotify, err := services.NewSpotifyService(r.config.Credentials.Spotify, services.WithSpotifyHTTPClient(r.httpClient))
		if err != nil {
			r.logger.Warn("spotify catalog disabled", "error", err)
		} else {
			r.catalog = spotify
		}
	}

	r.analyzer = r.opts.Analyzer
	if r.analyzer == nil {
		r.analyzer = services.NewEmotionService(r.config.ML.URL, r.config.ML.Timeout.Duration, r.httpClient)
	}

	r.engine = tasks.NewEngine(r.resolver, r.catalog, r.analyzer, r.logger)
}

// Configure loads the config file named by --config, applies flag and environment overrides and
// rebuilds the collaborators. It runs before every command.
//
// A missing config file is not an error: defaults are used so that `setup config` can create one.
func (r *Runner) Configure(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	path := cmd.String("config")

	config := shared.DefaultConfig()
	if _, err := os.Stat(path); err == nil {
		loaded, err := shared.LoadConfig(path)
		if err != nil {
			return ctx, err
		}
		config = loaded
		r.logger.Debug("loaded config", "path", path)
	} else {
		r.logger.Debug("config file not found, using defaults", "path", path)
	}

	if id := cmd.String("spotify-client-id"); id != "" {
		config.Credentials.Spotify.ClientID = id
	}
	if secret := cmd.String("spotify-client-secret"); secret != "" {
		config.Credentials.Spotify.ClientSecret = secret
	}
	if url := cmd.String("ml-url"); url != "" {
		config.ML.URL = url
	}
	if level := cmd.String("log-level"); level != "" {
		config.Log.Level = level
	}

	level, err := shared.ParseLevel(config.Log.Level)
	if err != nil {
		return ctx, err
	}
	shared.SetLogLevel(r.logger, level)

	r.config = config
	r.wire()
	return ctx, nil
}

// SetLogger replaces the logger used by the runner and its collaborators.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
	r.opts.Logger = l
	r.wire()
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		lyricsCommand, catalogCommand, analyzeCommand, serveCommand, setupCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) requireCatalog() error {
	if r.catalog == nil {
		return fmt.Errorf("%w: set SPOTIFY_CLIENT_ID and SPOTIFY_CLIENT_SECRET or credentials.spotify in config.toml", shared.ErrMissingCredentials)
	}
	return nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writeBytes(b []byte) error {
	if _, err := r.output.Write(b); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}

// drainProgress prints updates from a progress channel until it is closed.
// The returned channel closes once every update has been written.
func (r *Runner) drainProgress(progress <-chan tasks.ProgressUpdate) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		for update := range progress {
			r.logger.Debug("progress", "phase", update.Phase, "step", update.Step, "total", update.Total)
			r.writePlain("%s\n", update.Message)
		}
	}()
	return done
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/desertthunder/pulse/internal/server"
	"github.com/desertthunder/pulse/internal/shared"
	"github.com/urfave/cli/v3"
)

// Serve starts the HTTP API and frontend server and blocks until interrupted.
func (r *Runner) Serve(ctx context.Context, cmd *cli.Command) error {
	cfg := r.config.Server
	if host := cmd.String("host"); host != "" {
		cfg.Host = host
	}
	if port := cmd.Int("port"); port > 0 {
		cfg.Port = port
	}
	if dir := cmd.String("static-dir"); dir != "" {
		cfg.StaticDir = dir
	}

	if err := r.analyzer.Health(ctx); err != nil {
		r.logger.Warn("emotion analysis unavailable", "url", r.config.ML.URL, "error", err)
	}
	if r.catalog == nil {
		r.logger.Warn("spotify credentials not set, catalog routes will fail")
	}

	router := server.New(server.Options{
		Resolver:  r.resolver,
		Catalog:   r.catalog,
		Analyzer:  r.analyzer,
		Metrics:   r.metrics.Handler(),
		StaticDir: cfg.StaticDir,
		Logger:    r.logger,
	})
	r.logger.Debug("registered routes", "patterns", router.Patterns())
	srv := server.NewHTTPServer(cfg, router)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cmd.Bool("open") {
		go r.openWhenReady(ctx, fmt.Sprintf("http://%s", cfg.Addr()))
	}

	r.logger.Info("starting server", "addr", cfg.Addr(), "providers", r.resolver.Providers())
	return server.Serve(ctx, srv, r.logger)
}

func (r *Runner) openWhenReady(ctx context.Context, url string) {
	select {
	case <-ctx.Done():
		return
	case <-time.After(100 * time.Millisecond):
	}

	r.logger.Info("opening browser", "url", url)
	if err := shared.OpenBrowser(url); err != nil {
		r.logger.Warnf("failed to open browser automatically %v", err)
		r.writePlain("Please open this URL in your browser:\n%s\n", url)
	}
}

package lyrics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/pulse/internal/shared"
	"github.com/go-playground/validator/v10"
	"golang.org/x/time/rate"
)

// Provider attempt outcomes reported to a [Recorder].
const (
	OutcomeFound    = "found"
	OutcomeNotFound = "not_found"
	OutcomeEmpty    = "empty"
	OutcomeFailed   = "failed"
)

// Resolution outcomes reported to a [Recorder].
const (
	ResolutionHit     = "hit"
	ResolutionMiss    = "miss"
	ResolutionInvalid = "invalid"
	ResolutionFailed  = "failed"
)

// ErrInvalidQuery is returned by [Resolver.Resolve] before any network call when artist or title is blank.
var ErrInvalidQuery = fmt.Errorf("%w: artist and title are required", shared.ErrInvalidInput)

var validate = validator.New()

// Query identifies a song by artist and title.
type Query struct {
	Artist string `json:"artist" validate:"required"`
	Title  string `json:"title" validate:"required"`
}

// Trimmed returns a copy of q with surrounding whitespace removed from both fields.
func (q Query) Trimmed() Query {
	return Query{Artist: strings.TrimSpace(q.Artist), Title: strings.TrimSpace(q.Title)}
}

// Validate reports [ErrInvalidQuery] when either field is blank after trimming.
func (q Query) Validate() error {
	if err := validate.Struct(q.Trimmed()); err != nil {
		return ErrInvalidQuery
	}
	return nil
}

// Result is the outcome of a resolution. Lyrics is nil when no provider had usable text.
//
// Title is the variant that produced the lyrics, or the original title on a miss.
type Result struct {
	Artist   string  `json:"artist"`
	Title    string  `json:"title"`
	Lyrics   *string `json:"lyrics"`
	Provider string  `json:"-"`
}

// Found reports whether lyrics were resolved.
func (r *Result) Found() bool { return r != nil && r.Lyrics != nil }

// Text returns the lyrics or an empty string.
func (r *Result) Text() string {
	if !r.Found() {
		return ""
	}
	return *r.Lyrics
}

// Recorder receives provider attempts and resolution outcomes.
type Recorder interface {
	ObserveProvider(provider, outcome string, elapsed time.Duration)
	ObserveResolution(outcome string)
}

// ResolverOption configures a [Resolver].
type ResolverOption func(*Resolver)

// WithLogger sets the resolver logger. Attempts are logged at debug level, hits at info.
func WithLogger(l *log.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder reports provider attempts and outcomes to rec.
func WithRecorder(rec Recorder) ResolverOption {
	return func(r *Resolver) { r.recorder = rec }
}

// WithFallThrough makes a failed provider continue the scan instead of aborting it.
// If the scan then ends without a hit, the last failure is returned instead of a nil-lyrics result.
func WithFallThrough(enabled bool) ResolverOption {
	return func(r *Resolver) { r.fallThrough = enabled }
}

// Resolver queries an ordered list of providers for every title variant.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	providers   []Provider
	logger      *log.Logger
	recorder    Recorder
	fallThrough bool
}

// NewResolver creates a resolver that queries providers in the given order.
func NewResolver(providers []Provider, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		providers: providers,
		logger:    log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// DefaultProviders builds the LRCLib and LyricsOVH providers from cfg, in priority order.
// A positive rate limit is shared by both providers.
func DefaultProviders(cfg shared.LyricsConfig, httpClient *http.Client) []Provider {
	opts := []ClientOption{WithUserAgent(cfg.UserAgent)}
	if cfg.RateLimit > 0 {
		opts = append(opts, WithLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)))
	}
	return []Provider{
		NewLRCLib(cfg.LRCLibURL, httpClient, opts...),
		NewLyricsOVH(cfg.LyricsOVHURL, httpClient, opts...),
	}
}

// Providers returns the provider names in query order.
func (r *Resolver) Providers() []string {
	names := make([]string, len(r.providers))
	for i, p := range r.providers {
		names[i] = p.Name()
	}
	return names
}

// Resolve finds lyrics for q.
//
// The first provider text that is non-empty after [Sanitize] wins. A miss on every variant and
// provider yields a result with nil Lyrics and no error. A provider failure is returned as is.
func (r *Resolver) Resolve(ctx context.Context, q Query) (*Result, error) {
	q = q.Trimmed()
	if err := q.Validate(); err != nil {
		r.observeResolution(ResolutionInvalid)
		return nil, err
	}

	var lastErr error
	for _, variant := range TitleVariants(q.Title) {
		for _, p := range r.providers {
			text, err := r.attempt(ctx, p, q.Artist, variant)
			switch {
			case err == nil:
				r.logger.Info("resolved lyrics", "provider", p.Name(), "artist", q.Artist, "title", variant)
				r.observeResolution(ResolutionHit)
				return &Result{Artist: q.Artist, Title: variant, Lyrics: &text, Provider: p.Name()}, nil
			case errors.Is(err, ErrNotFound):
				continue
			case r.fallThrough:
				r.logger.Warn("provider failed, trying next", "provider", p.Name(), "error", err)
				lastErr = err
			default:
				r.observeResolution(ResolutionFailed)
				return nil, err
			}
		}
	}

	if lastErr != nil {
		r.observeResolution(ResolutionFailed)
		return nil, lastErr
	}

	r.observeResolution(ResolutionMiss)
	return &Result{Artist: q.Artist, Title: q.Title}, nil
}

// attempt calls p once and sanitizes the text. Sanitized-empty text is reported as [ErrNotFound].
func (r *Resolver) attempt(ctx context.Context, p Provider, artist, title string) (string, error) {
	start := time.Now()
	raw, err := p.FetchLyrics(ctx, artist, title)

	outcome := OutcomeFound
	var text string
	switch {
	case errors.Is(err, ErrNotFound):
		outcome = OutcomeNotFound
	case err != nil:
		outcome = OutcomeFailed
	default:
		if text = Sanitize(raw, artist, title); text == "" {
			outcome = OutcomeEmpty
			err = ErrNotFound
		}
	}

	r.logger.Debug("provider attempt", "provider", p.Name(), "artist", artist, "title", title, "outcome", outcome)
	if r.recorder != nil {
		r.recorder.ObserveProvider(p.Name(), outcome, time.Since(start))
	}
	return text, err
}

func (r *Resolver) observeResolution(outcome string) {
	if r.recorder != nil {
		r.recorder.ObserveResolution(outcome)
	}
}

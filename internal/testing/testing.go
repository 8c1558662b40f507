// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"sync"
	"testing"

	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/models"
	"github.com/desertthunder/pulse/internal/services"
	"github.com/desertthunder/pulse/internal/shared"
)

// MockProvider is a test double for [lyrics.Provider] that answers from title-keyed tables.
//
// Titles missing from both tables report [lyrics.ErrNotFound].
type MockProvider struct {
	ProviderName string
	Lyrics       map[string]string
	Errs         map[string]error

	mu    sync.Mutex
	calls []string
}

func (m *MockProvider) Name() string {
	if m.ProviderName == "" {
		return "mock"
	}
	return m.ProviderName
}

func (m *MockProvider) FetchLyrics(ctx context.Context, artist, title string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, title)
	m.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err, ok := m.Errs[title]; ok {
		return "", err
	}
	if text, ok := m.Lyrics[title]; ok {
		return text, nil
	}
	return "", lyrics.ErrNotFound
}

// Calls returns the titles requested so far.
func (m *MockProvider) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

// MockCatalog is a test double for [services.Catalog]
type MockCatalog struct {
	Tracks  []models.Track
	ByID    map[string]*services.SpotifyTrack
	Err     error
	Queries []string
}

func (m *MockCatalog) SearchTracks(ctx context.Context, query string, limit int) ([]models.Track, error) {
	m.Queries = append(m.Queries, query)
	if m.Err != nil {
		return nil, m.Err
	}
	if limit > 0 && limit < len(m.Tracks) {
		return m.Tracks[:limit], nil
	}
	return m.Tracks, nil
}

func (m *MockCatalog) Track(ctx context.Context, id string) (*services.SpotifyTrack, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if track, ok := m.ByID[id]; ok {
		return track, nil
	}
	return nil, shared.ErrTrackNotFound
}

func (m *MockCatalog) Name() string { return "mock" }

// MockAnalyzer is a test double for [services.Analyzer] that echoes artist and title into Result.
type MockAnalyzer struct {
	Result   *models.Analysis
	Err      error
	Requests []models.AnalysisRequest
}

func (m *MockAnalyzer) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.Analysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m.Requests = append(m.Requests, req)
	if m.Err != nil {
		return nil, m.Err
	}

	result := models.Analysis{}
	if m.Result != nil {
		result = *m.Result
	}
	result.Artist, result.Title = req.Artist, req.Title
	return &result, nil
}

func (m *MockAnalyzer) Health(ctx context.Context) error { return m.Err }

// FWriter always returns an error on Write
type FWriter struct{}

func (f *FWriter) Write(p []byte) (n int, err error) {
	return 0, errors.New("write failed")
}

// LimitedWriter fails after a certain number of writes
type LimitedWriter struct {
	maxWrites int
	written   int
	target    io.Writer
}

func (l *LimitedWriter) Write(p []byte) (n int, err error) {
	if l.written >= l.maxWrites {
		return 0, errors.New("write limit exceeded")
	}
	l.written++
	return l.target.Write(p)
}

func NewLimitedWriter(maxWrites, written int, target io.Writer) LimitedWriter {
	return LimitedWriter{maxWrites: maxWrites, written: written, target: target}
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}

func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("File does not exist: %s", path)
	}
}

func MustReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}
	return string(content)
}

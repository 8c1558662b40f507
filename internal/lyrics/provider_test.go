package lyrics

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/desertthunder/pulse/internal/shared"
	"golang.org/x/time/rate"
)

func TestLRCLib(t *testing.T) {
	t.Run("Name", func(t *testing.T) {
		if p := NewLRCLib("", nil); p.Name() != "lrclib" {
			t.Errorf("expected name lrclib, got %s", p.Name())
		}
	})

	t.Run("default base URL", func(t *testing.T) {
		if p := NewLRCLib("", nil); p.baseURL != DefaultLRCLibURL {
			t.Errorf("expected %s, got %s", DefaultLRCLibURL, p.baseURL)
		}
	})

	t.Run("sends query parameters and prefers plain lyrics", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/get" {
				t.Errorf("expected path /get, got %s", r.URL.Path)
			}
			if got := r.URL.Query().Get("artist_name"); got != "Daft Punk" {
				t.Errorf("expected artist_name Daft Punk, got %q", got)
			}
			if got := r.URL.Query().Get("track_name"); got != "One More Time & Again" {
				t.Errorf("expected track_name with ampersand, got %q", got)
			}
			if r.Header.Get("User-Agent") != "pulse-test" {
				t.Errorf("expected custom user agent, got %q", r.Header.Get("User-Agent"))
			}
			json.NewEncoder(w).Encode(map[string]any{
				"plainLyrics":  "plain text",
				"syncedLyrics": "[00:01.00] synced text",
			})
		}))
		defer server.Close()

		p := NewLRCLib(server.URL, server.Client(), WithUserAgent("pulse-test"))
		text, err := p.FetchLyrics(context.Background(), "Daft Punk", "One More Time & Again")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if text != "plain text" {
			t.Errorf("expected plain text, got %q", text)
		}
	})

	t.Run("falls back to synced lyrics without timestamps", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{
				"plainLyrics":  nil,
				"syncedLyrics": "[00:01.00] First line\n[00:05.12][01:05.12]Chorus\n[00:09.00]",
			})
		}))
		defer server.Close()

		text, err := NewLRCLib(server.URL, server.Client()).FetchLyrics(context.Background(), "A", "B")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if text != "First line\nChorus\n" {
			t.Errorf("unexpected text %q", text)
		}
	})

	t.Run("no lyric fields is not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"id":1,"instrumental":true,"plainLyrics":null,"syncedLyrics":null}`))
		}))
		defer server.Close()

		_, err := NewLRCLib(server.URL, server.Client()).FetchLyrics(context.Background(), "A", "B")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("404 is not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, `{"code":404,"name":"TrackNotFound"}`, http.StatusNotFound)
		}))
		defer server.Close()

		_, err := NewLRCLib(server.URL, server.Client()).FetchLyrics(context.Background(), "A", "B")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("other status is an upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
			w.Write([]byte("upstream down"))
		}))
		defer server.Close()

		_, err := NewLRCLib(server.URL, server.Client()).FetchLyrics(context.Background(), "A", "B")

		var upstream *UpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
		if upstream.StatusCode != http.StatusBadGateway {
			t.Errorf("expected status 502, got %d", upstream.StatusCode)
		}
		if upstream.Body != "upstream down" {
			t.Errorf("expected body to be kept, got %q", upstream.Body)
		}
		if !errors.Is(err, shared.ErrAPIRequest) {
			t.Error("expected error to match shared.ErrAPIRequest")
		}
		if errors.Is(err, ErrNotFound) {
			t.Error("upstream error must not match ErrNotFound")
		}
		if !strings.Contains(err.Error(), "502") || !strings.Contains(err.Error(), "upstream down") {
			t.Errorf("expected status and body in message, got %q", err.Error())
		}
	})

	t.Run("malformed body is an upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("<html>"))
		}))
		defer server.Close()

		_, err := NewLRCLib(server.URL, server.Client()).FetchLyrics(context.Background(), "A", "B")
		var upstream *UpstreamError
		if !errors.As(err, &upstream) {
			t.Errorf("expected UpstreamError, got %v", err)
		}
	})

	t.Run("transport failure is an upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		_, err := NewLRCLib(url, nil).FetchLyrics(context.Background(), "A", "B")
		var upstream *UpstreamError
		if !errors.As(err, &upstream) {
			t.Fatalf("expected UpstreamError, got %v", err)
		}
		if upstream.Err == nil {
			t.Error("expected wrapped transport error")
		}
	})

	t.Run("cancelled limiter wait is an upstream error", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		limiter := rate.NewLimiter(rate.Limit(1), 1)
		limiter.Allow()

		_, err := NewLRCLib("http://127.0.0.1:1", nil, WithLimiter(limiter)).FetchLyrics(ctx, "A", "B")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	})
}

func TestLyricsOVH(t *testing.T) {
	t.Run("Name", func(t *testing.T) {
		if p := NewLyricsOVH("", nil); p.Name() != "lyrics.ovh" {
			t.Errorf("expected name lyrics.ovh, got %s", p.Name())
		}
	})

	t.Run("path escapes artist and title", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.EscapedPath() != "/AC%2FDC/Back%20in%20Black" {
				t.Errorf("unexpected path %s", r.URL.EscapedPath())
			}
			json.NewEncoder(w).Encode(map[string]string{"lyrics": "Back in black"})
		}))
		defer server.Close()

		text, err := NewLyricsOVH(server.URL, server.Client()).FetchLyrics(context.Background(), "AC/DC", "Back in Black")
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if text != "Back in black" {
			t.Errorf("expected lyrics, got %q", text)
		}
	})

	t.Run("404 is not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"No lyrics found"}`))
		}))
		defer server.Close()

		_, err := NewLyricsOVH(server.URL, server.Client()).FetchLyrics(context.Background(), "A", "B")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("empty lyrics field is not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"lyrics":""}`))
		}))
		defer server.Close()

		_, err := NewLyricsOVH(server.URL, server.Client()).FetchLyrics(context.Background(), "A", "B")
		if !errors.Is(err, ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("server error is an upstream error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		_, err := NewLyricsOVH(server.URL, server.Client()).FetchLyrics(context.Background(), "A", "B")
		var upstream *UpstreamError
		if !errors.As(err, &upstream) || upstream.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500 UpstreamError, got %v", err)
		}
	})
}

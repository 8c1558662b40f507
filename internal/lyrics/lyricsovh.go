package lyrics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

const DefaultLyricsOVHURL = "https://api.lyrics.ovh/v1"

// LyricsOVH queries api.lyrics.ovh. It is the secondary provider.
type LyricsOVH struct {
	client
}

// NewLyricsOVH creates a LyricsOVH provider. An empty baseURL uses [DefaultLyricsOVHURL].
func NewLyricsOVH(baseURL string, httpClient *http.Client, opts ...ClientOption) *LyricsOVH {
	if baseURL == "" {
		baseURL = DefaultLyricsOVHURL
	}
	return &LyricsOVH{client: newClient("lyrics.ovh", strings.TrimRight(baseURL, "/"), httpClient, opts...)}
}

func (p *LyricsOVH) Name() string { return p.name }

// FetchLyrics requests /{artist}/{title} with both segments path-escaped.
func (p *LyricsOVH) FetchLyrics(ctx context.Context, artist, title string) (string, error) {
	body, err := p.get(ctx, "/"+url.PathEscape(artist)+"/"+url.PathEscape(title))
	if err != nil {
		return "", err
	}

	var payload struct {
		Lyrics string `json:"lyrics"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", &UpstreamError{Provider: p.name, StatusCode: http.StatusOK, Body: string(body), Err: err}
	}

	if strings.TrimSpace(payload.Lyrics) == "" {
		return "", ErrNotFound
	}
	return payload.Lyrics, nil
}

package lyrics

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

const DefaultLRCLibURL = "https://lrclib.net/api"

// lrcTimestamp matches the leading time tags of a synced line, e.g. "[01:02.34]".
var lrcTimestamp = regexp.MustCompile(`^(\[\d{1,3}:\d{2}(?:[.:]\d{1,3})?\]\s*)+`)

type lrclibRecord struct {
	ID           int     `json:"id"`
	TrackName    string  `json:"trackName"`
	ArtistName   string  `json:"artistName"`
	Instrumental bool    `json:"instrumental"`
	PlainLyrics  *string `json:"plainLyrics"`
	SyncedLyrics *string `json:"syncedLyrics"`
}

// LRCLib queries the lrclib.net lookup endpoint. It is the primary provider.
type LRCLib struct {
	client
}

// NewLRCLib creates an LRCLib provider. An empty baseURL uses [DefaultLRCLibURL].
func NewLRCLib(baseURL string, httpClient *http.Client, opts ...ClientOption) *LRCLib {
	if baseURL == "" {
		baseURL = DefaultLRCLibURL
	}
	return &LRCLib{client: newClient("lrclib", strings.TrimRight(baseURL, "/"), httpClient, opts...)}
}

func (p *LRCLib) Name() string { return p.name }

// FetchLyrics looks up a single record by artist and track name.
// Plain lyrics are preferred; synced lyrics are used with their timestamps removed.
func (p *LRCLib) FetchLyrics(ctx context.Context, artist, title string) (string, error) {
	params := url.Values{}
	params.Set("artist_name", artist)
	params.Set("track_name", title)

	body, err := p.get(ctx, "/get?"+params.Encode())
	if err != nil {
		return "", err
	}

	var record lrclibRecord
	if err := json.Unmarshal(body, &record); err != nil {
		return "", &UpstreamError{Provider: p.name, StatusCode: http.StatusOK, Body: string(body), Err: err}
	}

	if record.PlainLyrics != nil && strings.TrimSpace(*record.PlainLyrics) != "" {
		return *record.PlainLyrics, nil
	}
	if record.SyncedLyrics != nil {
		if text := stripTimestamps(*record.SyncedLyrics); strings.TrimSpace(text) != "" {
			return text, nil
		}
	}
	return "", ErrNotFound
}

func stripTimestamps(synced string) string {
	lines := strings.Split(synced, "\n")
	for i, line := range lines {
		lines[i] = lrcTimestamp.ReplaceAllString(strings.TrimRight(line, "\r"), "")
	}
	return strings.Join(lines, "\n")
}

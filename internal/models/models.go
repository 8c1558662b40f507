package models

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/desertthunder/pulse/internal/shared"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Track is a catalog track flattened for display and lyrics lookup.
type Track struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Artists    string `json:"artists"` // Artist names joined by ", "
	Album      string `json:"album"`
	Image      string `json:"image,omitempty"`
	PreviewURL string `json:"previewUrl,omitempty"`
	SpotifyURL string `json:"spotifyUrl,omitempty"`
}

// PrimaryArtist returns the first artist credited on the track.
func (t Track) PrimaryArtist() string {
	first, _, _ := strings.Cut(t.Artists, ",")
	return strings.TrimSpace(first)
}

// AnalysisRequest is the body of an emotion analysis call.
type AnalysisRequest struct {
	Artist string `json:"artist"`
	Title  string `json:"title"`
	Lyrics string `json:"lyrics" validate:"required"`
}

// Validate requires non-blank lyrics.
func (r AnalysisRequest) Validate() error {
	r.Lyrics = strings.TrimSpace(r.Lyrics)
	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("%w: lyrics are required", shared.ErrInvalidInput)
	}
	return nil
}

// Emotion is a single labeled score.
type Emotion struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// Analysis is the emotion analysis of a song's lyrics.
type Analysis struct {
	Artist    string    `json:"artist"`
	Title     string    `json:"title"`
	Emotions  []Emotion `json:"emotions"`
	Embedding []float64 `json:"embedding,omitempty"`
}

// Ranked returns the emotions ordered by descending score.
func (a Analysis) Ranked() []Emotion {
	ranked := slices.Clone(a.Emotions)
	slices.SortStableFunc(ranked, func(x, y Emotion) int { return cmp.Compare(y.Score, x.Score) })
	return ranked
}

// Top returns the highest scoring emotion, if any.
func (a Analysis) Top() (Emotion, bool) {
	ranked := a.Ranked()
	if len(ranked) == 0 {
		return Emotion{}, false
	}
	return ranked[0], true
}

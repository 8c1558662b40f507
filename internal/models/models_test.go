package models

import (
	"errors"
	"testing"

	"github.com/desertthunder/pulse/internal/shared"
)

func TestTrack(t *testing.T) {
	t.Run("PrimaryArtist", func(t *testing.T) {
		tc := []struct {
			artists string
			want    string
		}{
			{artists: "Daft Punk", want: "Daft Punk"},
			{artists: "Daft Punk, Pharrell Williams, Nile Rodgers", want: "Daft Punk"},
			{artists: "", want: ""},
		}

		for _, tt := range tc {
			if got := (Track{Artists: tt.artists}).PrimaryArtist(); got != tt.want {
				t.Errorf("PrimaryArtist(%q) = %q, want %q", tt.artists, got, tt.want)
			}
		}
	})
}

func TestAnalysisRequest(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		if err := (AnalysisRequest{Lyrics: "la la"}).Validate(); err != nil {
			t.Errorf("expected no error, got %v", err)
		}
	})

	t.Run("blank lyrics", func(t *testing.T) {
		err := (AnalysisRequest{Artist: "A", Title: "B", Lyrics: "  \n"}).Validate()
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestAnalysis(t *testing.T) {
	a := Analysis{Emotions: []Emotion{
		{Label: "sadness", Score: 0.2},
		{Label: "joy", Score: 0.7},
		{Label: "anger", Score: 0.1},
	}}

	t.Run("Ranked", func(t *testing.T) {
		ranked := a.Ranked()
		if ranked[0].Label != "joy" || ranked[2].Label != "anger" {
			t.Errorf("unexpected order %+v", ranked)
		}
		if a.Emotions[0].Label != "sadness" {
			t.Error("expected original slice to be untouched")
		}
	})

	t.Run("Top", func(t *testing.T) {
		top, ok := a.Top()
		if !ok || top.Label != "joy" {
			t.Errorf("expected joy, got %+v", top)
		}
		if _, ok := (Analysis{}).Top(); ok {
			t.Error("expected no top emotion for empty analysis")
		}
	})
}

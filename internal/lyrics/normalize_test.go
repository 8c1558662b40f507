package lyrics

import (
	"slices"
	"testing"
)

func TestNormalizeTitle(t *testing.T) {
	tc := []struct {
		name  string
		input string
		want  string
	}{
		{name: "feat parenthetical", input: "Song (feat. Other Artist)", want: "Song"},
		{name: "ft parenthetical", input: "Song (ft. Someone)", want: "Song"},
		{name: "mixed case feat", input: "Song (FEAT. Someone Else) Live", want: "Song Live"},
		{name: "bracketed remaster", input: "Song [2009 Remaster]", want: "Song"},
		{name: "parenthetical remaster", input: "Song (2011 Remastered Version)", want: "Song"},
		{name: "trailing remastered suffix", input: "Song - Remastered 2009", want: "Song"},
		{name: "trailing remaster suffix", input: "Song - Remaster", want: "Song"},
		{name: "feat then remaster suffix", input: "Song (feat. X) - Remastered 2011", want: "Song"},
		{name: "whitespace collapsed", input: "  Song   With \t Gaps  ", want: "Song With Gaps"},
		{name: "no-break spaces collapsed", input: "Song\u00a0\u00a0Title (feat. X)", want: "Song Title"},
		{name: "remaster suffix with no-break spaces", input: "Song\u00a0-\u00a0Remastered 2009", want: "Song"},
		{name: "no markers", input: "Plain Title", want: "Plain Title"},
		{name: "hyphen without remaster", input: "Song - Live", want: "Song - Live"},
		{name: "remaster needs content before it in parens", input: "Song (remaster)", want: "Song (remaster)"},
		{name: "remastering is not a suffix match", input: "Song - Remastering", want: "Song - Remastering"},
		{name: "empty", input: "", want: ""},
		{name: "only marker", input: "(feat. Someone)", want: ""},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeTitle(tt.input); got != tt.want {
				t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	t.Run("idempotent", func(t *testing.T) {
		inputs := []string{
			"Song (feat. Other Artist)",
			"Song - Remastered 2009",
			"Song [2009 Remaster] (ft. X)",
			"Song (Live 1999 Remaster) - Remastered",
			"Another   Song (feat. A) [Remastered]",
		}
		for _, in := range inputs {
			once := NormalizeTitle(in)
			if twice := NormalizeTitle(once); twice != once {
				t.Errorf("NormalizeTitle not idempotent for %q: %q then %q", in, once, twice)
			}
		}
	})
}

func TestTitleVariants(t *testing.T) {
	t.Run("appends normalized variant", func(t *testing.T) {
		got := TitleVariants("Song (feat. Other Artist)")
		want := []string{"Song (feat. Other Artist)", "Song"}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("single variant when unchanged", func(t *testing.T) {
		got := TitleVariants("Song")
		if !slices.Equal(got, []string{"Song"}) {
			t.Errorf("expected only the original title, got %v", got)
		}
	})

	t.Run("skips empty normalized variant", func(t *testing.T) {
		got := TitleVariants("(feat. Someone)")
		if !slices.Equal(got, []string{"(feat. Someone)"}) {
			t.Errorf("expected only the original title, got %v", got)
		}
	})
}

// package formatter renders lyrics, catalog tracks and emotion analyses as plain text, Markdown and JSON
package formatter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/desertthunder/pulse/internal/lyrics"
	"github.com/desertthunder/pulse/internal/models"
	"github.com/mattn/go-runewidth"
)

const (
	nameWidth   = 32
	artistWidth = 28
	albumWidth  = 28
	barWidth    = 24
)

// NotFoundMessage is the message shown for a resolution without lyrics.
func NotFoundMessage(r *lyrics.Result) string {
	return fmt.Sprintf("No lyrics found for %q by %q.", r.Title, r.Artist)
}

// LyricsToText renders a heading line followed by the lyrics.
func LyricsToText(r *lyrics.Result) []byte {
	var buf bytes.Buffer
	if !r.Found() {
		buf.WriteString(NotFoundMessage(r) + "\n")
		return buf.Bytes()
	}

	fmt.Fprintf(&buf, "%s - %s\n\n", r.Artist, r.Title)
	buf.WriteString(r.Text())
	buf.WriteString("\n")
	return buf.Bytes()
}

// LyricsToMarkdown renders the title as a heading and every lyric line as a hard line break.
func LyricsToMarkdown(r *lyrics.Result) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", r.Title)
	fmt.Fprintf(&buf, "**Artist**: %s\n\n", r.Artist)

	if !r.Found() {
		buf.WriteString("_" + NotFoundMessage(r) + "_\n")
		return buf.Bytes()
	}

	lines := strings.Split(r.Text(), "\n")
	for i, line := range lines {
		buf.WriteString(line)
		if i < len(lines)-1 {
			buf.WriteString("  ")
		}
		buf.WriteString("\n")
	}
	return buf.Bytes()
}

// LyricsToJSON renders the result as indented JSON ({"artist","title","lyrics"}).
func LyricsToJSON(r *lyrics.Result) ([]byte, error) {
	return MarshalJSON(r, true)
}

// MarshalJSON marshals v, optionally indented with two spaces.
func MarshalJSON(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

// TracksToText renders tracks as a table whose columns stay aligned for wide characters.
func TracksToText(tracks []models.Track) []byte {
	var buf bytes.Buffer
	if len(tracks) == 0 {
		buf.WriteString("No tracks found.\n")
		return buf.Bytes()
	}

	indexWidth := len(fmt.Sprint(len(tracks)))
	fmt.Fprintf(&buf, "%s  %s  %s  %s  %s\n",
		pad("#", indexWidth), pad("TITLE", nameWidth), pad("ARTISTS", artistWidth), pad("ALBUM", albumWidth), "ID")
	for i, t := range tracks {
		fmt.Fprintf(&buf, "%s  %s  %s  %s  %s\n",
			pad(fmt.Sprint(i+1), indexWidth),
			pad(t.Name, nameWidth),
			pad(t.Artists, artistWidth),
			pad(t.Album, albumWidth),
			t.ID,
		)
	}
	return buf.Bytes()
}

// AnalysisToText renders emotion scores as ranked bars.
func AnalysisToText(a *models.Analysis) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s - %s\n\n", a.Artist, a.Title)

	ranked := a.Ranked()
	if len(ranked) == 0 {
		buf.WriteString("No emotions detected.\n")
		return buf.Bytes()
	}

	labelWidth := 0
	for _, e := range ranked {
		labelWidth = max(labelWidth, runewidth.StringWidth(e.Label))
	}
	for _, e := range ranked {
		fmt.Fprintf(&buf, "%s  %s %5.1f%%\n", pad(e.Label, labelWidth), Bar(e.Score, barWidth), e.Score*100)
	}
	if len(a.Embedding) > 0 {
		fmt.Fprintf(&buf, "\nembedding: %d dimensions\n", len(a.Embedding))
	}
	return buf.Bytes()
}

// Bar draws score (0..1) as a fixed-width bar.
func Bar(score float64, width int) string {
	score = min(max(score, 0), 1)
	filled := int(score*float64(width) + 0.5)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// pad truncates s to width display cells and right-pads it with spaces.
func pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}

// Slug converts s to a lowercase file-name-safe string.
func Slug(s string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteRune('-')
			dash = true
		}
	}
	return strings.Trim(b.String(), "-")
}

// LyricsFilename returns "<artist>-<title>.txt" as a slug.
func LyricsFilename(r *lyrics.Result) string {
	name := Slug(r.Artist + " " + r.Title)
	if name == "" {
		name = "untitled"
	}
	return name + ".txt"
}

// NumberedLyricsFilename prefixes [LyricsFilename] with n, so rows of a batch that resolve to the
// same song get distinct files.
func NumberedLyricsFilename(n int, r *lyrics.Result) string {
	return fmt.Sprintf("%03d-%s", n, LyricsFilename(r))
}

// WriteLyricsFile writes the plain-text rendering of r into dir and returns the file path.
func WriteLyricsFile(r *lyrics.Result, dir string) (string, error) {
	return WriteLyricsFileAs(r, dir, LyricsFilename(r))
}

// WriteLyricsFileAs is [WriteLyricsFile] with an explicit file name.
func WriteLyricsFileAs(r *lyrics.Result, dir, name string) (string, error) {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, LyricsToText(r), 0644); err != nil {
		return "", fmt.Errorf("failed to write lyrics file: %w", err)
	}
	return path, nil
}

// WriteJSONFile writes v as indented JSON to path.
func WriteJSONFile(v any, path string) error {
	data, err := MarshalJSON(v, true)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

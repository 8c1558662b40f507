package lyrics

import (
	"regexp"
	"strings"
)

const relatedFooter = "You might also like"

var (
	lineBreak   = regexp.MustCompile(`\r\n|\r|\n|\x{2028}|\x{2029}`)
	headingWord = regexp.MustCompile(`lyrics|paroles|letra|songtext|liedtext|tekst|chanson`)
	embedSuffix = regexp.MustCompile(`(?i)\d*Embed$`)
)

// Sanitize strips provider-injected noise from raw lyrics text.
//
// The passes run in a fixed order: blank lines are dropped, a leading "<Artist> - <Title> Lyrics" style
// heading is removed, "You might also like" footers are removed, and trailing "123Embed" artifacts are
// cut from every line. An empty return value means nothing usable was left.
func Sanitize(raw, artist, title string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	lines := splitLines(raw)
	if len(lines) == 0 {
		return ""
	}

	if isHeading(lines[0], artist, title) {
		lines = lines[1:]
	}

	kept := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.EqualFold(line, relatedFooter) {
			continue
		}
		line = strings.TrimSpace(embedSuffix.ReplaceAllString(line, ""))
		if line == "" {
			continue
		}
		kept = append(kept, line)
	}

	return strings.TrimSpace(strings.Join(kept, "\n"))
}

func splitLines(s string) []string {
	parts := lineBreak.Split(s, -1)
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			lines = append(lines, p)
		}
	}
	return lines
}

// isHeading reports whether line names the song and carries a "lyrics" word.
// Both conditions must hold.
func isHeading(line, artist, title string) bool {
	lower := strings.ToLower(line)
	if !headingWord.MatchString(lower) {
		return false
	}
	return containsFolded(lower, artist) || containsFolded(lower, title)
}

func containsFolded(lower, needle string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	return needle != "" && strings.Contains(lower, needle)
}

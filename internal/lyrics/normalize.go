package lyrics

import (
	"regexp"
	"strings"
)

// titleMarkers are applied in order, once each.
var titleMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\(feat\.[^)]+\)`),
	regexp.MustCompile(`(?i)\(ft\.[^)]+\)`),
	regexp.MustCompile(`(?i)\[[^\]]*remaster[^\]]*\]`),
	regexp.MustCompile(`(?i)\([^)]+remaster[^)]*\)`),
	regexp.MustCompile(`(?i)[\s\p{Z}]+-[\s\p{Z}]+remaster(ed)?\b.*$`),
}

// Includes Unicode spaces such as U+00A0.
var whitespaceRun = regexp.MustCompile(`[\s\p{Z}]+`)

// NormalizeTitle removes collaboration and remaster markers from a track title and collapses whitespace.
//
//	NormalizeTitle("Song (feat. Other Artist)") // "Song"
//	NormalizeTitle("Song - Remastered 2009")    // "Song"
func NormalizeTitle(title string) string {
	out := title
	for _, re := range titleMarkers {
		out = re.ReplaceAllString(out, "")
	}
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(out, " "))
}

// TitleVariants returns the spellings of title to try, original first.
// The normalized title is appended only when it is non-empty and differs from the original.
func TitleVariants(title string) []string {
	variants := []string{title}
	if normalized := NormalizeTitle(title); normalized != "" && normalized != title {
		variants = append(variants, normalized)
	}
	return variants
}

package extract

import "regexp"

var (
	spaceRuns   = regexp.MustCompile(` +`)
	newlineRuns = regexp.MustCompile(`\n+`)
)

// Normalize cleans scraped text for regex extraction: every rune outside
// the printable ASCII set becomes a single space, then runs of spaces and
// runs of newlines each collapse to one. Normalize is idempotent.
func Normalize(text string) string {
	cleaned := make([]rune, 0, len(text))
	for _, r := range text {
		if printable(r) {
			cleaned = append(cleaned, r)
		} else {
			cleaned = append(cleaned, ' ')
		}
	}

	out := spaceRuns.ReplaceAllString(string(cleaned), " ")
	return newlineRuns.ReplaceAllString(out, "\n")
}

// printable reports whether r is in the printable ASCII set: the visible
// characters plus space, tab, newline, carriage return, vertical tab and
// form feed.
func printable(r rune) bool {
	if r >= 0x20 && r < 0x7f {
		return true
	}
	switch r {
	case '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// Package extract pulls single facts out of loosely formatted infobox
// text using hand-tuned regular expressions.
package extract

import (
	"errors"
	"fmt"
	"regexp"
)

// ErrExtraction marks any failure to pull the requested field out of the
// text, including a pattern that defines no capture group by the
// requested name.
var ErrExtraction = errors.New("extraction failed")

// Field returns the named capture group from the first match of re in
// text. Patterns are expected to be compiled case-insensitive and
// newline-spanning (the field tables here embed (?is)); only the first
// match in the text is considered. A miss fails with errText; a match
// whose pattern never defines the requested group fails too, since the
// caller asked for a capture the pattern cannot produce.
func Field(text string, re *regexp.Regexp, group, errText string) (string, error) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", fmt.Errorf("%w: %s", ErrExtraction, errText)
	}

	for i, name := range re.SubexpNames() {
		if i > 0 && name == group {
			return m[i], nil
		}
	}
	return "", fmt.Errorf("%w: pattern defines no capture group %q", ErrExtraction, group)
}

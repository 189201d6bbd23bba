// Package match implements token-level template matching with a single
// variable-length wildcard.
package match

import "strings"

// Wildcard is the template token that absorbs zero or more query tokens.
const Wildcard = "%"

// Match matches a query against a template. A template is a sequence of
// literal tokens, compared case-insensitively, with at most one Wildcard
// token. The wildcard absorbs whatever query tokens remain between the
// template's fixed prefix and suffix.
//
// On success it returns the tokens bound to the wildcard (empty for
// templates without one) and true. On failure it returns nil and false.
func Match(template, query []string) ([]string, bool) {
	star := wildcardIndex(template)

	if star < 0 {
		if !tokensEqual(template, query) {
			return nil, false
		}
		return []string{}, true
	}

	prefix := template[:star]
	suffix := template[star+1:]

	// The wildcard may absorb zero tokens, but never a negative span.
	if len(query) < len(prefix)+len(suffix) {
		return nil, false
	}

	if !tokensEqual(prefix, query[:len(prefix)]) {
		return nil, false
	}
	if !tokensEqual(suffix, query[len(query)-len(suffix):]) {
		return nil, false
	}

	capture := make([]string, len(query)-len(prefix)-len(suffix))
	copy(capture, query[len(prefix):len(query)-len(suffix)])
	return capture, true
}

// wildcardIndex returns the position of the first Wildcard token, or -1.
func wildcardIndex(template []string) int {
	for i, tok := range template {
		if tok == Wildcard {
			return i
		}
	}
	return -1
}

// tokensEqual compares two token slices case-insensitively.
func tokensEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !strings.EqualFold(a[i], b[i]) {
			return false
		}
	}
	return true
}

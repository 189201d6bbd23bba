package pipeline

import (
	"regexp"
	"strings"
)

// FieldSpec describes how to pull one fact out of infobox text: a
// pattern with a named capture group, the diagnostic used when the
// pattern misses, and optional post-processing of the raw capture.
// New facts are added by appending rows, not by new control flow.
type FieldSpec struct {
	Name        string
	Pattern     *regexp.Regexp
	Group       string
	ErrText     string
	Postprocess func(string) string
}

// Infobox field labels that may follow a birthplace. The capture stops
// at the first of these (or end of text).
var birthBoundaryLabels = []string{
	"Died", "Other names", "Height", "Listed", "Nationality", "Occupation",
	"Political", "Spouse", "Partner", "Children", "College", "NBA draft",
	"High school", "Playing career", "Military", "Website", "Stats",
	"Medals", "Relatives", "Parents", "Genres", "Years active", "Labels",
	"Member of",
}

var radiusField = FieldSpec{
	Name:    "polar radius",
	Pattern: regexp.MustCompile(`(?is)(?:Polar radius.*?)(?: ?[\d]+ )?(?P<radius>[\d,.]+)(?:.*?)km`),
	Group:   "radius",
	ErrText: "Page infobox has no polar radius information",
}

// The label may be followed by a parenthetical year and footnote
// markers; up to 40 characters are skipped before the figure.
var populationField = FieldSpec{
	Name: "population",
	Pattern: regexp.MustCompile(
		`(?is)Population(?: [^\d\n]*)?` +
			`[\s\S]{0,40}?` +
			`(?P<population>\d{1,3}(?:,\d{3})+)`),
	Group:   "population",
	ErrText: "Page infobox has no population information",
}

// Known defect, kept as is: this pattern was copied from the population
// field and still captures a population figure, while the resolver asks
// for a "languages" group the pattern never defines. Every lookup fails
// with a missing-group extraction error until a genuine language
// pattern replaces it.
var languageField = FieldSpec{
	Name:    "official language",
	Pattern: regexp.MustCompile(`(?is)Population[^\d]*(?P<population>\d{1,3}(?:,\d{3})+)`),
	Group:   "languages",
	ErrText: "Page infobox has no official language information",
}

var birthPlaceField = FieldSpec{
	Name: "birth place",
	Pattern: regexp.MustCompile(
		`(?is)Born` +
			// optional ISO date or extra detail in parentheses
			`(?:[^A-Za-z0-9\n]*(?:[^\n]*?\([^)]*\)))?` +
			// optional long-form or ISO birth date
			`(?:[^A-Za-z0-9\n]*(?:[A-Z][a-z]+\s+\d{1,2},\s+\d{4}|\d{1,2}\s+[A-Z][a-z]+\s+\d{4}|\d{4}-\d{2}-\d{2}))?` +
			`(?:\s*\(age\s+\d+\))?` +
			// optional citation marker [1], [2], ...
			`(?:\[[^\]]+\])?` +
			`[\s,]*` +
			// the place itself must contain at least one comma
			`(?P<birthplace>[A-Z][^\n,]*?(?:,\s*[A-Za-z .&'-]+)+)` +
			// bounded by the next infobox field label or end of text;
			// RE2 has no lookahead, so the label is consumed and discarded
			`(?:\s*(?:` + strings.Join(birthBoundaryLabels, "|") + `|$))`),
	Group:       "birthplace",
	ErrText:     "Page infobox has no birthplace information",
	Postprocess: birthPlacePost,
}

// birthPlacePost trims any trailing field label the capture picked up
// and keeps only the first two comma-delimited components.
func birthPlacePost(raw string) string {
	place := trimAtLabel(strings.TrimSpace(raw))

	parts := strings.Split(place, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	if len(parts) >= 2 {
		return parts[0] + ", " + parts[1]
	}
	return place
}

// trimAtLabel cuts the string at the earliest occurrence of any known
// infobox field label.
func trimAtLabel(s string) string {
	labels := append([]string{"Citizenship"}, birthBoundaryLabels...)

	cut := len(s)
	for _, label := range labels {
		if i := strings.Index(s, label); i >= 0 && i < cut {
			cut = i
		}
	}
	return strings.TrimSpace(s[:cut])
}

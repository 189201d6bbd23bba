// Package pipeline resolves single-fact questions about a subject:
// fetch the subject's page, render its first infobox, extract one field
// with a hand-tuned pattern, post-process the capture.
package pipeline

import (
	"context"
	"errors"
	"fmt"

	"github.com/avolkov/infobot/internal/extract"
)

// ErrNotImplemented marks a fact type with no extraction routine.
var ErrNotImplemented = errors.New("not implemented")

// PageSource turns a free-text subject name into raw page HTML.
// *wiki.Client satisfies it.
type PageSource interface {
	SubjectHTML(ctx context.Context, subject string) (string, error)
}

// Resolver answers single-fact questions about named subjects.
type Resolver struct {
	source PageSource
}

// NewResolver creates a Resolver backed by the given page source.
func NewResolver(source PageSource) *Resolver {
	return &Resolver{source: source}
}

// PolarRadius returns the polar radius figure from a planet's infobox.
func (r *Resolver) PolarRadius(ctx context.Context, planet string) (string, error) {
	return r.resolve(ctx, planet, radiusField)
}

// Population returns the population figure from a location's infobox.
func (r *Resolver) Population(ctx context.Context, location string) (string, error) {
	return r.resolve(ctx, location, populationField)
}

// OfficialLanguage returns the official language of a country. Its
// field pattern is defective (see fields.go) and currently fails for
// every input.
func (r *Resolver) OfficialLanguage(ctx context.Context, country string) (string, error) {
	return r.resolve(ctx, country, languageField)
}

// BirthPlace returns a person's birthplace as "<city>, <region>".
func (r *Resolver) BirthPlace(ctx context.Context, person string) (string, error) {
	return r.resolve(ctx, person, birthPlaceField)
}

// BirthDate has no extraction routine defined and always fails with
// ErrNotImplemented.
func (r *Resolver) BirthDate(ctx context.Context, person string) (string, error) {
	return "", fmt.Errorf("birth date of %q: %w", person, ErrNotImplemented)
}

// resolve runs the fixed pipeline for one field spec.
func (r *Resolver) resolve(ctx context.Context, subject string, spec FieldSpec) (string, error) {
	text, err := r.infoboxText(ctx, subject)
	if err != nil {
		return "", fmt.Errorf("resolve %s of %q: %w", spec.Name, subject, err)
	}

	raw, err := extract.Field(text, spec.Pattern, spec.Group, spec.ErrText)
	if err != nil {
		return "", fmt.Errorf("resolve %s of %q: %w", spec.Name, subject, err)
	}

	if spec.Postprocess != nil {
		return spec.Postprocess(raw), nil
	}
	return raw, nil
}

// infoboxText fetches the subject's page and returns its normalized
// first-infobox text. Fetched per query, never cached.
func (r *Resolver) infoboxText(ctx context.Context, subject string) (string, error) {
	pageHTML, err := r.source.SubjectHTML(ctx, subject)
	if err != nil {
		return "", err
	}

	text, err := extract.InfoboxText(pageHTML)
	if err != nil {
		return "", err
	}
	return extract.Normalize(text), nil
}

package pipeline

import (
	"context"
	"strings"

	"github.com/avolkov/infobot/internal/dispatch"
)

// DefaultTable builds the query dispatch table: one row per supported
// question shape, in precedence order, plus the terminating "bye" row.
func DefaultTable(r *Resolver) *dispatch.Table {
	return dispatch.NewTable([]dispatch.Entry{
		{
			Template: strings.Fields("when was % born"),
			Action:   subjectAction(r.BirthDate),
		},
		{
			Template: strings.Fields("what is the polar radius of %"),
			Action:   firstTokenAction(r.PolarRadius),
		},
		{
			Template: strings.Fields("what is the population of %"),
			Action:   subjectAction(r.Population),
		},
		{
			Template: strings.Fields("what is the official language of %"),
			Action:   subjectAction(r.OfficialLanguage),
		},
		{
			Template: strings.Fields("where was % born"),
			Action:   subjectAction(r.BirthPlace),
		},
		{
			Template: []string{"bye"},
			Terminal: true,
		},
	})
}

// subjectAction adapts a resolver method into an action: the captured
// tokens join into one subject name and the fact comes back as a
// one-element answer list.
func subjectAction(resolve func(context.Context, string) (string, error)) dispatch.Action {
	return func(ctx context.Context, capture []string) ([]string, error) {
		if len(capture) == 0 {
			return nil, nil
		}
		fact, err := resolve(ctx, strings.Join(capture, " "))
		if err != nil {
			return nil, err
		}
		return []string{fact}, nil
	}
}

// firstTokenAction resolves using only the first captured token.
func firstTokenAction(resolve func(context.Context, string) (string, error)) dispatch.Action {
	return func(ctx context.Context, capture []string) ([]string, error) {
		if len(capture) == 0 {
			return nil, nil
		}
		fact, err := resolve(ctx, capture[0])
		if err != nil {
			return nil, err
		}
		return []string{fact}, nil
	}
}

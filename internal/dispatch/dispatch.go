// Package dispatch routes tokenized queries to actions through an
// ordered template table.
package dispatch

import (
	"context"
	"fmt"

	"github.com/avolkov/infobot/internal/match"
)

// Answer strings for the two recoverable outcomes. A matched action that
// produced nothing is distinct from a query no template understood.
const (
	NoAnswers      = "No answers"
	DontUnderstand = "I don't understand"
)

// Action resolves a wildcard capture into zero or more answer strings.
type Action func(ctx context.Context, capture []string) ([]string, error)

// Entry binds one template to an action. A Terminal entry carries no
// action; matching it signals the caller to end the session.
type Entry struct {
	Template []string
	Action   Action
	Terminal bool
}

// Result is the outcome of dispatching one query: either a termination
// signal or an ordered list of answers, never both.
type Result struct {
	Answers   []string
	Terminate bool
}

// Table is an immutable ordered template/action table. The first
// matching template wins; order is fixed at construction.
type Table struct {
	entries []Entry
}

// NewTable builds a dispatch table from entries in precedence order.
func NewTable(entries []Entry) *Table {
	copied := make([]Entry, len(entries))
	copy(copied, entries)
	return &Table{entries: copied}
}

// Dispatch scans the table in order and invokes the first matching
// entry's action with the captured tokens. Action errors propagate
// wrapped; they are never converted into answer strings here.
func (t *Table) Dispatch(ctx context.Context, query []string) (Result, error) {
	for _, entry := range t.entries {
		capture, ok := match.Match(entry.Template, query)
		if !ok {
			continue
		}

		if entry.Terminal {
			return Result{Terminate: true}, nil
		}

		answers, err := entry.Action(ctx, capture)
		if err != nil {
			return Result{}, fmt.Errorf("action failed: %w", err)
		}
		if len(answers) == 0 {
			answers = []string{NoAnswers}
		}
		return Result{Answers: answers}, nil
	}

	return Result{Answers: []string{DontUnderstand}}, nil
}

package query

import (
	"slices"
	"strings"

	"github.com/grenewode/todo-queue/internal/list"
)

// Selector picks items from a list by predicate, in list order.
// [*list.List] satisfies it.
type Selector interface {
	Select(m list.Matcher) ([]list.ID, error)
}

// NarrowSource can also re-select among a given set of IDs.
type NarrowSource interface {
	Selector
	SelectFrom(ids []list.ID, m list.Matcher) ([]list.ID, error)
}

// Query is an ordered, non-empty sequence of filter stages.
type Query struct {
	stages []Filter
}

// From returns a one-stage query.
func From(f Filter) Query {
	return Query{stages: []Filter{f}}
}

// Then returns a new query with f appended as the last stage.
// q itself is left unchanged.
func (q Query) Then(f Filter) Query {
	stages := make([]Filter, 0, len(q.stages)+1)
	stages = append(stages, q.stages...)
	stages = append(stages, f)

	return Query{stages: stages}
}

// Stages returns a copy of the stage filters in order.
func (q Query) Stages() []Filter {
	return slices.Clone(q.stages)
}

// Select runs every stage independently against the whole list and
// concatenates the results in stage order. Stages do not narrow one
// another: an item matching two stages appears twice.
func (q Query) Select(s Selector) ([]list.ID, error) {
	var ids []list.ID

	for _, stage := range q.stages {
		got, err := s.Select(stage)
		if err != nil {
			return nil, err
		}

		ids = append(ids, got...)
	}

	return ids, nil
}

// Narrow runs the stages as a pipe: the first stage selects from the
// whole list and each later stage keeps only the survivors that match
// it.
func (q Query) Narrow(s NarrowSource) ([]list.ID, error) {
	if len(q.stages) == 0 {
		return nil, nil
	}

	ids, err := s.Select(q.stages[0])
	if err != nil {
		return nil, err
	}

	for _, stage := range q.stages[1:] {
		ids, err = s.SelectFrom(ids, stage)
		if err != nil {
			return nil, err
		}
	}

	return ids, nil
}

// String returns the query in query syntax, stages joined by " => ".
func (q Query) String() string {
	parts := make([]string, len(q.stages))
	for i, stage := range q.stages {
		parts[i] = StageString(stage)
	}

	return strings.Join(parts, " => ")
}

// StageString prints f as a whole stage. A bare "all" stage means [All],
// so the name "all" is parenthesized there.
func StageString(f Filter) string {
	if n, ok := f.(Name); ok && n == "all" {
		return "(all)"
	}

	return f.String()
}

// Package query evaluates item predicates and staged queries.
//
// A [Filter] is an immutable predicate tree. Leaves test one facet of an
// item (name, tag, status); [And], [Or] and [Not] combine them. A
// [Query] is an ordered list of filters whose selections are
// concatenated.
//
// Build trees with [AndOf], [OrOf] and [Negate] rather than composite
// literals: the combinators keep And/Or nodes flat so evaluation stays
// linear in the number of leaves.
package query

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/grenewode/todo-queue/internal/interval"
	"github.com/grenewode/todo-queue/internal/list"
)

// ErrUnsupported is returned when a predicate or sort key is defined but
// has no evaluation yet.
var ErrUnsupported = errors.New("not implemented")

// Filter is a predicate over a single item.
type Filter interface {
	// Match reports whether item satisfies the filter.
	Match(item list.Item) (bool, error)

	// String returns the filter in query syntax.
	String() string
}

type (
	// All matches every item.
	All struct{}

	// None matches nothing.
	None struct{}

	// Name matches items whose name equals it exactly.
	Name string

	// Tag matches items carrying it.
	Tag string

	// StatusIn matches items whose status lies in Range.
	StatusIn struct {
		Range interval.Range[list.Status]
	}

	// PriorityIn is a priority range test. Items have no priority yet, so
	// matching it fails with [ErrUnsupported].
	PriorityIn struct {
		Range interval.Range[int]
	}

	// And matches when every operand matches.
	And []Filter

	// Or matches when any operand matches.
	Or []Filter

	// Not inverts its operand.
	Not struct {
		Filter Filter
	}
)

// ByName returns a filter matching the exact name.
func ByName(name string) Filter { return Name(name) }

// ByTag returns a filter matching items tagged with tag.
func ByTag(tag string) Filter { return Tag(tag) }

// ByStatus returns a filter matching statuses in r.
func ByStatus(r interval.Range[list.Status]) Filter { return StatusIn{Range: r} }

// StatusIs returns a filter matching exactly one status.
func StatusIs(s list.Status) Filter { return StatusIn{Range: interval.Only(s)} }

// ByPriority returns a priority range filter. See [PriorityIn].
func ByPriority(r interval.Range[int]) Filter { return PriorityIn{Range: r} }

// AndOf combines a and b with AND. An operand that is itself an [And]
// contributes its operands instead of nesting.
func AndOf(a, b Filter) Filter {
	var out And

	out = appendAnd(out, a)
	out = appendAnd(out, b)

	return out
}

// OrOf combines a and b with OR, flattening like [AndOf].
func OrOf(a, b Filter) Filter {
	var out Or

	out = appendOr(out, a)
	out = appendOr(out, b)

	return out
}

// Negate wraps f in a [Not]. It never flattens, so Negate(Negate(f)) is
// two nodes deep.
func Negate(f Filter) Filter {
	return Not{Filter: f}
}

func appendAnd(dst And, f Filter) And {
	if inner, ok := f.(And); ok {
		return append(dst, inner...)
	}

	return append(dst, f)
}

func appendOr(dst Or, f Filter) Or {
	if inner, ok := f.(Or); ok {
		return append(dst, inner...)
	}

	return append(dst, f)
}

func (All) Match(list.Item) (bool, error)  { return true, nil }
func (None) Match(list.Item) (bool, error) { return false, nil }

func (n Name) Match(item list.Item) (bool, error) {
	return string(n) == item.Name(), nil
}

func (t Tag) Match(item list.Item) (bool, error) {
	return item.HasTag(string(t)), nil
}

func (s StatusIn) Match(item list.Item) (bool, error) {
	return s.Range.Contains(item.Status()), nil
}

func (p PriorityIn) Match(list.Item) (bool, error) {
	return false, fmt.Errorf("priority filter %s: %w", p, ErrUnsupported)
}

func (a And) Match(item list.Item) (bool, error) {
	for _, f := range a {
		ok, err := f.Match(item)
		if err != nil || !ok {
			return false, err
		}
	}

	return true, nil
}

func (o Or) Match(item list.Item) (bool, error) {
	for _, f := range o {
		ok, err := f.Match(item)
		if err != nil || ok {
			return ok, err
		}
	}

	return false, nil
}

func (n Not) Match(item list.Item) (bool, error) {
	ok, err := n.Filter.Match(item)
	if err != nil {
		return false, err
	}

	return !ok, nil
}

func (All) String() string  { return "all" }
func (None) String() string { return "!all" }

func (n Name) String() string { return string(n) }
func (t Tag) String() string  { return "#" + string(t) }

func (s StatusIn) String() string {
	if v, ok := s.Range.Single(); ok {
		return "%" + v.String()
	}

	return s.Range.Render(func(v list.Status) string { return "%" + v.String() })
}

func (p PriorityIn) String() string {
	if v, ok := p.Range.Single(); ok {
		return "*" + strconv.Itoa(v)
	}

	return p.Range.Render(func(v int) string { return "*" + strconv.Itoa(v) })
}

func (a And) String() string { return join(a, " & ") }
func (o Or) String() string  { return join(o, " ") }

func (n Not) String() string {
	return "!" + group(n.Filter)
}

func join(filters []Filter, sep string) string {
	parts := make([]string, len(filters))
	for i, f := range filters {
		parts[i] = group(f)
	}

	return strings.Join(parts, sep)
}

// group parenthesizes compound operands so the printed form parses back
// to the same tree.
func group(f Filter) string {
	switch f.(type) {
	case And, Or:
		return "(" + f.String() + ")"
	default:
		return f.String()
	}
}

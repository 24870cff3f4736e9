// Package interval models bounded ranges over ordered values.
//
// A [Range] is a pair of [Limit] edges. Each edge includes its value,
// excludes it, or is unbounded. Nothing checks that the low edge sits
// below the high edge: an inverted range is a legal value that contains
// nothing.
//
// The edge comparisons ([Limit.IsLowerBoundOfLimit] and
// [Limit.IsUpperBoundOfLimit]) order edges by permissiveness. They back
// [Range.Union], [Range.Intersection] and [Range.IsSubrangeOf].
package interval

import (
	"cmp"
	"fmt"
	"strings"
)

// Kind says how a [Limit] treats its value.
type Kind uint8

// Limit kinds. The zero value is Unbounded.
const (
	Unbounded Kind = iota
	Includes
	Excludes
)

// Limit is one edge of a [Range].
type Limit[T cmp.Ordered] struct {
	kind  Kind
	value T
}

// Include returns an edge that accepts v itself.
func Include[T cmp.Ordered](v T) Limit[T] {
	return Limit[T]{kind: Includes, value: v}
}

// Exclude returns an edge that stops just short of v.
func Exclude[T cmp.Ordered](v T) Limit[T] {
	return Limit[T]{kind: Excludes, value: v}
}

// Inf returns an unbounded edge.
func Inf[T cmp.Ordered]() Limit[T] {
	return Limit[T]{}
}

// Kind reports whether the edge includes, excludes, or is unbounded.
func (l Limit[T]) Kind() Kind {
	return l.kind
}

// Value returns the edge value. ok is false for an unbounded edge.
func (l Limit[T]) Value() (T, bool) {
	return l.value, l.kind != Unbounded
}

// Equal reports whether both edges are structurally the same.
// The value of an unbounded edge is ignored.
func (l Limit[T]) Equal(o Limit[T]) bool {
	if l.kind != o.kind {
		return false
	}

	return l.kind == Unbounded || l.value == o.value
}

// IsLowerBoundOf reports whether v clears this edge used as a low edge.
func (l Limit[T]) IsLowerBoundOf(v T) bool {
	switch l.kind {
	case Includes:
		return l.value <= v
	case Excludes:
		return l.value < v
	default:
		return true
	}
}

// IsUpperBoundOf reports whether v clears this edge used as a high edge.
func (l Limit[T]) IsUpperBoundOf(v T) bool {
	switch l.kind {
	case Includes:
		return l.value >= v
	case Excludes:
		return l.value > v
	default:
		return true
	}
}

// IsLowerBoundOfLimit reports whether l, used as a low edge, admits at
// least everything o admits. At equal values an including edge is
// weaker than an excluding one. An unbounded edge is the weakest.
func (l Limit[T]) IsLowerBoundOfLimit(o Limit[T]) bool {
	if l.kind == Unbounded {
		return true
	}

	if o.kind == Unbounded {
		return false
	}

	switch c := cmp.Compare(l.value, o.value); {
	case c < 0:
		return true
	case c > 0:
		return false
	default:
		return !(l.kind == Excludes && o.kind == Includes)
	}
}

// IsUpperBoundOfLimit is the mirror of [Limit.IsLowerBoundOfLimit] for
// high edges.
func (l Limit[T]) IsUpperBoundOfLimit(o Limit[T]) bool {
	if l.kind == Unbounded {
		return true
	}

	if o.kind == Unbounded {
		return false
	}

	switch c := cmp.Compare(l.value, o.value); {
	case c > 0:
		return true
	case c < 0:
		return false
	default:
		return !(l.kind == Excludes && o.kind == Includes)
	}
}

// Range is an interval between two edges.
type Range[T cmp.Ordered] struct {
	Low  Limit[T]
	High Limit[T]
}

// New returns the range between low and high.
func New[T cmp.Ordered](low, high Limit[T]) Range[T] {
	return Range[T]{Low: low, High: high}
}

// Only returns the range holding exactly v.
func Only[T cmp.Ordered](v T) Range[T] {
	return Range[T]{Low: Include(v), High: Include(v)}
}

// All returns the range with both edges unbounded.
func All[T cmp.Ordered]() Range[T] {
	return Range[T]{}
}

// Contains reports whether both edges accept v.
func (r Range[T]) Contains(v T) bool {
	return r.Low.IsLowerBoundOf(v) && r.High.IsUpperBoundOf(v)
}

// IsSubrangeOf reports whether each edge of r is at least as
// restrictive as the matching edge of o.
func (r Range[T]) IsSubrangeOf(o Range[T]) bool {
	return o.Low.IsLowerBoundOfLimit(r.Low) && o.High.IsUpperBoundOfLimit(r.High)
}

// Union widens r to cover o as well, keeping the weaker edge on each side.
func (r Range[T]) Union(o Range[T]) Range[T] {
	low := o.Low
	if r.Low.IsLowerBoundOfLimit(o.Low) {
		low = r.Low
	}

	high := o.High
	if r.High.IsUpperBoundOfLimit(o.High) {
		high = r.High
	}

	return Range[T]{Low: low, High: high}
}

// Intersection keeps the stronger edge on each side.
func (r Range[T]) Intersection(o Range[T]) Range[T] {
	low := r.Low
	if r.Low.IsLowerBoundOfLimit(o.Low) {
		low = o.Low
	}

	high := r.High
	if r.High.IsUpperBoundOfLimit(o.High) {
		high = o.High
	}

	return Range[T]{Low: low, High: high}
}

// Single returns the value of a range pinned to one included value.
func (r Range[T]) Single() (T, bool) {
	if r.Low.kind == Includes && r.High.kind == Includes && r.Low.value == r.High.value {
		return r.Low.value, true
	}

	var zero T

	return zero, false
}

// Render renders r in bracket notation, e.g. "(1...5]" or "[2...inf)".
// The formatter is applied to bounded values.
func (r Range[T]) Render(value func(T) string) string {
	var b strings.Builder

	if r.Low.kind == Includes {
		b.WriteByte('[')
	} else {
		b.WriteByte('(')
	}

	writeEdge(&b, r.Low, value)
	b.WriteString("...")
	writeEdge(&b, r.High, value)

	if r.High.kind == Includes {
		b.WriteByte(']')
	} else {
		b.WriteByte(')')
	}

	return b.String()
}

func (r Range[T]) String() string {
	return r.Render(func(v T) string { return fmt.Sprint(v) })
}

func writeEdge[T cmp.Ordered](b *strings.Builder, l Limit[T], value func(T) string) {
	if l.kind == Unbounded {
		b.WriteString("inf")
		return
	}

	b.WriteString(value(l.value))
}

package interval_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grenewode/todo-queue/internal/interval"
)

const maxProbe = 5

// allLimits enumerates every edge over the values 1..3.
func allLimits() []interval.Limit[int] {
	limits := []interval.Limit[int]{interval.Inf[int]()}

	for v := 1; v <= 3; v++ {
		limits = append(limits, interval.Include(v), interval.Exclude(v))
	}

	return limits
}

func allRanges() []interval.Range[int] {
	var ranges []interval.Range[int]

	for _, low := range allLimits() {
		for _, high := range allLimits() {
			ranges = append(ranges, interval.New(low, high))
		}
	}

	return ranges
}

func TestContainsAgreesWithEdges(t *testing.T) {
	t.Parallel()

	for _, r := range allRanges() {
		for v := 0; v <= maxProbe; v++ {
			want := r.Low.IsLowerBoundOf(v) && r.High.IsUpperBoundOf(v)
			assert.Equal(t, want, r.Contains(v), "%s contains %d", r, v)
		}
	}
}

func TestContains(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    interval.Range[int]
		in   []int
		out  []int
		name string
	}{
		{
			name: "closed",
			r:    interval.New(interval.Include(1), interval.Include(3)),
			in:   []int{1, 2, 3},
			out:  []int{0, 4},
		},
		{
			name: "open",
			r:    interval.New(interval.Exclude(1), interval.Exclude(3)),
			in:   []int{2},
			out:  []int{1, 3},
		},
		{
			name: "unbounded high",
			r:    interval.New(interval.Exclude(1), interval.Inf[int]()),
			in:   []int{2, 100},
			out:  []int{0, 1},
		},
		{
			name: "everything",
			r:    interval.All[int](),
			in:   []int{-5, 0, 5},
		},
		{
			name: "inverted matches nothing",
			r:    interval.New(interval.Include(3), interval.Include(1)),
			out:  []int{0, 1, 2, 3, 4},
		},
		{
			name: "single",
			r:    interval.Only(2),
			in:   []int{2},
			out:  []int{1, 3},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			for _, v := range tc.in {
				assert.True(t, tc.r.Contains(v), "%s should contain %d", tc.r, v)
			}

			for _, v := range tc.out {
				assert.False(t, tc.r.Contains(v), "%s should not contain %d", tc.r, v)
			}
		})
	}
}

func TestLimitOrdering(t *testing.T) {
	t.Parallel()

	inc := interval.Include(2)
	exc := interval.Exclude(2)
	inf := interval.Inf[int]()

	// Low edges: including is weaker than excluding at the same value.
	assert.True(t, inc.IsLowerBoundOfLimit(exc))
	assert.False(t, exc.IsLowerBoundOfLimit(inc))
	assert.True(t, inc.IsLowerBoundOfLimit(inc))
	assert.True(t, exc.IsLowerBoundOfLimit(exc))

	// High edges mirror that.
	assert.True(t, inc.IsUpperBoundOfLimit(exc))
	assert.False(t, exc.IsUpperBoundOfLimit(inc))

	// Unbounded is weakest on both sides.
	assert.True(t, inf.IsLowerBoundOfLimit(inc))
	assert.False(t, inc.IsLowerBoundOfLimit(inf))
	assert.True(t, inf.IsUpperBoundOfLimit(inc))
	assert.False(t, inc.IsUpperBoundOfLimit(inf))

	assert.True(t, interval.Include(1).IsLowerBoundOfLimit(interval.Exclude(2)))
	assert.True(t, interval.Exclude(3).IsUpperBoundOfLimit(interval.Include(2)))
}

// Edge comparison must agree with what the edges actually accept.
func TestLimitOrderingMatchesAcceptance(t *testing.T) {
	t.Parallel()

	for _, a := range allLimits() {
		for _, b := range allLimits() {
			for v := 0; v <= maxProbe; v++ {
				if a.IsLowerBoundOfLimit(b) && b.IsLowerBoundOf(v) {
					assert.True(t, a.IsLowerBoundOf(v), "low %v weaker than %v but rejects %d", a, b, v)
				}

				if a.IsUpperBoundOfLimit(b) && b.IsUpperBoundOf(v) {
					assert.True(t, a.IsUpperBoundOf(v), "high %v weaker than %v but rejects %d", a, b, v)
				}
			}
		}
	}
}

func TestUnion(t *testing.T) {
	t.Parallel()

	for _, a := range allRanges() {
		for _, b := range allRanges() {
			ab := a.Union(b)
			ba := b.Union(a)

			require.True(t, ab.Low.Equal(ba.Low) && ab.High.Equal(ba.High), "union of %s and %s not commutative", a, b)

			for v := 0; v <= maxProbe; v++ {
				if a.Contains(v) || b.Contains(v) {
					assert.True(t, ab.Contains(v), "%s u %s = %s misses %d", a, b, ab, v)
				}
			}
		}
	}
}

func TestIntersection(t *testing.T) {
	t.Parallel()

	for _, a := range allRanges() {
		for _, b := range allRanges() {
			ab := a.Intersection(b)

			for v := 0; v <= maxProbe; v++ {
				if ab.Contains(v) {
					assert.True(t, a.Contains(v) && b.Contains(v), "%s n %s = %s has stray %d", a, b, ab, v)
				}
			}
		}
	}

	got := interval.New(interval.Include(1), interval.Exclude(3)).
		Intersection(interval.New(interval.Exclude(1), interval.Include(3)))
	assert.Equal(t, "(1...3)", got.String())
}

func TestIsSubrangeOf(t *testing.T) {
	t.Parallel()

	outer := interval.New(interval.Include(1), interval.Inf[int]())

	assert.True(t, interval.Only(2).IsSubrangeOf(outer))
	assert.True(t, interval.New(interval.Exclude(1), interval.Include(3)).IsSubrangeOf(outer))
	assert.True(t, outer.IsSubrangeOf(outer))
	assert.False(t, interval.Only(0).IsSubrangeOf(outer))
	assert.False(t, outer.IsSubrangeOf(interval.Only(2)))
	assert.True(t, outer.IsSubrangeOf(interval.All[int]()))

	for _, a := range allRanges() {
		for _, b := range allRanges() {
			if !a.IsSubrangeOf(b) {
				continue
			}

			for v := 0; v <= maxProbe; v++ {
				if a.Contains(v) {
					assert.True(t, b.Contains(v), "%s within %s but %d escapes", a, b, v)
				}
			}
		}
	}
}

func TestString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r    interval.Range[int]
		want string
	}{
		{interval.New(interval.Exclude(1), interval.Include(4)), "(1...4]"},
		{interval.New(interval.Include(2), interval.Inf[int]()), "[2...inf)"},
		{interval.All[int](), "(inf...inf)"},
		{interval.Only(3), "[3...3]"},
	}

	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, tc.r.String())
		})
	}
}

func TestSingle(t *testing.T) {
	t.Parallel()

	v, ok := interval.Only(7).Single()
	require.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok = interval.New(interval.Include(1), interval.Include(2)).Single()
	assert.False(t, ok)

	_, ok = interval.New(interval.Exclude(1), interval.Exclude(1)).Single()
	assert.False(t, ok)
}

func ExampleRange_Union() {
	a := interval.New(interval.Include(1), interval.Exclude(3))
	b := interval.New(interval.Exclude(2), interval.Include(5))

	fmt.Println(a.Union(b))
	fmt.Println(a.Intersection(b))
	// Output:
	// [1...5]
	// (2...3)
}

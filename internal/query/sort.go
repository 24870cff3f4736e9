package query

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/grenewode/todo-queue/internal/list"
)

// SortKey names an item facet to order by.
type SortKey int

// Sort keys.
const (
	ByNameKey SortKey = iota
	ByStatusKey
	ByPriorityKey
)

var sortKeyNames = map[string]SortKey{
	"name":     ByNameKey,
	"status":   ByStatusKey,
	"priority": ByPriorityKey,
}

func (k SortKey) String() string {
	for name, key := range sortKeyNames {
		if key == k {
			return name
		}
	}

	return fmt.Sprintf("sortkey(%d)", int(k))
}

// ErrUnknownSortKey is returned by [ParseSort] for unknown key names.
var ErrUnknownSortKey = errors.New("unknown sort key")

// SortBy is one sort criterion.
type SortBy struct {
	Key        SortKey
	Descending bool
}

// Compare orders a and b by this criterion.
func (s SortBy) Compare(a, b list.Item) (int, error) {
	var c int

	switch s.Key {
	case ByNameKey:
		c = strings.Compare(a.Name(), b.Name())
	case ByStatusKey:
		c = cmp.Compare(a.Status(), b.Status())
	default:
		return 0, fmt.Errorf("sort by %s: %w", s.Key, ErrUnsupported)
	}

	if s.Descending {
		c = -c
	}

	return c, nil
}

func (s SortBy) supported() bool {
	return s.Key == ByNameKey || s.Key == ByStatusKey
}

// Sort orders items by each criterion in turn; later criteria break
// ties left by earlier ones.
type Sort []SortBy

// Compare orders a and b lexicographically over the criteria.
func (s Sort) Compare(a, b list.Item) (int, error) {
	for _, by := range s {
		c, err := by.Compare(a, b)
		if err != nil || c != 0 {
			return c, err
		}
	}

	return 0, nil
}

// ParseSort reads a comma separated key list such as "status,-name".
// A leading '-' sorts that key in descending order.
func ParseSort(text string) (Sort, error) {
	var s Sort

	for field := range strings.SplitSeq(text, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		name, desc := strings.CutPrefix(field, "-")

		key, ok := sortKeyNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSortKey, name)
		}

		s = append(s, SortBy{Key: key, Descending: desc})
	}

	return s, nil
}

// Getter looks items up by ID. [*list.List] satisfies it.
type Getter interface {
	Item(id list.ID) (list.Item, bool)
}

// SortIDs stably reorders ids by s. IDs that g cannot find are an
// error.
func SortIDs(ids []list.ID, g Getter, s Sort) error {
	for _, by := range s {
		if !by.supported() {
			return fmt.Errorf("sort by %s: %w", by.Key, ErrUnsupported)
		}
	}

	if len(s) == 0 {
		return nil
	}

	items := make(map[list.ID]list.Item, len(ids))

	for _, id := range ids {
		item, ok := g.Item(id)
		if !ok {
			return fmt.Errorf("%w: %s", list.ErrItemNotFound, id)
		}

		items[id] = item
	}

	var sortErr error

	slices.SortStableFunc(ids, func(a, b list.ID) int {
		if sortErr != nil {
			return 0
		}

		c, err := s.Compare(items[a], items[b])
		if err != nil {
			sortErr = err
		}

		return c
	})

	return sortErr
}

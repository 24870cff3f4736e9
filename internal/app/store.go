package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/grenewode/todo-queue/internal/list"
	"github.com/grenewode/todo-queue/internal/query"
)

// Row is a snapshot of one selected item.
type Row struct {
	ID          list.ID
	Name        string
	Description string
	Status      list.Status
	Tags        []string
}

func rowOf(id list.ID, e *list.Entry) Row {
	return Row{
		ID:          id,
		Name:        e.Name(),
		Description: e.Description(),
		Status:      e.Status(),
		Tags:        e.Tags(),
	}
}

// FindOptions controls how Find evaluates and trims a selection.
type FindOptions struct {
	Sort   query.Sort
	Limit  int  // 0 means no limit
	Narrow bool // each stage filters the previous stage's matches
	Unique bool // drop repeated IDs, keeping the first
}

// Store runs commands against one list file. Reads see a consistent
// snapshot; writes hold the list lock for the whole read-modify-write.
type Store struct {
	path string
}

// NewStore returns a Store for the list file at path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the list file path.
func (s *Store) Path() string {
	return s.path
}

// Add parses text as an item description and appends it.
func (s *Store) Add(text string) (list.ID, error) {
	desc, err := list.ParseDesc(text)
	if err != nil {
		return list.ID{}, err
	}

	var id list.ID

	err = list.Update(s.path, func(l *list.List) error {
		id = l.Add(desc)
		return nil
	})
	if err != nil {
		return list.ID{}, err
	}

	return id, nil
}

// Find evaluates q and returns the selected rows in selection order.
func (s *Store) Find(q query.Query, opts FindOptions) ([]Row, error) {
	if opts.Limit < 0 {
		return nil, ErrNegativeLimit
	}

	l, err := list.Load(s.path)
	if err != nil {
		return nil, err
	}

	ids, err := evaluate(l, q, opts.Narrow)
	if err != nil {
		return nil, err
	}

	if opts.Unique {
		ids = unique(ids)
	}

	err = query.SortIDs(ids, l, opts.Sort)
	if err != nil {
		return nil, err
	}

	if opts.Limit > 0 && len(ids) > opts.Limit {
		ids = ids[:opts.Limit]
	}

	rows := make([]Row, 0, len(ids))

	for _, id := range ids {
		e, _ := l.Get(id)
		rows = append(rows, rowOf(id, e))
	}

	return rows, nil
}

// Show returns the item whose ID starts with prefix.
func (s *Store) Show(prefix string) (Row, error) {
	l, err := list.Load(s.path)
	if err != nil {
		return Row{}, err
	}

	id, err := l.Resolve(prefix)
	if err != nil {
		return Row{}, err
	}

	e, _ := l.Get(id)

	return rowOf(id, e), nil
}

// Remove deletes every item q selects and returns how many went.
func (s *Store) Remove(q query.Query, narrow bool) (int, error) {
	return s.mutate(q, narrow, func(l *list.List, id list.ID) {
		l.Remove(id)
	})
}

// SetStatus sets status on every item q selects.
func (s *Store) SetStatus(q query.Query, narrow bool, status list.Status) (int, error) {
	if !status.Valid() {
		return 0, fmt.Errorf("%w: %d", list.ErrInvalidStatus, int(status))
	}

	return s.mutate(q, narrow, func(l *list.List, id list.ID) {
		e, _ := l.Get(id)
		e.SetStatus(status)
	})
}

// SetTag adds or, with set false, removes tag on every item q selects.
func (s *Store) SetTag(q query.Query, narrow bool, tag string, set bool) (int, error) {
	return s.mutate(q, narrow, func(l *list.List, id list.ID) {
		e, _ := l.Get(id)
		e.SetTag(tag, set)
	})
}

// mutate applies fn once per distinct selected item under the list lock.
// Nothing is written when evaluation fails or nothing matches.
func (s *Store) mutate(q query.Query, narrow bool, fn func(l *list.List, id list.ID)) (int, error) {
	var n int

	err := list.Update(s.path, func(l *list.List) error {
		ids, err := evaluate(l, q, narrow)
		if err != nil {
			return err
		}

		ids = unique(ids)
		for _, id := range ids {
			fn(l, id)
		}

		n = len(ids)
		if n == 0 {
			return errNothingSelected
		}

		return nil
	})
	if errors.Is(err, errNothingSelected) {
		return 0, nil
	}

	if err != nil {
		return 0, err
	}

	return n, nil
}

func evaluate(l *list.List, q query.Query, narrow bool) ([]list.ID, error) {
	if narrow {
		return q.Narrow(l)
	}

	return q.Select(l)
}

func unique(ids []list.ID) []list.ID {
	seen := make(map[list.ID]bool, len(ids))
	out := slices.DeleteFunc(slices.Clone(ids), func(id list.ID) bool {
		if seen[id] {
			return true
		}

		seen[id] = true

		return false
	})

	return out
}

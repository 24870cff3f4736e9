// Package list holds task items and the list that owns them.
//
// A [List] keeps (ID, item) pairs in insertion order. The query packages
// only read items through [Item] and select them through [List.Select];
// every mutation goes through the list or a [MutableItem].
package list

import (
	"encoding/json"
	"fmt"
	"slices"
)

// Matcher decides whether an item belongs to a selection.
// query.Filter satisfies it.
type Matcher interface {
	Match(item Item) (bool, error)
}

type record struct {
	id    ID
	entry *Entry
}

// List is an ordered collection of items.
// The zero value is an empty list ready to use.
type List struct {
	records []record
}

// Add appends a new item built from d and returns its fresh ID.
func (l *List) Add(d Desc) ID {
	id := NewID()
	l.records = append(l.records, record{id: id, entry: newEntry(d)})

	return id
}

// Remove deletes the item with the given ID. It reports whether an item
// was removed.
func (l *List) Remove(id ID) bool {
	idx := l.index(id)
	if idx < 0 {
		return false
	}

	l.records = slices.Delete(l.records, idx, idx+1)

	return true
}

// Get returns the item with the given ID.
func (l *List) Get(id ID) (*Entry, bool) {
	idx := l.index(id)
	if idx < 0 {
		return nil, false
	}

	return l.records[idx].entry, true
}

// Item returns the item with the given ID through the read interface.
func (l *List) Item(id ID) (Item, bool) {
	entry, ok := l.Get(id)
	if !ok {
		return nil, false
	}

	return entry, true
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.records)
}

// IDs returns every ID in insertion order.
func (l *List) IDs() []ID {
	ids := make([]ID, len(l.records))
	for i, rec := range l.records {
		ids[i] = rec.id
	}

	return ids
}

// Select returns the IDs of matching items in insertion order.
func (l *List) Select(m Matcher) ([]ID, error) {
	var ids []ID

	for _, rec := range l.records {
		ok, err := m.Match(rec.entry)
		if err != nil {
			return nil, err
		}

		if ok {
			ids = append(ids, rec.id)
		}
	}

	return ids, nil
}

// SelectFrom is like [List.Select] but only considers the given IDs, in
// the order given. Unknown IDs are skipped.
func (l *List) SelectFrom(ids []ID, m Matcher) ([]ID, error) {
	var out []ID

	for _, id := range ids {
		entry, ok := l.Get(id)
		if !ok {
			continue
		}

		match, err := m.Match(entry)
		if err != nil {
			return nil, err
		}

		if match {
			out = append(out, id)
		}
	}

	return out, nil
}

// Resolve finds the single item whose ID starts with prefix. The prefix
// may carry the leading "@" of the display form.
func (l *List) Resolve(prefix string) (ID, error) {
	norm, err := normalizeIDPrefix(prefix)
	if err != nil {
		return ID{}, err
	}

	var (
		found ID
		count int
	)

	for _, rec := range l.records {
		if rec.id.hasPrefix(norm) {
			found = rec.id
			count++
		}
	}

	switch count {
	case 0:
		return ID{}, fmt.Errorf("%w: %s", ErrItemNotFound, prefix)
	case 1:
		return found, nil
	default:
		return ID{}, fmt.Errorf("%w: %s matches %d items", ErrAmbiguousID, prefix, count)
	}
}

func (l *List) index(id ID) int {
	return slices.IndexFunc(l.records, func(rec record) bool { return rec.id == id })
}

// listVersion is written into every list file.
const listVersion = 1

type fileItem struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Status      Status   `json:"status"`
	Tags        []string `json:"tags,omitempty"`
}

type fileList struct {
	Version int        `json:"version"`
	Items   []fileItem `json:"items"`
}

// MarshalJSON encodes the list with its items in order.
func (l *List) MarshalJSON() ([]byte, error) {
	out := fileList{Version: listVersion, Items: make([]fileItem, 0, len(l.records))}

	for _, rec := range l.records {
		out.Items = append(out.Items, fileItem{
			ID:          rec.id,
			Name:        rec.entry.name,
			Description: rec.entry.description,
			Status:      rec.entry.status,
			Tags:        rec.entry.Tags(),
		})
	}

	return json.Marshal(out)
}

// UnmarshalJSON replaces the list contents.
func (l *List) UnmarshalJSON(data []byte) error {
	var in fileList

	err := json.Unmarshal(data, &in)
	if err != nil {
		return err
	}

	if in.Version != listVersion {
		return fmt.Errorf("%w: %d", errUnsupportedVer, in.Version)
	}

	records := make([]record, 0, len(in.Items))
	seen := make(map[ID]bool, len(in.Items))

	for _, item := range in.Items {
		if seen[item.ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateID, item.ID.Full())
		}

		seen[item.ID] = true

		records = append(records, record{
			id: item.ID,
			entry: newEntry(Desc{
				Name:        item.Name,
				Description: item.Description,
				Status:      item.Status,
				Tags:        item.Tags,
			}),
		})
	}

	l.records = records

	return nil
}

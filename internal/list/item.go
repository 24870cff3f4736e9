package list

import (
	"slices"
	"strings"
	"unicode"
)

// Item is read access to one list entry.
type Item interface {
	Name() string
	Description() string
	Status() Status
	HasTag(tag string) bool
}

// MutableItem is an [Item] that can be edited in place.
type MutableItem interface {
	Item
	SetName(name string)
	SetDescription(description string)
	SetStatus(status Status)
	SetTag(tag string, set bool)
}

// Desc describes an item before it is added to a list.
type Desc struct {
	Name        string
	Description string
	Status      Status
	Tags        []string
}

// ParseDesc reads the shorthand used on the command line:
//
//	buy milk #errand #today: the oat kind
//
// Each #tag ends at whitespace or ':' and is removed from the name. The
// first ':' left over separates the name from the description.
func ParseDesc(text string) (Desc, error) {
	var (
		name strings.Builder
		tags []string
	)

	runes := []rune(text)

	for i := 0; i < len(runes); i++ {
		if runes[i] != '#' {
			name.WriteRune(runes[i])
			continue
		}

		j := i + 1
		for j < len(runes) && !unicode.IsSpace(runes[j]) && runes[j] != ':' {
			j++
		}

		if tag := string(runes[i+1 : j]); tag != "" && !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}

		i = j - 1
	}

	full := name.String()
	title, description, _ := strings.Cut(full, ":")
	title = strings.Join(strings.Fields(title), " ")

	if title == "" {
		return Desc{}, ErrEmptyName
	}

	return Desc{
		Name:        title,
		Description: strings.TrimSpace(description),
		Status:      Waiting,
		Tags:        tags,
	}, nil
}

// Entry is the item stored by [List].
type Entry struct {
	name        string
	description string
	status      Status
	tags        []string
}

var _ MutableItem = (*Entry)(nil)

func newEntry(d Desc) *Entry {
	e := &Entry{
		name:        d.Name,
		description: d.Description,
		status:      d.Status,
	}

	for _, tag := range d.Tags {
		e.SetTag(tag, true)
	}

	return e
}

func (e *Entry) Name() string        { return e.name }
func (e *Entry) Description() string { return e.description }
func (e *Entry) Status() Status      { return e.status }

// HasTag reports whether the entry carries tag. Tags are case-sensitive.
func (e *Entry) HasTag(tag string) bool {
	_, found := slices.BinarySearch(e.tags, tag)
	return found
}

// Tags returns the entry's tags in sorted order.
func (e *Entry) Tags() []string {
	return slices.Clone(e.tags)
}

func (e *Entry) SetName(name string)               { e.name = name }
func (e *Entry) SetDescription(description string) { e.description = description }
func (e *Entry) SetStatus(status Status)           { e.status = status }

// SetTag adds tag when set is true and removes it otherwise.
func (e *Entry) SetTag(tag string, set bool) {
	idx, found := slices.BinarySearch(e.tags, tag)

	switch {
	case set && !found:
		e.tags = slices.Insert(e.tags, idx, tag)
	case !set && found:
		e.tags = slices.Delete(e.tags, idx, idx+1)
	}
}

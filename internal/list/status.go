package list

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Status is the lifecycle stage of an item.
//
// Statuses are ordered by declaration. Range queries such as
// "between Waiting and Completed" depend on this order.
type Status int

// Statuses, in order.
const (
	Waiting Status = iota
	Queuing
	Working
	Completed
)

// Statuses lists every status in order.
var Statuses = []Status{Waiting, Queuing, Working, Completed}

var statusNames = [...]string{
	Waiting:   "waiting",
	Queuing:   "queuing",
	Working:   "working",
	Completed: "completed",
}

func (s Status) String() string {
	if s < Waiting || s > Completed {
		return fmt.Sprintf("status(%d)", int(s))
	}

	return statusNames[s]
}

// Valid reports whether s is one of the declared statuses.
func (s Status) Valid() bool {
	return s >= Waiting && s <= Completed
}

// StatusFromName returns the status with the given canonical name,
// ignoring case.
func StatusFromName(name string) (Status, error) {
	for _, s := range Statuses {
		if strings.EqualFold(name, statusNames[s]) {
			return s, nil
		}
	}

	return Waiting, fmt.Errorf("%w: %q", ErrInvalidStatus, name)
}

// MarshalJSON encodes the status by name.
func (s Status) MarshalJSON() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidStatus, int(s))
	}

	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a status name.
func (s *Status) UnmarshalJSON(data []byte) error {
	var name string

	err := json.Unmarshal(data, &name)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidStatus, err)
	}

	parsed, err := StatusFromName(name)
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}

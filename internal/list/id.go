package list

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// shortIDLen is the number of hex digits shown for an ID.
const shortIDLen = 8

// ID identifies an item within a list. IDs are minted by [List.Add] and
// never reused. They carry no ordering, only equality.
type ID uuid.UUID

// NewID returns a fresh random ID.
func NewID() ID {
	return ID(uuid.New())
}

// String returns the short display form, "@" followed by the first
// eight hex digits.
func (id ID) String() string {
	return "@" + id.hex()[:shortIDLen]
}

// Full returns the complete UUID text.
func (id ID) Full() string {
	return uuid.UUID(id).String()
}

func (id ID) hex() string {
	return hex.EncodeToString(id[:])
}

// hasPrefix reports whether the hex digits of id start with prefix,
// which must already be normalized.
func (id ID) hasPrefix(prefix string) bool {
	return strings.HasPrefix(id.hex(), prefix)
}

// MarshalText encodes the full UUID.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.Full()), nil
}

// UnmarshalText decodes a full UUID.
func (id *ID) UnmarshalText(data []byte) error {
	parsed, err := uuid.ParseBytes(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidID, err)
	}

	*id = ID(parsed)

	return nil
}

// normalizeIDPrefix turns user input ("@1a2b", "1A2B-...") into lowercase
// hex digits.
func normalizeIDPrefix(s string) (string, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "@")
	s = strings.ToLower(strings.ReplaceAll(s, "-", ""))

	if s == "" {
		return "", fmt.Errorf("%w: (empty)", ErrInvalidID)
	}

	for _, r := range s {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", fmt.Errorf("%w: %q", ErrInvalidID, s)
		}
	}

	return s, nil
}

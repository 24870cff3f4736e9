package list

import "errors"

// Error variables for list operations.
var (
	ErrInvalidStatus  = errors.New("invalid status")
	ErrEmptyName      = errors.New("item name cannot be empty")
	ErrItemNotFound   = errors.New("item not found")
	ErrAmbiguousID    = errors.New("ambiguous item ID")
	ErrInvalidID      = errors.New("invalid item ID")
	ErrListInvalid    = errors.New("invalid list file")
	ErrListFileRead   = errors.New("cannot read list file")
	ErrDuplicateID    = errors.New("duplicate item ID")
	errLockTimeout    = errors.New("lock timeout")
	errLockFileOpen   = errors.New("failed to open lock file")
	errListFileWrite  = errors.New("cannot write list file")
	errUnsupportedVer = errors.New("unsupported list version")
)

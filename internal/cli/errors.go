package cli

import "errors"

// Usage errors.
var (
	ErrNoCommand      = errors.New("no command provided")
	ErrUnknownCommand = errors.New("unknown command")
	ErrListFlagEmpty  = errors.New("--list cannot be empty")
	ErrTooManyArgs    = errors.New("too many arguments")
	ErrShellNested    = errors.New("already in a shell")
)

// Argument errors.
var (
	ErrQueryRequired  = errors.New("query is required")
	ErrTextRequired   = errors.New("item text is required")
	ErrIDRequired     = errors.New("item ID is required")
	ErrStatusRequired = errors.New("status is required")
	ErrTagRequired    = errors.New("tag is required")
	ErrInvalidTagName = errors.New("invalid tag name")
)

package app

import "errors"

// Config errors.
var (
	ErrConfigInvalid      = errors.New("invalid config")
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrConfigFileRead     = errors.New("cannot read config file")
	ErrListFileEmpty      = errors.New("list_file cannot be empty")
	ErrDefaultQuery       = errors.New("invalid default_query")
)

// Store errors.
var (
	ErrNegativeLimit = errors.New("limit must be non-negative")

	errNothingSelected = errors.New("nothing selected")
)

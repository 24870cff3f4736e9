package list

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

const (
	dirPerms  = 0o750
	filePerms = 0o600
)

// Load reads a list file. A missing file is an empty list.
func Load(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &List{}, nil
		}

		return nil, fmt.Errorf("%w: %s: %w", ErrListFileRead, path, err)
	}

	var l List

	unmarshalErr := json.Unmarshal(data, &l)
	if unmarshalErr != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrListInvalid, path, unmarshalErr)
	}

	return &l, nil
}

// Save writes l to path atomically, creating parent directories.
func Save(path string, l *List) error {
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding list: %w", err)
	}

	data = append(data, '\n')

	mkdirErr := os.MkdirAll(filepath.Dir(path), dirPerms)
	if mkdirErr != nil {
		return fmt.Errorf("%w: %w", errListFileWrite, mkdirErr)
	}

	writeErr := atomic.WriteFile(path, bytes.NewReader(data))
	if writeErr != nil {
		return fmt.Errorf("%w: %w", errListFileWrite, writeErr)
	}

	// atomic.WriteFile keeps the temp file's mode for new files.
	chmodErr := os.Chmod(path, filePerms)
	if chmodErr != nil {
		return fmt.Errorf("%w: %w", errListFileWrite, chmodErr)
	}

	return nil
}

// Update loads the list at path under an exclusive lock, hands it to
// handler and saves it if handler returns nil. Handler errors leave the
// file untouched.
func Update(path string, handler func(l *List) error) error {
	return WithLock(path, func() error {
		l, err := Load(path)
		if err != nil {
			return err
		}

		handleErr := handler(l)
		if handleErr != nil {
			return handleErr
		}

		return Save(path, l)
	})
}

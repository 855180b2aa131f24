package domain

import (
	"errors"
	"fmt"
)

// ErrNoKeyword is returned when the user asked for a keyword filter without
// supplying any usable keyword. It is a validation failure, not a computation
// failure; nothing is filtered.
var ErrNoKeyword = errors.New("no usable search keyword given")

// ErrNoStatement is returned when an analysis operation runs before any
// statement has been loaded.
var ErrNoStatement = errors.New("no statement loaded")

// MissingColumnError reports that a required statement column was absent
// after load. No partial table is produced.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("required column %q not found in statement", e.Column)
}

// LoadError reports that the statement file could not be read or is not a
// valid spreadsheet. The previous table, if any, stays usable.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// ExportError reports that an export file could not be written. Computed
// results remain valid.
type ExportError struct {
	Path string
	Err  error
}

func (e *ExportError) Error() string {
	return fmt.Sprintf("export %s: %v", e.Path, e.Err)
}

func (e *ExportError) Unwrap() error { return e.Err }

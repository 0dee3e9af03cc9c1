package loader

import (
	"fmt"
	"strings"
)

// MissingColumnError reports a schema mismatch: a required column is absent
// from an input file. It is fatal for the run.
type MissingColumnError struct {
	// File is the input file with the mismatched schema.
	File string

	// Column is the required column that was not found.
	Column string

	// Available lists the headers that were found, to make typos obvious.
	Available []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q in %s (available columns: %s)",
		e.Column, e.File, strings.Join(e.Available, ", "))
}

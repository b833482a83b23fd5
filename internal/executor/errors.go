package executor

import (
	"errors"
	"fmt"
)

var (
	// ErrNoOutput is returned when no level of an option chain sets the
	// output directory.
	ErrNoOutput = errors.New("no output directory configured")

	// ErrOutputNotDirectory is returned when the output path exists but is
	// not a directory.
	ErrOutputNotDirectory = errors.New("output path is not a directory")

	// ErrOutputNotWritable is returned when the output directory exists but
	// cannot be written to.
	ErrOutputNotWritable = errors.New("output directory is not writable")
)

// ExecutionError reports the input file whose processing aborted the run.
type ExecutionError struct {
	File string
	Err  error
}

func (e *ExecutionError) Error() string {
	return fmt.Sprintf("failed to process %s: %v", e.File, e.Err)
}

func (e *ExecutionError) Unwrap() error { return e.Err }

package transcript

import (
	"errors"
	"fmt"
)

var (
	// ErrNoParent indicates a `cd ..` issued while the cursor is at the root.
	ErrNoParent = errors.New("cannot change to parent of root directory")

	// ErrUnknownDirectory indicates a `cd <name>` into a directory that was never listed.
	ErrUnknownDirectory = errors.New("unknown directory")

	// ErrMalformedSize indicates a file entry whose size is not a non-negative integer.
	ErrMalformedSize = errors.New("malformed file size")

	// ErrUnknownCommand indicates a `$` line with a command other than cd or ls.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMalformedLine indicates a line with the wrong number of tokens.
	ErrMalformedLine = errors.New("malformed line")
)

// LineError wraps a parse failure with the line it occurred on.
type LineError struct {
	Line int    // 1-based line number, 0 if unknown
	Text string // Offending line, trimmed
	Err  error  // Underlying error
}

// Error implements the error interface.
func (e *LineError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%q: %v", e.Text, e.Err)
	}

	return fmt.Sprintf("line %d %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap implements error unwrapping for errors.Is and errors.As.
func (e *LineError) Unwrap() error {
	return e.Err
}

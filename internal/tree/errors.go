package tree

import "errors"

// ErrDuplicateName is returned when a directory already holds a subdirectory with the same name.
var ErrDuplicateName = errors.New("duplicate subdirectory name")

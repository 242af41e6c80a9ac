package components

import "errors"

var (
	// ErrDuplicateComponent is returned when two files generate the same name.
	ErrDuplicateComponent = errors.New("duplicate component name")

	// ErrNotADirectory is returned when the component path exists but is a file.
	ErrNotADirectory = errors.New("component path is not a directory")
)

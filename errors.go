package md2wiki

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")
	ErrUnknownFlavor = errors.New("unknown markup flavor")
)

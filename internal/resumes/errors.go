package resumes

import "errors"

var (
	// ErrNotFound indicates the resume is absent from both cache and store.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidInput indicates missing or malformed caller input.
	ErrInvalidInput = errors.New("invalid input")
)

package analyses

import "errors"

var (
	// ErrInvalidInput indicates missing or malformed caller input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadResponse indicates the model returned output that could not be
	// repaired into the expected JSON shape.
	ErrBadResponse = errors.New("model response unusable")
)

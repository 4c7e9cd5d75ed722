package profiles

import "errors"

var (
	// ErrInvalidInput indicates missing or empty resume text.
	ErrInvalidInput = errors.New("invalid input")

	// ErrBadResponse indicates the model output could not be turned into
	// a profile.
	ErrBadResponse = errors.New("model response unusable")
)

package generate

import "errors"

var (
	// ErrNegativeIslands indicates a negative island count.
	ErrNegativeIslands = errors.New("generate: island count must not be negative")
	// ErrInvalidStability indicates a stability weight outside [0, 1].
	ErrInvalidStability = errors.New("generate: stability must be within [0, 1]")
)

package terrain

import "errors"

// ErrInvalidSize indicates a grid side length below 1.
var ErrInvalidSize = errors.New("terrain: grid size must be at least 1")

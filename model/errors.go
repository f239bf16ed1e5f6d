package model

import "errors"

// ErrInvalidInput is returned for values outside the closed enumerations
// (unknown note spelling, quality, shape or string set).
var ErrInvalidInput = errors.New("invalid input")

// ErrUnsolvableVoicing means no voicing fits within the requested span.
var ErrUnsolvableVoicing = errors.New("unsolvable voicing")

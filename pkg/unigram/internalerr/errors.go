package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrNotFitted     = errors.New("estimator not fitted")
	ErrEmptyInput    = errors.New("empty input")
)

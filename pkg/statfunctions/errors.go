package statfunctions

import "errors"

var (
	// ErrInvalidArgument is returned for empty samples, paired samples of
	// different lengths and samples too small for an n-1 estimator.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDomain is returned when a result has no real value.
	ErrDomain = errors.New("domain error")
)

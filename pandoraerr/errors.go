// Package pandoraerr defines the sentinel error values a pandora model
// evaluation can fail with. Every failure is a precondition violation —
// there is no retry path; callers fix the input and call again.
package pandoraerr

import "errors"

var (
	// ErrSupersamplingFactor is returned when SupersamplingFactor < 1.
	ErrSupersamplingFactor = errors.New("pandora: supersampling factor must be >= 1")

	// ErrGridDivisor is returned by resample.Average when the input length
	// is not evenly divisible by the supersampling factor.
	ErrGridDivisor = errors.New("pandora: sample count not divisible by supersampling factor")

	// ErrEccentricity is returned when an eccentricity is outside [0, 1).
	ErrEccentricity = errors.New("pandora: eccentricity must be in [0, 1)")

	// ErrPeriod is returned when an orbital period is not strictly positive.
	ErrPeriod = errors.New("pandora: orbital period must be positive")

	// ErrEmptyTimeGrid is returned when a time array has zero length.
	ErrEmptyTimeGrid = errors.New("pandora: time array must be non-empty")
)

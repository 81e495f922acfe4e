package vector

import "errors"

var (
	// ErrAllocation is returned when storage for the requested number of
	// slots cannot be obtained.
	ErrAllocation = errors.New("vector: allocation failed")

	// ErrCapacityOverflow is returned, wrapped together with ErrAllocation,
	// when a growth step would exceed the largest representable capacity.
	ErrCapacityOverflow = errors.New("vector: capacity overflow")
)

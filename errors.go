package probetable

import "github.com/pkg/errors"

var (
	// ErrInvalidCapacity is returned when a table is created with a
	// non-positive capacity.
	ErrInvalidCapacity = errors.New("capacity must be positive")

	// ErrNegativeKey is returned when a negative key is inserted.
	ErrNegativeKey = errors.New("key must be non-negative")
)

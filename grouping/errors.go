package grouping

import "errors"

// Sentinel errors returned by IndexBy and GroupBy.
//
// Both abort the whole call before the result container is built: no
// partially filled Dict is ever returned alongside a non-nil error.
var (
	// ErrInvalidInput is returned when items is not a slice or an array.
	ErrInvalidInput = errors.New("grouping: items must be a slice or array")

	// ErrInvalidDescriptor is returned when a key or value argument is
	// neither a field path, a compute function, nor a Descriptor.
	ErrInvalidDescriptor = errors.New("grouping: invalid descriptor")

	// ErrInvalidOptions is returned when an options argument has an
	// unsupported shape, carries an unknown key, or a wrongly typed value.
	ErrInvalidOptions = errors.New("grouping: invalid options")
)

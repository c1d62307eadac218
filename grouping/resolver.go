package grouping

import "fmt"

// ─────────────────────────────────────────────────────────────────────────────
// Argument resolution
//
// IndexBy and GroupBy accept the four documented call shapes
//
//	(items, key)
//	(items, key, options)
//	(items, key, value)
//	(items, key, value, options)
//
// via a trailing ...any of length 0–2. This file canonicalises those calls
// into a (keyDescriptor, valueDescriptor, Options) triple. Disambiguation of
// the third argument is purely by shape: descriptors are strings, functions,
// or Descriptor values; options are Options, *Options, or map[string]any —
// the two sets cannot overlap. A nil trailing argument stands for "argument
// not supplied".
// ─────────────────────────────────────────────────────────────────────────────

// resolveDescriptor canonicalises a key or value argument into a Descriptor.
func resolveDescriptor(v any) (Descriptor, error) {
	switch d := v.(type) {
	case Descriptor:
		return d, nil
	case string:
		return Field(d), nil
	case ComputeFunc:
		return Compute(d), nil
	case func(any, int) any:
		return Compute(d), nil
	case func(any) any:
		return Compute(func(item any, _ int) any { return d(item) }), nil
	default:
		return Descriptor{}, fmt.Errorf("%w: got %T, want field path or compute function", ErrInvalidDescriptor, v)
	}
}

// resolveKey canonicalises the key argument; identity is not a valid key
// derivation.
func resolveKey(v any) (Descriptor, error) {
	if v == nil {
		return Descriptor{}, fmt.Errorf("%w: key descriptor is required", ErrInvalidDescriptor)
	}
	d, err := resolveDescriptor(v)
	if err != nil {
		return Descriptor{}, err
	}
	if d.IsIdentity() {
		return Descriptor{}, fmt.Errorf("%w: key descriptor cannot be the identity descriptor", ErrInvalidDescriptor)
	}
	return d, nil
}

// isDescriptorShaped reports whether v can only be a descriptor argument.
func isDescriptorShaped(v any) bool {
	switch v.(type) {
	case Descriptor, string, ComputeFunc, func(any, int) any, func(any) any:
		return true
	default:
		return false
	}
}

// resolveArgs canonicalises the trailing arguments into the value
// descriptor (identity when none is supplied) and the Options (defaults
// when none are supplied).
func resolveArgs(rest []any) (Descriptor, Options, error) {
	switch len(rest) {
	case 0:
		return Descriptor{}, Options{}, nil
	case 1:
		if rest[0] == nil {
			return Descriptor{}, Options{}, nil
		}
		if isDescriptorShaped(rest[0]) {
			d, err := resolveDescriptor(rest[0])
			return d, Options{}, err
		}
		opts, err := resolveOptions(rest[0])
		return Descriptor{}, opts, err
	case 2:
		value := Descriptor{}
		if rest[0] != nil {
			var err error
			if value, err = resolveDescriptor(rest[0]); err != nil {
				return Descriptor{}, Options{}, err
			}
		}
		if rest[1] == nil {
			return value, Options{}, nil
		}
		opts, err := resolveOptions(rest[1])
		return value, opts, err
	default:
		return Descriptor{}, Options{}, fmt.Errorf("%w: at most a value descriptor and an options argument may follow the key", ErrInvalidOptions)
	}
}

package grouping

import "fmt"

// Options configures a single IndexBy or GroupBy call.
// The zero value is the default policy: everything is admitted.
type Options struct {
	// ExcludeNullish drops absent items before any extraction happens, and
	// drops surviving items whose computed key is absent. Computed values
	// are never filtered: an admitted item whose value resolves to nil is
	// stored with that nil value.
	ExcludeNullish bool
}

// optExcludeNullish is the only configuration key recognised in map-shaped
// options.
const optExcludeNullish = "excludeNullish"

// resolveOptions canonicalises an options argument. Accepted shapes are
// Options, *Options, and map[string]any; a map may carry only the
// "excludeNullish" key with a bool value. Unknown keys are rejected rather
// than ignored.
func resolveOptions(v any) (Options, error) {
	switch o := v.(type) {
	case Options:
		return o, nil
	case *Options:
		if o == nil {
			return Options{}, nil
		}
		return *o, nil
	case map[string]any:
		var opts Options
		for k, val := range o {
			if k != optExcludeNullish {
				return Options{}, fmt.Errorf("%w: unknown key %q", ErrInvalidOptions, k)
			}
			b, ok := val.(bool)
			if !ok {
				return Options{}, fmt.Errorf("%w: %s must be a bool, got %T", ErrInvalidOptions, optExcludeNullish, val)
			}
			opts.ExcludeNullish = b
		}
		return opts, nil
	default:
		return Options{}, fmt.Errorf("%w: got %T", ErrInvalidOptions, v)
	}
}

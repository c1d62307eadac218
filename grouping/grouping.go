package grouping

import (
	"fmt"
	"reflect"

	"github.com/hasbyte1/go-grouping-utils/dict"
)

// IndexBy folds items into an insertion-ordered Dict with one value per
// key: when several items produce the same key, the value of the last one
// processed wins, and the key keeps the position of its first occurrence.
//
// key is a field path, a compute function, or a [Descriptor]. The optional
// trailing arguments are a value descriptor (default: the item itself)
// and/or an [Options] value, in that order:
//
//	grouping.IndexBy(users, "id")
//	grouping.IndexBy(users, "id", grouping.Options{ExcludeNullish: true})
//	grouping.IndexBy(users, "id", "name")
//	grouping.IndexBy(users, "id", "name", grouping.Options{ExcludeNullish: true})
//
// items must be a slice or an array; anything else is [ErrInvalidInput].
// See [Options] for how absent items and keys are treated.
//
// Like a map literal, IndexBy panics if a computed key is a non-nil value
// of an uncomparable type (a slice, map, or function).
func IndexBy(items any, key any, rest ...any) (*dict.Dict[any, any], error) {
	seq, keyDesc, valueDesc, opts, err := resolveCall(items, key, rest)
	if err != nil {
		return nil, err
	}
	out := dict.WithCapacity[any, any](len(seq))
	fold(seq, keyDesc, valueDesc, opts, func(k, v any) {
		out.Set(k, v)
	})
	return out, nil
}

// GroupBy folds items into an insertion-ordered Dict from each key to the
// values of all items that produced it, in original sequence order — never
// reordered, never deduplicated. Keys appear in first-occurrence order.
//
// The call surface is identical to [IndexBy]:
//
//	grouping.GroupBy(users, "group")
//	grouping.GroupBy(users, "group", "name")
//	grouping.GroupBy(users, keyFn, grouping.Options{ExcludeNullish: true})
func GroupBy(items any, key any, rest ...any) (*dict.Dict[any, []any], error) {
	seq, keyDesc, valueDesc, opts, err := resolveCall(items, key, rest)
	if err != nil {
		return nil, err
	}
	out := dict.New[any, []any]()
	fold(seq, keyDesc, valueDesc, opts, func(k, v any) {
		list, _ := out.Get(k)
		out.Set(k, append(list, v))
	})
	return out, nil
}

// resolveCall validates and canonicalises a full call up front, before any
// per-item work: the input sequence, the key descriptor, and the trailing
// value descriptor / options arguments.
func resolveCall(items, key any, rest []any) ([]any, Descriptor, Descriptor, Options, error) {
	seq, err := sequenceOf(items)
	if err != nil {
		return nil, Descriptor{}, Descriptor{}, Options{}, err
	}
	keyDesc, err := resolveKey(key)
	if err != nil {
		return nil, Descriptor{}, Descriptor{}, Options{}, err
	}
	valueDesc, opts, err := resolveArgs(rest)
	if err != nil {
		return nil, Descriptor{}, Descriptor{}, Options{}, err
	}
	return seq, keyDesc, valueDesc, opts, nil
}

// fold runs the single left-to-right pass shared by both operations,
// applying the nullish gates in order: item gate, key extraction, key gate,
// value extraction. Admitted (key, value) pairs are handed to write.
//
// An absent key that survives the key gate is normalised to a plain nil so
// that every flavour of absence occupies the same slot in the result.
func fold(seq []any, keyDesc, valueDesc Descriptor, opts Options, write func(k, v any)) {
	for i, item := range seq {
		if opts.ExcludeNullish && IsAbsent(item) {
			continue
		}
		k := keyDesc.extract(item, i)
		if IsAbsent(k) {
			if opts.ExcludeNullish {
				continue
			}
			k = nil
		}
		write(k, valueDesc.extract(item, i))
	}
}

// sequenceOf materialises items as a []any, validating its shape.
func sequenceOf(items any) ([]any, error) {
	switch s := items.(type) {
	case []any:
		return s, nil
	case []Record:
		out := make([]any, len(s))
		for i, r := range s {
			out[i] = r
		}
		return out, nil
	}

	rv := reflect.ValueOf(items)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("%w: got %T", ErrInvalidInput, items)
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, nil
}

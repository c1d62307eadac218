package dict

import (
	"fmt"
	"strings"

	"github.com/goccy/go-json"
)

// Dict is a generic associative container that remembers the order in which
// keys were first inserted.
//
// Unlike the built-in map, iterating a Dict (via [Dict.Keys], [Dict.Values],
// [Dict.Entries], or [Dict.Each]) always yields entries in insertion order.
// Writing to an existing key updates its value in place without moving the
// key: a key's position is fixed at first insertion.
//
//	d := dict.New[string, int]()
//	d.Set("b", 1)
//	d.Set("a", 2)
//	d.Set("b", 3)       // overwrites, "b" stays first
//	d.Keys()            // → ["b", "a"]
//
// A Dict is backed by a key slice plus a lookup index, so Set/Get/Has are
// O(1) amortized. Delete is O(n) because the remaining keys keep their
// relative order.
//
// Like the built-in map, key comparability is enforced at runtime when K is
// an interface type: Set panics if the concrete key is not comparable.
type Dict[K comparable, V any] struct {
	keys  []K
	vals  []V
	index map[K]int
}

// Entry is a single key/value pair of a Dict, as returned by [Dict.Entries].
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

// String returns a human-readable representation: "key: value".
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("%v: %v", e.Key, e.Value)
}

// ─────────────────────────────────────────────────────────────────────────────
// Constructors
// ─────────────────────────────────────────────────────────────────────────────

// New creates an empty Dict with a small pre-allocated capacity.
func New[K comparable, V any]() *Dict[K, V] {
	return WithCapacity[K, V](0)
}

// WithCapacity creates an empty Dict sized for n entries.
func WithCapacity[K comparable, V any](n int) *Dict[K, V] {
	if n < 0 {
		n = 0
	}
	return &Dict[K, V]{
		keys:  make([]K, 0, n),
		vals:  make([]V, 0, n),
		index: make(map[K]int, n),
	}
}

// FromEntries creates a Dict from entries, applied in order.
// A duplicated key keeps its first position and takes the last value.
func FromEntries[K comparable, V any](entries ...Entry[K, V]) *Dict[K, V] {
	d := WithCapacity[K, V](len(entries))
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Set stores value under key. If the key already exists its value is
// replaced in place and its position in iteration order is unchanged;
// otherwise the key is appended after all existing keys.
func (d *Dict[K, V]) Set(key K, value V) {
	if i, ok := d.index[key]; ok {
		d.vals[i] = value
		return
	}
	d.index[key] = len(d.keys)
	d.keys = append(d.keys, key)
	d.vals = append(d.vals, value)
}

// Delete removes key and its value, preserving the relative order of the
// remaining keys. Reports whether the key was present.
func (d *Dict[K, V]) Delete(key K) bool {
	i, ok := d.index[key]
	if !ok {
		return false
	}
	d.keys = append(d.keys[:i], d.keys[i+1:]...)
	d.vals = append(d.vals[:i], d.vals[i+1:]...)
	delete(d.index, key)
	for j := i; j < len(d.keys); j++ {
		d.index[d.keys[j]] = j
	}
	return true
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the value stored under key together with a presence flag.
// Returns the zero value and false when the key is not present.
func (d *Dict[K, V]) Get(key K) (V, bool) {
	var zero V
	i, ok := d.index[key]
	if !ok {
		return zero, false
	}
	return d.vals[i], true
}

// Has reports whether key is present.
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.index[key]
	return ok
}

// Len returns the number of entries.
func (d *Dict[K, V]) Len() int { return len(d.keys) }

// IsEmpty reports whether the Dict contains no entries.
func (d *Dict[K, V]) IsEmpty() bool { return len(d.keys) == 0 }

// Keys returns a copy of the keys in insertion order.
func (d *Dict[K, V]) Keys() []K {
	out := make([]K, len(d.keys))
	copy(out, d.keys)
	return out
}

// Values returns a copy of the values in key insertion order.
func (d *Dict[K, V]) Values() []V {
	out := make([]V, len(d.vals))
	copy(out, d.vals)
	return out
}

// Entries returns the key/value pairs in insertion order.
func (d *Dict[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], len(d.keys))
	for i, k := range d.keys {
		out[i] = Entry[K, V]{Key: k, Value: d.vals[i]}
	}
	return out
}

// Each calls fn(key, value) for every entry in insertion order.
func (d *Dict[K, V]) Each(fn func(K, V)) {
	for i, k := range d.keys {
		fn(k, d.vals[i])
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialisation
// ─────────────────────────────────────────────────────────────────────────────

// ToJSON serialises the Dict to a JSON object whose members appear in key
// insertion order. Non-string keys are rendered with fmt.Sprint; a nil key
// becomes the member name "null".
func (d *Dict[K, V]) ToJSON() ([]byte, error) {
	var buf strings.Builder
	buf.WriteByte('{')
	for i, k := range d.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		name, err := json.Marshal(keyName(k))
		if err != nil {
			return nil, err
		}
		buf.Write(name)
		buf.WriteByte(':')
		val, err := json.Marshal(d.vals[i])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return []byte(buf.String()), nil
}

// MarshalJSON implements [json.Marshaler] via [Dict.ToJSON].
func (d *Dict[K, V]) MarshalJSON() ([]byte, error) { return d.ToJSON() }

// String returns a JSON representation of the Dict.
// It implements [fmt.Stringer].
func (d *Dict[K, V]) String() string {
	b, err := d.ToJSON()
	if err != nil {
		return fmt.Sprintf("%v", d.Entries())
	}
	return string(b)
}

func keyName(k any) string {
	switch key := k.(type) {
	case nil:
		return "null"
	case string:
		return key
	case fmt.Stringer:
		return key.String()
	default:
		return fmt.Sprint(key)
	}
}

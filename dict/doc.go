// Package dict provides a generic, insertion-ordered associative container
// and typed constructors that build one from a slice.
//
// # Overview
//
// The central type is [Dict][K, V], a map-like container that iterates in
// the order keys were first inserted. Overwriting an existing key never
// moves it:
//
//	d := dict.New[string, int]()
//	d.Set("b", 1)
//	d.Set("a", 2)
//	d.Set("b", 3)
//	fmt.Println(d) // → {"b":3,"a":2}
//
// This matters whenever a result is keyed by data but presented to humans or
// serialised: Go's built-in map has randomised iteration order, which makes
// grouped or indexed results unstable between runs.
//
// # Building from slices
//
// The package-level constructors fold a slice left to right:
//
//	byID    := dict.Index(users, func(u User, _ int) int { return u.ID })
//	byGroup := dict.Group(users, func(u User, _ int) string { return u.Group })
//
// [Index] and [IndexValues] keep one value per key (last write wins);
// [Group] and [GroupValues] collect a slice of values per key in original
// slice order.
//
// For dynamic records (map[string]any), field-path descriptors, and nullish
// filtering, see the grouping package, which produces Dict results from
// loosely shaped inputs.
//
// # Serialisation
//
// [Dict.ToJSON] encodes the container as a JSON object whose members appear
// in insertion order; the encoding is hand-assembled per entry because a
// stock map marshal would lose the ordering.
package dict

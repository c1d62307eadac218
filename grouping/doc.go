// Package grouping turns an ordered sequence of loosely shaped items into
// an insertion-ordered associative container, indexing ("one value per key,
// last write wins") or grouping ("ordered list of values per key") by a key
// derived from each item.
//
// # Operations
//
// The two entry points share one engine and one call surface:
//
//	byID, err := grouping.IndexBy(users, "id")
//	byGroup, err := grouping.GroupBy(users, "group")
//
// Both return a [github.com/hasbyte1/go-grouping-utils/dict.Dict], so keys
// iterate in first-occurrence order and overwriting never moves a key.
//
// # Descriptors
//
// Keys — and, optionally, stored values — are derived by a descriptor:
// a field path (dot notation, resolved against map[string]any records,
// structs, and struct pointers) or a compute function receiving the item
// and its position:
//
//	grouping.IndexBy(users, "address.city")
//	grouping.GroupBy(users, func(item any, _ int) any {
//	    return len(item.(grouping.Record)["name"].(string))
//	})
//
// A value descriptor may follow the key; without one the item itself is
// stored:
//
//	namesByID, err := grouping.IndexBy(users, "id", "name")
//
// # Absent data
//
// Items, keys, and values may all be absent (nil, or a typed nil). By
// default everything is admitted: an absent item flows through, and an
// absent computed key becomes a literal nil key in the result. With
//
//	grouping.Options{ExcludeNullish: true}
//
// absent items are skipped before any extraction, and surviving items whose
// computed key is absent are skipped too. Computed values are never
// filtered under either policy: an admitted item whose value resolves to
// nil is stored with that nil value.
//
// # Errors
//
// Calls fail up front — before any item is processed — with
// [ErrInvalidInput] when items is not a slice or array, with
// [ErrInvalidDescriptor] when a key or value argument has no descriptor
// shape, and with [ErrInvalidOptions] when an options argument carries an
// unknown key or a wrongly typed value. Unknown option keys are rejected,
// not ignored. Absent data is never an error.
//
// # Typed call sites
//
// When the element, key, and value types are known at compile time, prefer
// the typed constructors in the dict package ([dict.Index], [dict.Group],
// and friends); this package exists for dynamic records and call sites that
// need the nullish policy.
package grouping

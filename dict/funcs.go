package dict

// This file contains package-level generic constructors that build a Dict
// from a plain slice. They are the statically typed counterparts of the
// dynamic engine in the grouping package: the key and value types are fixed
// at the call site, and extraction is always a function of (item, index).
//
// All constructors fold the slice left to right in a single pass, so the
// ordering guarantees of Dict apply directly: a key's position is where it
// was first produced, and grouped values keep the original slice order.

// Index builds a Dict keyed by key(item, index), storing the item itself.
// When multiple items produce the same key, the last one wins; the key keeps
// the position of its first occurrence.
//
//	byID := dict.Index(users, func(u User, _ int) int { return u.ID })
func Index[T any, K comparable](items []T, key func(T, int) K) *Dict[K, T] {
	return IndexValues(items, key, func(item T, _ int) T { return item })
}

// IndexValues builds a Dict keyed by key(item, index), storing
// value(item, index). Last write wins on duplicate keys.
//
//	nameByID := dict.IndexValues(users,
//	    func(u User, _ int) int { return u.ID },
//	    func(u User, _ int) string { return u.Name })
func IndexValues[T, V any, K comparable](items []T, key func(T, int) K, value func(T, int) V) *Dict[K, V] {
	d := WithCapacity[K, V](len(items))
	for i, item := range items {
		d.Set(key(item, i), value(item, i))
	}
	return d
}

// Group builds a Dict from key(item, index) to the slice of all items that
// produced that key, in original order.
//
//	byDept := dict.Group(employees, func(e Employee, _ int) string { return e.Department })
func Group[T any, K comparable](items []T, key func(T, int) K) *Dict[K, []T] {
	return GroupValues(items, key, func(item T, _ int) T { return item })
}

// GroupValues builds a Dict from key(item, index) to the slice of
// value(item, index) for every item that produced that key, in original
// order.
//
//	namesByDept := dict.GroupValues(employees,
//	    func(e Employee, _ int) string { return e.Department },
//	    func(e Employee, _ int) string { return e.Name })
func GroupValues[T, V any, K comparable](items []T, key func(T, int) K, value func(T, int) V) *Dict[K, []V] {
	d := New[K, []V]()
	for i, item := range items {
		k := key(item, i)
		list, _ := d.Get(k)
		d.Set(k, append(list, value(item, i)))
	}
	return d
}

package grouping

// Record is the loosely shaped item type the field-path descriptors are
// designed for. Items of other types (structs, pointers to structs, typed
// maps with string keys) are supported through reflection; see Field.
type Record = map[string]any

// ComputeFunc derives a key or value from an item and its position in the
// input sequence. The item is passed exactly as it appears in the input
// sequence, so the function must tolerate an absent (nil) item unless the
// ExcludeNullish policy is active.
type ComputeFunc func(item any, index int) any

type descriptorKind uint8

const (
	identity descriptorKind = iota // use the item itself (values only)
	fieldName
	computeFn
)

// Descriptor tells the engine how to derive a key or a value from an item:
// either by reading a named field ([Field]) or by calling a function
// ([Compute]).
//
// The zero Descriptor is the identity descriptor — "use the item itself".
// It is legal only as a value descriptor; IndexBy and GroupBy reject it as
// a key.
type Descriptor struct {
	kind descriptorKind
	path string
	fn   ComputeFunc
}

// Field returns a Descriptor that extracts the named attribute of an item.
//
// path supports dot notation for nested lookups ("user.address.city").
// Each segment is resolved against the current value: a map[string]any (or
// any map with string-convertible keys) by key, a struct or struct pointer
// by exported field name. A missing attribute, a nil intermediate value, or
// an item of any other shape resolves to absent (nil) — never an error.
func Field(path string) Descriptor {
	return Descriptor{kind: fieldName, path: path}
}

// Compute returns a Descriptor that derives its result by calling fn with
// the raw item and its position. fn may return any value, including nil.
func Compute(fn ComputeFunc) Descriptor {
	return Descriptor{kind: computeFn, fn: fn}
}

// IsIdentity reports whether d is the identity descriptor.
func (d Descriptor) IsIdentity() bool { return d.kind == identity }

// extract resolves the descriptor against one (item, index) pair.
// Field lookup on an absent item degrades to nil; no descriptor ever
// synthesises an error at extraction time.
func (d Descriptor) extract(item any, index int) any {
	switch d.kind {
	case fieldName:
		if IsAbsent(item) {
			return nil
		}
		return fieldValue(item, d.path)
	case computeFn:
		return d.fn(item, index)
	default:
		return item
	}
}

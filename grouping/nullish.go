package grouping

import "reflect"

// IsAbsent reports whether v is a nullish placeholder: a nil interface, or
// a typed nil behind one (pointer, map, slice, function, channel).
//
// This is the exact admission rule applied by the ExcludeNullish policy to
// items and computed keys. Absence is data, not a fault — items, keys, and
// values may all legally be absent. The two sub-cases "never set" (nil
// interface, missing map key) and "set to nil" (typed nil) are deliberately
// not distinguished anywhere in the engine.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	switch rv := reflect.ValueOf(v); rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	default:
		return false
	}
}

package grouping

import (
	"reflect"
	"strings"
)

// ─────────────────────────────────────────────────────────────────────────────
// Field-path resolution
//
// A field path is a dot-separated chain of attribute names resolved against
// an item, mirroring dot-notation access on nested map[string]any values:
//
//	item := Record{
//	    "user": Record{
//	        "name": "Alice",
//	        "address": Record{"city": "London"},
//	    },
//	}
//
//	fieldValue(item, "user.address.city")  → "London"
//	fieldValue(item, "user.missing")       → nil
//
// Lookup never fails: any segment that cannot be resolved — missing map key,
// nil intermediate, unexported or unknown struct field, unsupported shape —
// yields nil for the whole path.
// ─────────────────────────────────────────────────────────────────────────────

func fieldValue(item any, path string) any {
	current := item
	for _, seg := range strings.Split(path, ".") {
		if IsAbsent(current) {
			return nil
		}
		current = attribute(current, seg)
	}
	return current
}

// attribute resolves a single path segment against one value.
func attribute(v any, name string) any {
	if rec, ok := v.(Record); ok {
		return rec[name] // missing key degrades to nil
	}

	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		kt := rv.Type().Key()
		if kt.Kind() != reflect.String {
			return nil
		}
		mv := rv.MapIndex(reflect.ValueOf(name).Convert(kt))
		if !mv.IsValid() {
			return nil
		}
		return mv.Interface()
	case reflect.Struct:
		fv := rv.FieldByName(name)
		if !fv.IsValid() || !fv.CanInterface() {
			return nil
		}
		return fv.Interface()
	default:
		return nil
	}
}

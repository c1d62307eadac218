package dict_test

import (
	"testing"

	"github.com/hasbyte1/go-grouping-utils/dict"
)

// ─────────────────────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────────────────────

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %v want %v", i, got[i], want[i])
		}
	}
}

func abc() *dict.Dict[string, int] {
	d := dict.New[string, int]()
	d.Set("a", 1)
	d.Set("b", 2)
	d.Set("c", 3)
	return d
}

// ─────────────────────────────────────────────────────────────────────────────
// Set / Get / Has
// ─────────────────────────────────────────────────────────────────────────────

func TestSetGet(t *testing.T) {
	d := abc()
	v, ok := d.Get("b")
	if !ok || v != 2 {
		t.Fatalf("Get(b) = %v, %v; want 2, true", v, ok)
	}
	_, ok = d.Get("z")
	if ok {
		t.Fatal("Get of missing key should return false")
	}
}

func TestHas(t *testing.T) {
	d := abc()
	if !d.Has("a") {
		t.Fatal("Has(a) should be true")
	}
	if d.Has("z") {
		t.Fatal("Has(z) should be false")
	}
}

func TestLen(t *testing.T) {
	if abc().Len() != 3 {
		t.Fatal("Len failed")
	}
	if !dict.New[int, int]().IsEmpty() {
		t.Fatal("new Dict should be empty")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordering
// ─────────────────────────────────────────────────────────────────────────────

func TestInsertionOrder(t *testing.T) {
	d := dict.New[string, int]()
	d.Set("z", 1)
	d.Set("a", 2)
	d.Set("m", 3)
	assertSlice(t, d.Keys(), []string{"z", "a", "m"})
	assertSlice(t, d.Values(), []int{1, 2, 3})
}

func TestOverwriteKeepsPosition(t *testing.T) {
	d := abc()
	d.Set("a", 99)
	assertSlice(t, d.Keys(), []string{"a", "b", "c"})
	v, _ := d.Get("a")
	if v != 99 {
		t.Fatalf("overwritten value = %d; want 99", v)
	}
	assertSlice(t, d.Values(), []int{99, 2, 3})
}

func TestDelete(t *testing.T) {
	d := abc()
	if !d.Delete("b") {
		t.Fatal("Delete(b) should report true")
	}
	if d.Delete("b") {
		t.Fatal("second Delete(b) should report false")
	}
	assertSlice(t, d.Keys(), []string{"a", "c"})

	// positions must be reindexed: "c" is findable and ordered after "a"
	d.Set("c", 30)
	assertSlice(t, d.Values(), []int{1, 30})

	d.Set("b", 2) // re-insert goes to the end
	assertSlice(t, d.Keys(), []string{"a", "c", "b"})
}

func TestEntriesAndEach(t *testing.T) {
	d := abc()
	entries := d.Entries()
	if len(entries) != 3 || entries[1].Key != "b" || entries[1].Value != 2 {
		t.Fatalf("Entries = %v", entries)
	}

	var keys []string
	sum := 0
	d.Each(func(k string, v int) {
		keys = append(keys, k)
		sum += v
	})
	assertSlice(t, keys, []string{"a", "b", "c"})
	if sum != 6 {
		t.Fatalf("Each sum = %d; want 6", sum)
	}
}

func TestFromEntries(t *testing.T) {
	d := dict.FromEntries(
		dict.Entry[string, int]{Key: "x", Value: 1},
		dict.Entry[string, int]{Key: "y", Value: 2},
		dict.Entry[string, int]{Key: "x", Value: 3}, // duplicate: first position, last value
	)
	assertSlice(t, d.Keys(), []string{"x", "y"})
	v, _ := d.Get("x")
	if v != 3 {
		t.Fatalf("duplicate key value = %d; want 3", v)
	}
}

func TestKeysValuesAreCopies(t *testing.T) {
	d := abc()
	keys := d.Keys()
	keys[0] = "mutated"
	if d.Keys()[0] != "a" {
		t.Fatal("Keys must return a copy")
	}
	vals := d.Values()
	vals[0] = 42
	if d.Values()[0] != 1 {
		t.Fatal("Values must return a copy")
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Serialisation
// ─────────────────────────────────────────────────────────────────────────────

func TestToJSONOrdered(t *testing.T) {
	d := dict.New[string, int]()
	d.Set("zebra", 1)
	d.Set("alpha", 2)
	b, err := d.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"zebra":1,"alpha":2}`
	if string(b) != want {
		t.Fatalf("ToJSON = %s; want %s", b, want)
	}
}

func TestToJSONNonStringKeys(t *testing.T) {
	d := dict.New[any, string]()
	d.Set(2, "two")
	d.Set(nil, "nothing")
	b, err := d.ToJSON()
	if err != nil {
		t.Fatal(err)
	}
	want := `{"2":"two","null":"nothing"}`
	if string(b) != want {
		t.Fatalf("ToJSON = %s; want %s", b, want)
	}
}

func TestString(t *testing.T) {
	d := dict.New[string, string]()
	d.Set("k", "v")
	if d.String() != `{"k":"v"}` {
		t.Fatalf("String = %s", d.String())
	}
}

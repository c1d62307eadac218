package dict_test

import (
	"fmt"

	"github.com/hasbyte1/go-grouping-utils/dict"
)

func ExampleDict_Set() {
	d := dict.New[string, int]()
	d.Set("b", 1)
	d.Set("a", 2)
	d.Set("b", 3) // overwrite: "b" keeps first position
	fmt.Println(d)
	// Output: {"b":3,"a":2}
}

func ExampleDict_Each() {
	d := dict.FromEntries(
		dict.Entry[string, int]{Key: "one", Value: 1},
		dict.Entry[string, int]{Key: "two", Value: 2},
	)
	d.Each(func(k string, v int) {
		fmt.Printf("%s=%d\n", k, v)
	})
	// Output:
	// one=1
	// two=2
}

func ExampleIndex() {
	type city struct {
		Name    string
		Country string
	}
	cities := []city{
		{"London", "UK"},
		{"Paris", "FR"},
	}
	byName := dict.Index(cities, func(c city, _ int) string { return c.Name })
	c, _ := byName.Get("Paris")
	fmt.Println(c.Country)
	// Output: FR
}

func ExampleGroup() {
	words := []string{"ant", "bee", "cow", "ape"}
	byInitial := dict.Group(words, func(w string, _ int) byte { return w[0] })
	as, _ := byInitial.Get('a')
	fmt.Println(as)
	// Output: [ant ape]
}

func ExampleGroupValues() {
	type task struct {
		Owner string
		Title string
	}
	tasks := []task{
		{"alice", "ship it"},
		{"bob", "review"},
		{"alice", "fix bug"},
	}
	titles := dict.GroupValues(tasks,
		func(t task, _ int) string { return t.Owner },
		func(t task, _ int) string { return t.Title })
	fmt.Println(titles)
	// Output: {"alice":["ship it","fix bug"],"bob":["review"]}
}

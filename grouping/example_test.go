package grouping_test

import (
	"fmt"

	"github.com/hasbyte1/go-grouping-utils/grouping"
)

func ExampleIndexBy() {
	users := []grouping.Record{
		{"id": 1, "name": "Alice"},
		{"id": 2, "name": "Bob"},
	}
	byID, _ := grouping.IndexBy(users, "id", "name")
	fmt.Println(byID)
	// Output: {"1":"Alice","2":"Bob"}
}

func ExampleGroupBy() {
	users := []grouping.Record{
		{"name": "Alice", "group": "admin"},
		{"name": "Bob", "group": "user"},
		{"name": "Carol", "group": "admin"},
	}
	byGroup, _ := grouping.GroupBy(users, "group", "name")
	fmt.Println(byGroup)
	// Output: {"admin":["Alice","Carol"],"user":["Bob"]}
}

func ExampleGroupBy_computeKey() {
	words := []any{"ant", "bee", "cow", "ape"}
	byInitial, _ := grouping.GroupBy(words, func(item any, _ int) any {
		return string(item.(string)[0])
	})
	fmt.Println(byInitial)
	// Output: {"a":["ant","ape"],"b":["bee"],"c":["cow"]}
}

func ExampleOptions() {
	items := []grouping.Record{
		{"id": 1},
		nil,
		{"id": 2},
	}
	all, _ := grouping.IndexBy(items, "id")
	some, _ := grouping.IndexBy(items, "id", grouping.Options{ExcludeNullish: true})
	fmt.Println(all.Len(), some.Len())
	// Output: 3 2
}

func ExampleField() {
	orders := []grouping.Record{
		{"customer": grouping.Record{"city": "London"}, "total": 10},
		{"customer": grouping.Record{"city": "Paris"}, "total": 20},
		{"customer": grouping.Record{"city": "London"}, "total": 5},
	}
	byCity, _ := grouping.GroupBy(orders, grouping.Field("customer.city"), grouping.Field("total"))
	fmt.Println(byCity)
	// Output: {"London":[10,5],"Paris":[20]}
}

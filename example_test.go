package forest_test

import (
	"fmt"

	"github.com/npillmayer/forest"
)

func ExampleForest() {
	f := forest.New[string]()
	for _, x := range []string{"a", "b", "c", "d"} {
		f.Add(x)
	}
	f.Link("a", "b")
	f.Link("b", "c")
	conn, _ := f.Connected("a", "c")
	fmt.Println(conn)
	f.Cut("b", "c")
	conn, _ = f.Connected("a", "c")
	fmt.Println(conn)
	conn, _ = f.Connected("a", "b")
	fmt.Println(conn)
	// Output:
	// true
	// false
	// true
}

func ExampleForest_Tour() {
	f := forest.New[string]()
	f.Add("a")
	f.Add("b")
	f.Add("c")
	f.Link("a", "b")
	f.Link("a", "c")
	visits, _ := f.Tour("a")
	for v := range visits {
		if v.Entering {
			fmt.Printf("enter %s\n", v.Element)
		} else {
			fmt.Printf("back at %s\n", v.Element)
		}
	}
	// Output:
	// enter a
	// enter b
	// back at a
	// enter c
	// back at a
}

func ExampleBuilder() {
	b := forest.NewBuilder[int]()
	b.AddEdge(1, 2)
	b.AddEdge(2, 3)
	b.AddVertex(4)
	f, _ := b.Forest()
	fmt.Println(f.Order(), f.TreeCount())
	// Output:
	// 4 2
}

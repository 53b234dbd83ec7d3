package vector_test

import (
	"bytes"
	"fmt"
	"log"

	"github.com/PotatoMaster101/vector"
	"github.com/PotatoMaster101/vector/alloc"
)

// Example_basic demonstrates appending, inserting and deleting elements.
func Example_basic() {
	v, err := vector.New()
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	_ = v.Add([]byte("a"))
	_ = v.Add([]byte("b"))
	_ = v.Add([]byte("c"))
	_ = v.Insert([]byte("x"), 1)

	for i := 0; i < v.Len(); i++ {
		data, _ := v.Get(i)
		if i > 0 {
			fmt.Print(" ")
		}
		fmt.Printf("%s", data)
	}
	fmt.Println()

	// Out-of-range deletes clamp to the last element.
	if e := v.Delete(10); e != nil {
		fmt.Println("deleted:", string(e.Bytes()))
		e.Release()
	}
	fmt.Println("length:", v.Len())
	// Output:
	// a x b c
	// deleted: c
	// length: 3
}

// Example_sort demonstrates comparator-based sorting.
func Example_sort() {
	v, err := vector.New()
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	_ = v.Add([]byte("pear"))
	_ = v.Add([]byte("apple"))
	_ = v.Add([]byte("orange"))

	if err := v.Sort(bytes.Compare); err != nil {
		log.Fatal(err)
	}

	for i := 0; i < v.Len(); i++ {
		data, _ := v.Get(i)
		fmt.Println(string(data))
	}
	// Output:
	// apple
	// orange
	// pear
}

// Example_budget demonstrates enforcing a memory budget on the container.
func Example_budget() {
	// Ten backing slots cost 80 bytes; leave room for 4 element bytes.
	v, err := vector.New(vector.WithProvider(alloc.Budget(84)))
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()

	fmt.Println(v.Add([]byte("1234")))
	fmt.Println(v.Add([]byte("x")))
	// Output:
	// <nil>
	// vector: allocation failed: alloc: budget exceeded
}

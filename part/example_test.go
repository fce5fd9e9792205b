// File: part/example_test.go
package part_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/cardinal/part"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Choice
////////////////////////////////////////////////////////////////////////////////

// ExampleNewChoice places two alternatives of 10 and 5 values side by side:
// the second one starts at offset 10.
func ExampleNewChoice() {
	first, _ := part.NewAtomic("first", part.Range(10))
	second, _ := part.NewAtomic("second", part.Range(5))
	c, _ := part.NewChoice("c", []*part.Part{first, second})

	h, _ := c.Hash(part.Selection{Key: "second", Value: 3})
	m, _ := c.Unhash(big.NewInt(13))

	fmt.Println("cardinality:", c.Cardinality())
	fmt.Println("offsets:", c.Offset(0), c.Offset(1))
	fmt.Println("hash:", h)
	fmt.Printf("unhash: %+v\n", m)
	// Output:
	// cardinality: 15
	// offsets: 0 10
	// hash: 13
	// unhash: {Key:second Value:3}
}

////////////////////////////////////////////////////////////////////////////////
// Example: Tuple
////////////////////////////////////////////////////////////////////////////////

// ExampleNewTuple interleaves two components of 3 and 4 values as a
// mixed-radix number with weights 4 and 1.
func ExampleNewTuple() {
	first, _ := part.NewAtomic("first", part.Range(3))
	second, _ := part.NewAtomic("second", part.Range(4))
	t, _ := part.NewTuple("t", []*part.Part{first, second})

	h, _ := t.Hash(map[string]any{"first": 2, "second": 3})
	m, _ := t.Unhash(big.NewInt(11))

	fmt.Println("cardinality:", t.Cardinality())
	fmt.Println("place values:", t.PlaceValue(0), t.PlaceValue(1))
	fmt.Println("hash:", h)
	fmt.Println("unhash:", m)
	// Output:
	// cardinality: 12
	// place values: 4 1
	// hash: 11
	// unhash: map[first:2 second:3]
}

////////////////////////////////////////////////////////////////////////////////
// Example: tokens
////////////////////////////////////////////////////////////////////////////////

// ExamplePart_HashString names a state of a small device with a short token
// and recovers it.
func ExamplePart_HashString() {
	power, _ := part.NewAtomic("power", part.Bool())
	level, _ := part.NewAtomic("level", part.Interval(1, 100))
	device, _ := part.NewTuple("device", []*part.Part{power, level})

	tok, _ := device.HashString(map[string]any{"power": true, "level": 42})
	m, _ := device.UnhashString(tok)

	fmt.Println(tok)
	fmt.Println(m)
	// Output:
	// CN
	// map[level:42 power:true]
}

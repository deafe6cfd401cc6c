package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/hamroute/matrix"
)

// ExampleFromTriplets builds the distance matrix for three cities.
func ExampleFromTriplets() {
	d, err := matrix.FromTriplets([]matrix.Triplet{
		{From: "London", To: "Dublin", Distance: 464},
		{From: "London", To: "Belfast", Distance: 518},
		{From: "Dublin", To: "Belfast", Distance: 141},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.Names())
	fmt.Print(d)
	fmt.Println("connected:", d.Connected())

	// Output:
	// [London Dublin Belfast]
	// [-, 464, 518]
	// [464, -, 141]
	// [518, 141, -]
	// connected: true
}

package spatial_test

import (
	"fmt"

	"morphwizard/spatial"
	"morphwizard/vector"
)

// ExampleTree_WithinRadius builds a tree over three points and queries a
// radius that matches exactly one of them, avoiding the multi-match
// unspecified-order case.
func ExampleTree_WithinRadius() {
	points := []vector.Vec3{
		{0, 0, 0},
		{10, 0, 0},
		{0, 10, 0},
	}
	tree, err := spatial.New(points)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	results := tree.WithinRadius(vector.Vec3{1, 0, 0}, 4, nil)
	fmt.Println(len(results), results[0].Index, results[0].SquaredDistance)
	// Output: 1 0 1
}

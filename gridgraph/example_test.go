// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"
	"image"

	"github.com/katalvlaran/inpaint/gridgraph"
)

////////////////////////////////////////////////////////////////////////////////
// Example: FindBoundary
////////////////////////////////////////////////////////////////////////////////

// ExampleMask_FindBoundary demonstrates how the fill frontier is derived
// from a mask with a 2×2 hole.
// Scenario:
//
//   - 255 = hole, 0 = valid
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Every hole pixel touches a valid pixel, so all four are boundary.
//   - After filling the top row only the bottom row remains.
func ExampleMask_FindBoundary() {
	m, _ := gridgraph.From2D([][]uint8{
		{0, 0, 0, 0},
		{0, 255, 255, 0},
		{0, 255, 255, 0},
		{0, 0, 0, 0},
	}, gridgraph.Conn4)

	fmt.Println("boundary:", m.FindBoundary())
	m.MarkFilled(image.Rect(0, 1, 4, 2))
	fmt.Println("after fill:", m.FindBoundary())
	fmt.Println("holes left:", m.HoleCount())

	// Output:
	// boundary: [(1,1) (2,1) (1,2) (2,2)]
	// after fill: [(1,2) (2,2)]
	// holes left: 2
}

////////////////////////////////////////////////////////////////////////////////
// Example: FindPixelAcrossHole
////////////////////////////////////////////////////////////////////////////////

// ExampleMask_FindPixelAcrossHole walks from the left edge of a hole to the
// first valid pixel on its right side.
func ExampleMask_FindPixelAcrossHole() {
	m, _ := gridgraph.From2D([][]uint8{
		{0, 255, 255, 255, 0},
	}, gridgraph.Conn4)

	p, _ := m.FindPixelAcrossHole(image.Pt(1, 0), gridgraph.Vec{X: 1})
	fmt.Println(p)

	// Output:
	// (4,0)
}

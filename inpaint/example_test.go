package inpaint_test

import (
	"context"
	"fmt"
	"image"

	"github.com/katalvlaran/inpaint/gridgraph"
	"github.com/katalvlaran/inpaint/inpaint"
	"github.com/katalvlaran/inpaint/raster"
)

// ExampleNew fills a 10×10 hole in a 20×20 image one pixel per fill.
func ExampleNew() {
	mask, _ := gridgraph.New(20, 20, gridgraph.DefaultGridOptions())
	img, _ := raster.New(20, 20, 3)
	for y := 0; y < 20; y++ {
		for x := 0; x < 20; x++ {
			v := float64((x*7 + y*13) % 256)
			_ = img.Set(image.Pt(x, y), []float64{v, v, v})
			if x >= 5 && x < 15 && y >= 5 && y < 15 {
				_ = mask.SetHole(image.Pt(x, y))
			}
		}
	}

	cfg := inpaint.DefaultConfig()
	cfg.PatchHalfWidth = 2
	cfg.FillHalfWidth = 0 // paint the target pixel only

	ip, err := inpaint.New(img, mask, cfg)
	if err != nil {
		fmt.Println(err)
		return
	}
	n, err := ip.Run(context.Background())
	fmt.Println("fills:", n, "err:", err)
	fmt.Println("holes left:", ip.RemainingHoles())
	fmt.Println("state:", ip.State())
	// Output:
	// fills: 100 err: <nil>
	// holes left: 0
	// state: exhausted
}

// ExampleInpainter_Iterate steps through the first fills and shows the
// recorded candidates of the last one.
func ExampleInpainter_Iterate() {
	mask, _ := gridgraph.New(12, 12, gridgraph.DefaultGridOptions())
	img, _ := raster.New(12, 12, 1)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			_ = img.Set(image.Pt(x, y), []float64{float64(y % 2 * 100)})
		}
	}
	_ = mask.SetHole(image.Pt(6, 6))
	_ = mask.SetHole(image.Pt(6, 7))

	cfg := inpaint.DefaultConfig()
	cfg.PatchHalfWidth = 2
	cfg.FillHalfWidth = 0
	cfg.RecordCandidates = 2

	ip, _ := inpaint.New(img, mask, cfg)
	for {
		pair, ok, err := ip.Iterate()
		if err != nil || !ok {
			break
		}
		best := ip.PotentialCandidatePairs()[0]
		fmt.Printf("fill %d: %v ← %v (score %.0f)\n", pair.Iteration, pair.Target, pair.Source, best.Score)
	}
	fmt.Println("holes left:", ip.RemainingHoles())
	// Output:
	// fill 1: (6,6) ← (2,2) (score 0)
	// fill 2: (6,7) ← (2,3) (score 0)
	// holes left: 0
}

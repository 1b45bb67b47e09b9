package inpaint_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/inpaint/gridgraph"
	"github.com/katalvlaran/inpaint/raster"
)

// squareHole returns a size×size all-valid mask with a hole×hole square
// centered in it.
func squareHole(t testing.TB, size, hole int) *gridgraph.Mask {
	t.Helper()
	m, err := gridgraph.New(size, size, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	lo := (size - hole) / 2
	for y := lo; y < lo+hole; y++ {
		for x := lo; x < lo+hole; x++ {
			require.NoError(t, m.SetHole(image.Pt(x, y)))
		}
	}
	return m
}

// paintImage returns a three-channel size×size image with value f(x, y) in
// every channel.
func paintImage(t testing.TB, size int, f func(x, y int) float64) *raster.Image {
	t.Helper()
	im, err := raster.New(size, size, 3)
	require.NoError(t, err)
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			v := f(x, y)
			require.NoError(t, im.Set(image.Pt(x, y), []float64{v, v, v}))
		}
	}
	return im
}

func stripes(_, y int) float64 { return float64(y%4) * 60 }

func ramp(x, y int) float64 { return float64(x + 24*y) }

func texture(x, y int) float64 { return float64((x*7 + y*13) % 256) }

// scribble overwrites every hole pixel of m with v.
func scribble(t testing.TB, im *raster.Image, m *gridgraph.Mask, v float64) {
	t.Helper()
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if p := image.Pt(x, y); m.IsHole(p) {
				require.NoError(t, im.Set(p, []float64{v, v, v}))
			}
		}
	}
}

package priority

import (
	"image"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/inpaint/gridgraph"
	"github.com/katalvlaran/inpaint/raster"
)

// holeMask builds a w×h mask with every pixel of holes set to hole.
func holeMask(t *testing.T, w, h int, holes image.Rectangle) *gridgraph.Mask {
	t.Helper()
	m, err := gridgraph.New(w, h, gridgraph.DefaultGridOptions())
	require.NoError(t, err)
	for y := holes.Min.Y; y < holes.Max.Y; y++ {
		for x := holes.Min.X; x < holes.Max.X; x++ {
			require.NoError(t, m.SetHole(image.Pt(x, y)))
		}
	}
	return m
}

// stepImage returns a single-channel image that is lo left of column edge
// and hi from it on.
func stepImage(t *testing.T, w, h, edge int, lo, hi float64) *raster.Image {
	t.Helper()
	im, err := raster.New(w, h, 1)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := lo
			if x >= edge {
				v = hi
			}
			require.NoError(t, im.Set(image.Pt(x, y), []float64{v}))
		}
	}
	return im
}

func TestOnionPeel_CornersFirst(t *testing.T) {
	m := holeMask(t, 7, 7, image.Rect(2, 2, 5, 5))
	o := NewOnionPeel(m, 1)

	assert.InDelta(t, 5.0/9, o.Compute(image.Pt(2, 2)), 1e-12)
	assert.InDelta(t, 3.0/9, o.Compute(image.Pt(3, 2)), 1e-12)
	assert.Zero(t, o.Compute(image.Pt(3, 3)))
	assert.Greater(t, o.Compute(image.Pt(4, 4)), o.Compute(image.Pt(4, 3)))

	assert.Equal(t, 1.0, o.Confidence(image.Pt(0, 0)))
	assert.Zero(t, o.Confidence(image.Pt(2, 2)))
	assert.Zero(t, o.Confidence(image.Pt(-1, 0)))
}

func TestOnionPeel_UpdateInheritsConfidence(t *testing.T) {
	m := holeMask(t, 7, 7, image.Rect(2, 2, 5, 5))
	o := NewOnionPeel(m, 1)
	o.Update(image.Pt(2, 2), []image.Point{{2, 2}, {3, 2}})
	assert.InDelta(t, 5.0/9, o.Confidence(image.Pt(2, 2)), 1e-12)
	assert.InDelta(t, 5.0/9, o.Confidence(image.Pt(3, 2)), 1e-12)
	assert.Zero(t, o.Confidence(image.Pt(4, 2)))
}

func TestOnionPeel_ImageEdgeCountsAsZero(t *testing.T) {
	m := holeMask(t, 5, 5, image.Rectangle{})
	o := NewOnionPeel(m, 1)
	assert.InDelta(t, 4.0/9, o.Compute(image.Pt(0, 0)), 1e-12)
}

func TestNormal(t *testing.T) {
	m := holeMask(t, 10, 10, image.Rect(1, 4, 9, 6))
	n := normal(m, image.Pt(5, 4))
	assert.InDelta(t, 0, n.X, 1e-12)
	assert.InDelta(t, -1, n.Y, 1e-12)

	n = normal(m, image.Pt(5, 5))
	assert.InDelta(t, 1, n.Y, 1e-12)

	deep := holeMask(t, 5, 5, image.Rect(0, 0, 5, 5))
	assert.Equal(t, gridgraph.Vec{}, normal(deep, image.Pt(2, 2)))
}

func TestDiff(t *testing.T) {
	nan := math.NaN()
	assert.Equal(t, 2.0, diff(1, nan, 5))
	assert.Equal(t, 3.0, diff(nan, 2, 5))
	assert.Equal(t, 1.0, diff(1, 2, nan))
	assert.Zero(t, diff(nan, 2, nan))
	assert.Zero(t, diff(nan, nan, 5))
}

func TestNewField_NoBlurKeepsValidValues(t *testing.T) {
	m := holeMask(t, 6, 3, image.Rect(2, 0, 4, 3))
	im := stepImage(t, 6, 3, 3, 10, 20)
	f := newField(m, 0, im.Luminance)
	assert.Equal(t, 10.0, f.at(1, 1))
	assert.Equal(t, 20.0, f.at(4, 1))
	assert.True(t, math.IsNaN(f.at(2, 1)))
	assert.True(t, math.IsNaN(f.at(-1, 1)))

	f.set(image.Pt(2, 1), 15)
	assert.Equal(t, gridgraph.Vec{X: 5}, f.gradient(image.Pt(2, 1)))
}

func TestNewField_BlurStaysInRange(t *testing.T) {
	m := holeMask(t, 10, 10, image.Rect(1, 4, 9, 6))
	im := stepImage(t, 10, 10, 5, 0, 255)
	f := newField(m, 1, im.Luminance)
	for i, v := range f.v {
		if math.IsNaN(v) {
			continue
		}
		assert.GreaterOrEqual(t, v, -1e-6, "pixel %d", i)
		assert.LessOrEqual(t, v, 255+1e-6, "pixel %d", i)
	}
	assert.False(t, math.IsNaN(f.at(5, 4)), "hole next to boundary gets a value")
	assert.Less(t, f.at(0, 0), f.at(9, 0))
}

// TestCriminisi_PrefersEdges checks that a boundary pixel where an intensity
// edge meets the hole outranks one in a flat region with equal confidence.
func TestCriminisi_PrefersEdges(t *testing.T) {
	m := holeMask(t, 10, 10, image.Rect(1, 4, 9, 6))
	im := stepImage(t, 10, 10, 5, 0, 255)
	c := NewCriminisi(m, im, 1, 1)

	onEdge := c.Compute(image.Pt(5, 4))
	flat := c.Compute(image.Pt(2, 4))
	assert.Greater(t, onEdge, flat)
	assert.Greater(t, flat, 0.0, "data term is floored")
}

func TestCriminisi_UpdateRefreshesLuminance(t *testing.T) {
	m := holeMask(t, 6, 3, image.Rect(2, 0, 4, 3))
	im := stepImage(t, 6, 3, 3, 10, 20)
	c := NewCriminisi(m, im, 1, 0)
	require.True(t, math.IsNaN(c.lum.at(2, 1)))

	c.Update(image.Pt(2, 1), []image.Point{{2, 1}})
	assert.Equal(t, 10.0, c.lum.at(2, 1))
	assert.Greater(t, c.Confidence(image.Pt(2, 1)), 0.0)
}

func depthImage(t *testing.T, left, right float64) *raster.Image {
	t.Helper()
	lum := stepImage(t, 10, 5, 5, 50, 50)
	depth := stepImage(t, 10, 5, 5, left, right)
	im, err := lum.AppendChannel(depth)
	require.NoError(t, err)
	return im
}

func TestDepth_Continuity(t *testing.T) {
	m := holeMask(t, 10, 5, image.Rect(4, 0, 6, 5))
	p := image.Pt(4, 2)

	same, err := NewDepth(m, depthImage(t, 10, 10), 1, 1, 0, 5)
	require.NoError(t, err)
	assert.InDelta(t, 1, same.continuity(p), 1e-12)

	broken, err := NewDepth(m, depthImage(t, 10, 100), 1, 1, 0, 5)
	require.NoError(t, err)
	assert.Less(t, broken.continuity(p), 1e-6)
	assert.Greater(t, same.Compute(p), broken.Compute(p))

	off, err := NewDepth(m, depthImage(t, 10, 10), 1, 1, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, off.continuity(p))
}

func TestByName(t *testing.T) {
	m := holeMask(t, 10, 5, image.Rect(4, 0, 6, 5))
	im := depthImage(t, 1, 2)
	for _, name := range Names() {
		f, err := ByName(name, m, im, Options{PatchHalfWidth: 1, DepthChannel: 1, DepthThreshold: 1})
		require.NoError(t, err, name)
		assert.NotNil(t, f)
	}

	_, err := ByName("random", m, im, Options{})
	assert.ErrorIs(t, err, ErrUnknownFunction)
	_, err = ByName("criminisi", m, nil, Options{})
	assert.ErrorIs(t, err, ErrNoImage)
	_, err = ByName("depth", m, im, Options{DepthChannel: 2})
	assert.ErrorIs(t, err, ErrBadChannel)
	_, err = ByName("onion-peel", m, nil, Options{PatchHalfWidth: -1})
	assert.ErrorIs(t, err, ErrBadOption)

	small, err := raster.New(3, 3, 1)
	require.NoError(t, err)
	_, err = ByName("criminisi", m, small, Options{})
	assert.ErrorIs(t, err, ErrSizeMismatch)
}

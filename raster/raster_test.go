package raster_test

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/inpaint/raster"
)

func TestNew_Errors(t *testing.T) {
	_, err := raster.New(0, 1, 3)
	assert.ErrorIs(t, err, raster.ErrEmptyImage)
	_, err = raster.New(1, 1, 0)
	assert.ErrorIs(t, err, raster.ErrBadChannels)
}

func TestFromImage_RoundTrip(t *testing.T) {
	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(5, 5, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	src.Set(6, 5, color.RGBA{R: 200, G: 100, B: 0, A: 255})

	im, err := raster.FromImage(src)
	require.NoError(t, err)
	assert.Equal(t, 2, im.Width)
	assert.Equal(t, 1, im.Height)
	assert.Equal(t, []float64{10, 20, 30}, im.At(image.Pt(0, 0)))
	assert.Equal(t, []float64{200, 100, 0}, im.At(image.Pt(1, 0)))

	out := im.ToNRGBA()
	assert.Equal(t, color.NRGBA{R: 200, G: 100, B: 0, A: 255}, out.NRGBAAt(1, 0))
}

func TestFromGray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 2, 2))
	src.SetGray(1, 1, color.Gray{Y: 77})
	im, err := raster.FromGray(src)
	require.NoError(t, err)
	assert.Equal(t, 1, im.Channels)
	assert.Equal(t, 77.0, im.Sample(image.Pt(1, 1), 0))
	assert.Equal(t, 77.0, im.Luminance(image.Pt(1, 1)))
}

func TestSetAndCopyPixel(t *testing.T) {
	im, _ := raster.New(3, 1, 2)
	require.NoError(t, im.Set(image.Pt(0, 0), []float64{1, 2}))
	require.NoError(t, im.CopyPixel(image.Pt(2, 0), image.Pt(0, 0)))
	assert.Equal(t, []float64{1, 2}, im.At(image.Pt(2, 0)))
	assert.Equal(t, []float64{0, 0}, im.At(image.Pt(1, 0)))

	assert.ErrorIs(t, im.Set(image.Pt(3, 0), []float64{1, 2}), raster.ErrOutOfRange)
	assert.ErrorIs(t, im.Set(image.Pt(0, 0), []float64{1}), raster.ErrSizeMismatch)
	assert.ErrorIs(t, im.CopyPixel(image.Pt(0, 0), image.Pt(-1, 0)), raster.ErrOutOfRange)
	assert.Nil(t, im.At(image.Pt(0, 4)))
}

func TestAppendChannelAndChannel(t *testing.T) {
	rgb, _ := raster.New(2, 1, 3)
	_ = rgb.Set(image.Pt(1, 0), []float64{1, 2, 3})
	depth, _ := raster.New(2, 1, 1)
	_ = depth.Set(image.Pt(1, 0), []float64{9})

	rgbd, err := rgb.AppendChannel(depth)
	require.NoError(t, err)
	assert.Equal(t, 4, rgbd.Channels)
	assert.Equal(t, []float64{1, 2, 3, 9}, rgbd.At(image.Pt(1, 0)))

	d, err := rgbd.Channel(3)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 9}, d.Pix)

	_, err = rgbd.Channel(4)
	assert.ErrorIs(t, err, raster.ErrBadChannels)

	small, _ := raster.New(1, 1, 1)
	_, err = rgb.AppendChannel(small)
	assert.ErrorIs(t, err, raster.ErrSizeMismatch)
}

func TestIsFiniteAndClamp(t *testing.T) {
	im, _ := raster.New(2, 1, 3)
	_ = im.Set(image.Pt(0, 0), []float64{-5, 300, math.NaN()})
	assert.False(t, im.IsFinite(image.Pt(0, 0)))
	assert.True(t, im.IsFinite(image.Pt(1, 0)))

	out := im.ToNRGBA()
	assert.Equal(t, color.NRGBA{R: 0, G: 255, B: 0, A: 255}, out.NRGBAAt(0, 0))
}

func TestClone_Independent(t *testing.T) {
	im, _ := raster.New(1, 1, 1)
	c := im.Clone()
	c.Pix[0] = 5
	assert.Zero(t, im.Pix[0])
}

package difference

import (
	"image"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/inpaint/descriptor"
	"github.com/katalvlaran/inpaint/raster"
)

// patchExcluded extends the shared guard: the source must be a Source descriptor.
func patchExcluded(target, source *descriptor.Patch) bool {
	return excluded(target, source) || source.Status() != descriptor.Source
}

// SumAbsolute sums |t − s| over every channel of the target's valid offsets.
// With Average set the sum is divided by the number of compared pixels.
type SumAbsolute struct {
	Image   *raster.Image
	Average bool
}

// Difference implements Functor.
func (f SumAbsolute) Difference(target, source *descriptor.Patch) float64 {
	if patchExcluded(target, source) {
		return inf
	}
	var sum float64
	for _, off := range target.ValidOffsets {
		t := f.Image.At(target.Center.Add(off))
		s := f.Image.At(source.Center.Add(off))
		for c := range t {
			sum += math.Abs(t[c] - s[c])
		}
	}
	return averaged(sum, len(target.ValidOffsets), f.Average)
}

// SumSquared sums (t − s)² over every channel of the target's valid offsets.
type SumSquared struct {
	Image   *raster.Image
	Average bool
}

// Difference implements Functor.
func (f SumSquared) Difference(target, source *descriptor.Patch) float64 {
	if patchExcluded(target, source) {
		return inf
	}
	var sum float64
	for _, off := range target.ValidOffsets {
		t := f.Image.At(target.Center.Add(off))
		s := f.Image.At(source.Center.Add(off))
		for c := range t {
			d := t[c] - s[c]
			sum += d * d
		}
	}
	return averaged(sum, len(target.ValidOffsets), f.Average)
}

func averaged(sum float64, n int, average bool) float64 {
	if !average || n == 0 {
		return sum
	}
	return sum / float64(n)
}

// MeanColor compares per-channel means taken over the target's valid offsets
// in both patches. Weights, when set, must have one entry per channel.
type MeanColor struct {
	Image   *raster.Image
	Weights []float64
}

// Difference implements Functor.
func (f MeanColor) Difference(target, source *descriptor.Patch) float64 {
	if patchExcluded(target, source) {
		return inf
	}
	a := &descriptor.FeatureVector{Coord: target.Center, State: target.State,
		Values: ChannelMeans(f.Image, target.Center, target.ValidOffsets)}
	b := &descriptor.FeatureVector{Coord: source.Center, State: source.State,
		Values: ChannelMeans(f.Image, source.Center, target.ValidOffsets)}
	if f.Weights == nil {
		return FeatureVectorDifference{}.Difference(a, b)
	}
	return WeightedFeatureVectorDifference{Weights: f.Weights}.Difference(a, b)
}

// ChannelMeans returns the mean of every channel over center+offsets.
// An empty offset list yields zeros.
func ChannelMeans(im *raster.Image, center image.Point, offsets []image.Point) []float64 {
	means := make([]float64, im.Channels)
	if len(offsets) == 0 {
		return means
	}
	samples := make([]float64, len(offsets))
	for c := range means {
		for i, off := range offsets {
			samples[i] = im.Sample(center.Add(off), c)
		}
		means[c] = stat.Mean(samples, nil)
	}
	return means
}

// IsophoteAngle compares the dominant luminance gradient direction of the
// target's valid region with that of the same offsets in the source.
// Flat regions (zero gradient) compare as identical.
type IsophoteAngle struct {
	Image *raster.Image
}

// Difference implements Functor.
func (f IsophoteAngle) Difference(target, source *descriptor.Patch) float64 {
	if patchExcluded(target, source) {
		return inf
	}
	valid := make(map[image.Point]struct{}, len(target.ValidOffsets))
	for _, off := range target.ValidOffsets {
		valid[off] = struct{}{}
	}
	inTarget := func(off image.Point) bool {
		_, ok := valid[off]
		return ok
	}
	tg := meanGradient(f.Image, target.Center, target.ValidOffsets, inTarget)
	sg := meanGradient(f.Image, source.Center, target.ValidOffsets, inTarget)
	if floats.Norm(tg, 2) == 0 || floats.Norm(sg, 2) == 0 {
		return 0
	}
	floats.Scale(1/floats.Norm(tg, 2), tg)
	floats.Scale(1/floats.Norm(sg, 2), sg)
	a := &descriptor.FeatureVector{Coord: target.Center, State: target.State, Values: tg}
	b := &descriptor.FeatureVector{Coord: source.Center, State: source.State, Values: sg}
	return AngularDifference{}.Difference(a, b)
}

// meanGradient averages central-difference luminance gradients over offsets,
// using only neighbors accepted by usable. Gradients are sign-normalized so
// opposite directions reinforce instead of cancelling.
func meanGradient(im *raster.Image, center image.Point, offsets []image.Point, usable func(image.Point) bool) []float64 {
	g := []float64{0, 0}
	for _, off := range offsets {
		gx, gy := centralDifference(im, center, off, usable)
		if gx < 0 || (gx == 0 && gy < 0) {
			gx, gy = -gx, -gy
		}
		g[0] += gx
		g[1] += gy
	}
	return g
}

func centralDifference(im *raster.Image, center, off image.Point, usable func(image.Point) bool) (gx, gy float64) {
	lum := func(o image.Point) float64 { return im.Luminance(center.Add(o)) }
	axis := func(step image.Point) float64 {
		fwd, bwd := off.Add(step), off.Sub(step)
		okF, okB := usable(fwd), usable(bwd)
		switch {
		case okF && okB:
			return (lum(fwd) - lum(bwd)) / 2
		case okF:
			return lum(fwd) - lum(off)
		case okB:
			return lum(off) - lum(bwd)
		}
		return 0
	}
	return axis(image.Pt(1, 0)), axis(image.Pt(0, 1))
}

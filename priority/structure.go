package priority

import (
	"image"
	"math"

	"github.com/disintegration/gift"

	"github.com/katalvlaran/inpaint/gridgraph"
)

// normalOffsets are the 8 neighbors used to estimate the boundary normal.
var normalOffsets = [8][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}}

// normal estimates the unit boundary normal at p, pointing from the hole
// towards the valid region. Zero when p has no valid neighbor.
func normal(m *gridgraph.Mask, p image.Point) gridgraph.Vec {
	var n gridgraph.Vec
	for _, off := range normalOffsets {
		if m.IsValid(image.Pt(p.X+off[0], p.Y+off[1])) {
			n.X += float64(off[0])
			n.Y += float64(off[1])
		}
	}
	return n.Unit()
}

// field is a smoothed scalar plane; NaN where nothing valid is near.
type field struct {
	w, h int
	v    []float64
}

// newField smooths sample over the valid pixels of m with a Gaussian of the
// given variance. The blur is a normalized convolution, blur(v·valid) /
// blur(valid), so hole pixels never leak into the result and hole pixels next
// to the boundary get an extrapolated value.
func newField(m *gridgraph.Mask, variance float64, sample func(image.Point) float64) *field {
	f := &field{w: m.Width, h: m.Height, v: make([]float64, m.Width*m.Height)}
	lo, hi := math.Inf(1), math.Inf(-1)
	for i := range f.v {
		p := m.Point(i)
		if !m.IsValid(p) {
			f.v[i] = math.NaN()
			continue
		}
		f.v[i] = sample(p)
		lo = math.Min(lo, f.v[i])
		hi = math.Max(hi, f.v[i])
	}
	if variance <= 0 || lo > hi {
		return f
	}
	scale := hi - lo
	if scale == 0 {
		scale = 1
	}

	// 1. Quantize v·valid and valid to 16 bits.
	num := image.NewGray16(m.Bounds())
	den := image.NewGray16(m.Bounds())
	for i, v := range f.v {
		if math.IsNaN(v) {
			continue
		}
		num.Pix[2*i], num.Pix[2*i+1] = split16((v - lo) / scale)
		den.Pix[2*i], den.Pix[2*i+1] = 0xff, 0xff
	}

	// 2. Blur both planes with the same kernel.
	g := gift.New(gift.GaussianBlur(float32(math.Sqrt(variance))))
	bnum := image.NewGray16(g.Bounds(num.Bounds()))
	bden := image.NewGray16(g.Bounds(den.Bounds()))
	g.Draw(bnum, num)
	g.Draw(bden, den)

	// 3. Divide, dropping pixels with negligible valid weight.
	for i := range f.v {
		d := join16(bden.Pix[2*i], bden.Pix[2*i+1])
		if d < 1e-3 {
			f.v[i] = math.NaN()
			continue
		}
		r := join16(bnum.Pix[2*i], bnum.Pix[2*i+1]) / d
		f.v[i] = lo + scale*math.Min(1, r)
	}
	return f
}

func split16(x float64) (hi, lo uint8) {
	u := uint16(math.Round(math.Max(0, math.Min(1, x)) * 0xffff))
	return uint8(u >> 8), uint8(u)
}

func join16(hi, lo uint8) float64 {
	return float64(uint16(hi)<<8|uint16(lo)) / 0xffff
}

func (f *field) at(x, y int) float64 {
	if x < 0 || y < 0 || x >= f.w || y >= f.h {
		return math.NaN()
	}
	return f.v[y*f.w+x]
}

func (f *field) set(p image.Point, v float64) {
	if p.X >= 0 && p.Y >= 0 && p.X < f.w && p.Y < f.h {
		f.v[p.Y*f.w+p.X] = v
	}
}

// gradient at p from central differences, one-sided where a neighbor is
// undefined, zero where neither works.
func (f *field) gradient(p image.Point) gridgraph.Vec {
	return gridgraph.Vec{
		X: diff(f.at(p.X-1, p.Y), f.at(p.X, p.Y), f.at(p.X+1, p.Y)),
		Y: diff(f.at(p.X, p.Y-1), f.at(p.X, p.Y), f.at(p.X, p.Y+1)),
	}
}

func diff(prev, cur, next float64) float64 {
	switch pn, cn, nn := !math.IsNaN(prev), !math.IsNaN(cur), !math.IsNaN(next); {
	case pn && nn:
		return (next - prev) / 2
	case cn && nn:
		return next - cur
	case pn && cn:
		return cur - prev
	}
	return 0
}

// isophote is the gradient rotated by 90°, tangent to constant intensity.
func (f *field) isophote(p image.Point) gridgraph.Vec {
	g := f.gradient(p)
	return gridgraph.Vec{X: -g.Y, Y: g.X}
}

// dataTerm is |isophote · normal| / alpha, floored at epsilon.
func dataTerm(f *field, m *gridgraph.Mask, p image.Point) float64 {
	d := math.Abs(f.isophote(p).Dot(normal(m, p))) / alpha
	return math.Max(d, epsilon)
}

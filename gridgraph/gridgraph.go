package gridgraph

import (
	"fmt"
	"image"
	"image/color"
)

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// New returns a width×height mask with every pixel valid.
// Returns ErrEmptyGrid for non-positive dimensions, ErrSameSentinels for bad options.
// Complexity: O(W×H).
func New(width, height int, opts GridOptions) (*Mask, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	m, err := newMask(width, height, opts)
	if err != nil {
		return nil, err
	}
	if opts.ValidValue != 0 {
		for i := range m.Cells {
			m.Cells[i] = opts.ValidValue
		}
	}
	return m, nil
}

// NewMask constructs a Mask from a non-empty, rectangular 2D slice of raw values.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func NewMask(values [][]uint8, opts GridOptions) (*Mask, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	m, err := newMask(w, h, opts)
	if err != nil {
		return nil, err
	}
	for y := 0; y < h; y++ {
		copy(m.Cells[y*w:(y+1)*w], values[y])
	}
	return m, nil
}

// From2D builds a Mask with default sentinels and the given connectivity.
func From2D(values [][]uint8, conn Connectivity) (*Mask, error) {
	opts := DefaultGridOptions()
	opts.Conn = conn
	return NewMask(values, opts)
}

// FromImage builds a Mask from the gray level of every pixel of img.
// The mask origin is img.Bounds().Min.
// Complexity: O(W×H).
func FromImage(img image.Image, opts GridOptions) (*Mask, error) {
	b := img.Bounds()
	if b.Empty() {
		return nil, ErrEmptyGrid
	}
	m, err := newMask(b.Dx(), b.Dy(), opts)
	if err != nil {
		return nil, err
	}
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			g := color.GrayModel.Convert(img.At(x, y)).(color.Gray)
			m.Cells[m.index(x-b.Min.X, y-b.Min.Y)] = g.Y
		}
	}
	return m, nil
}

func newMask(w, h int, opts GridOptions) (*Mask, error) {
	if opts.HoleValue == opts.ValidValue {
		return nil, ErrSameSentinels
	}
	offsets := offsets4
	if opts.Conn == Conn8 {
		offsets = offsets8
	}
	return &Mask{
		Width:           w,
		Height:          h,
		Cells:           make([]uint8, w*h),
		HoleValue:       opts.HoleValue,
		ValidValue:      opts.ValidValue,
		Conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// Clone returns a deep copy of m.
func (m *Mask) Clone() *Mask {
	c := *m
	c.Cells = make([]uint8, len(m.Cells))
	copy(c.Cells, m.Cells)
	return &c
}

// ToImage renders the raw mask values as a grayscale image anchored at (0,0).
func (m *Mask) ToImage() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, m.Width, m.Height))
	for y := 0; y < m.Height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+m.Width], m.Cells[y*m.Width:(y+1)*m.Width])
	}
	return img
}

// Bounds returns the rectangle (0,0)-(Width,Height).
func (m *Mask) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.Width, m.Height)
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (m *Mask) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// Contains reports whether p lies within the grid boundaries.
func (m *Mask) Contains(p image.Point) bool {
	return m.InBounds(p.X, p.Y)
}

// NeighborOffsets returns the precomputed neighbor offsets for m.Conn.
// Complexity: O(1).
func (m *Mask) NeighborOffsets() [][2]int {
	return m.neighborOffsets
}

// index maps (x,y) to a row-major index: y*Width + x.
func (m *Mask) index(x, y int) int {
	return y*m.Width + x
}

// Index maps p to its row-major index. The caller must check bounds.
// Complexity: O(1).
func (m *Mask) Index(p image.Point) int {
	return m.index(p.X, p.Y)
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (m *Mask) Coordinate(idx int) (x, y int) {
	return idx % m.Width, idx / m.Width
}

// Point converts a row-major index back to an image.Point.
func (m *Mask) Point(idx int) image.Point {
	x, y := m.Coordinate(idx)
	return image.Pt(x, y)
}

// Value returns the raw value at p, or ErrOutOfRange.
func (m *Mask) Value(p image.Point) (uint8, error) {
	if !m.Contains(p) {
		return 0, fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, p, m.Width, m.Height)
	}
	return m.Cells[m.Index(p)], nil
}

// SetValue stores a raw value at p, or returns ErrOutOfRange.
func (m *Mask) SetValue(p image.Point, v uint8) error {
	if !m.Contains(p) {
		return fmt.Errorf("%w: %v not in %dx%d", ErrOutOfRange, p, m.Width, m.Height)
	}
	m.Cells[m.Index(p)] = v
	return nil
}

// SetHole marks p as a hole pixel. Out-of-range points return ErrOutOfRange.
func (m *Mask) SetHole(p image.Point) error {
	return m.SetValue(p, m.HoleValue)
}

// StateAt classifies p. Points outside the mask are Indeterminate.
// Complexity: O(1).
func (m *Mask) StateAt(p image.Point) State {
	if !m.Contains(p) {
		return Indeterminate
	}
	switch m.Cells[m.Index(p)] {
	case m.HoleValue:
		return Hole
	case m.ValidValue:
		return Valid
	default:
		return Indeterminate
	}
}

// IsHole reports whether p is inside the mask and carries HoleValue.
// Complexity: O(1).
func (m *Mask) IsHole(p image.Point) bool {
	return m.Contains(p) && m.Cells[m.Index(p)] == m.HoleValue
}

// IsValid reports whether p is inside the mask and carries ValidValue.
// Complexity: O(1).
func (m *Mask) IsValid(p image.Point) bool {
	return m.Contains(p) && m.Cells[m.Index(p)] == m.ValidValue
}

// HoleCount returns the number of hole pixels.
// Complexity: O(W×H).
func (m *Mask) HoleCount() int {
	n := 0
	for _, v := range m.Cells {
		if v == m.HoleValue {
			n++
		}
	}
	return n
}

// IsFullyValid reports whether every pixel of r lies inside the mask and is valid.
// Complexity: O(|r|).
func (m *Mask) IsFullyValid(r image.Rectangle) bool {
	if !r.In(m.Bounds()) {
		return false
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		row := m.Cells[y*m.Width : (y+1)*m.Width]
		for x := r.Min.X; x < r.Max.X; x++ {
			if row[x] != m.ValidValue {
				return false
			}
		}
	}
	return true
}

package descriptor

import "image"

// Status tags a descriptor as a potential donor, a fill target, or unusable.
type Status int

const (
	// Invalid descriptors never take part in a comparison.
	Invalid Status = iota
	// Source descriptors are fully valid and may donate pixels.
	Source
	// Target descriptors sit on the boundary and need filling.
	Target
)

// String returns a lowercase status name.
func (s Status) String() string {
	switch s {
	case Source:
		return "source"
	case Target:
		return "target"
	default:
		return "invalid"
	}
}

// Descriptor is anything attached to a pixel that carries a Status.
type Descriptor interface {
	// Vertex is the pixel the descriptor belongs to.
	Vertex() image.Point
	// Status is the current eligibility of the descriptor.
	Status() Status
}

// FeatureVector is a fixed-length numeric summary of one pixel.
type FeatureVector struct {
	Coord  image.Point
	State  Status
	Values []float64
}

// Vertex implements Descriptor.
func (f *FeatureVector) Vertex() image.Point { return f.Coord }

// Status implements Descriptor.
func (f *FeatureVector) Status() Status { return f.State }

// Store keeps one descriptor per pixel of a width×height grid.
type Store[D any] struct {
	width, height int
	items         []D
}

// NewStore allocates a store for a width×height grid of zero descriptors.
func NewStore[D any](width, height int) *Store[D] {
	return &Store[D]{width: width, height: height, items: make([]D, width*height)}
}

// Get returns the descriptor of p. The caller must check bounds.
func (s *Store[D]) Get(p image.Point) D { return s.items[p.Y*s.width+p.X] }

// Set replaces the descriptor of p. The caller must check bounds.
func (s *Store[D]) Set(p image.Point, d D) { s.items[p.Y*s.width+p.X] = d }

// Len returns the number of slots.
func (s *Store[D]) Len() int { return len(s.items) }

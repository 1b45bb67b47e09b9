// Package gridgraph defines core types, options, and sentinel errors
// for the mask model of github.com/katalvlaran/inpaint.
package gridgraph

import (
	"errors"
	"math"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfRange indicates a coordinate outside the mask bounds.
	ErrOutOfRange = errors.New("gridgraph: coordinate out of range")
	// ErrSameSentinels indicates HoleValue == ValidValue.
	ErrSameSentinels = errors.New("gridgraph: hole and valid sentinel values must differ")
	// ErrNegativeAmount indicates a negative ExpandHole amount.
	ErrNegativeAmount = errors.New("gridgraph: expansion amount must be non-negative")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "4" or "8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "8"
	}
	return "4"
}

// State is the classification of one mask pixel.
type State int

const (
	// Indeterminate pixels carry neither sentinel value, or lie outside the mask.
	Indeterminate State = iota
	// Hole pixels must be synthesized.
	Hole
	// Valid pixels hold trustworthy content and may donate to holes.
	Valid
)

// String returns a lowercase state name.
func (s State) String() string {
	switch s {
	case Hole:
		return "hole"
	case Valid:
		return "valid"
	default:
		return "indeterminate"
	}
}

// Vec is a direction in pixel space. X grows to the right, Y grows downward.
type Vec struct {
	X, Y float64
}

// Norm returns the Euclidean length of v.
func (v Vec) Norm() float64 { return math.Hypot(v.X, v.Y) }

// Unit returns v scaled to unit length, or the zero vector if v is zero.
func (v Vec) Unit() Vec {
	n := v.Norm()
	if n == 0 {
		return Vec{}
	}
	return Vec{X: v.X / n, Y: v.Y / n}
}

// Dot returns the scalar product of v and w.
func (v Vec) Dot(w Vec) float64 { return v.X*w.X + v.Y*w.Y }

// GridOptions contains tunable parameters for the mask.
type GridOptions struct {
	// HoleValue is the raw value marking a hole pixel.
	HoleValue uint8
	// ValidValue is the raw value marking a valid pixel.
	ValidValue uint8
	// Conn chooses 4- or 8-directional connectivity for boundary and component analysis.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings:
// HoleValue=255 (white), ValidValue=0 (black), Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		HoleValue:  255,
		ValidValue: 0,
		Conn:       Conn4,
	}
}

// Mask is a grid of per-pixel raw values classified against two sentinels.
// Width and Height define dimensions; Cells holds raw values in row-major order.
// Mask is not safe for concurrent mutation; the fill loop owns it exclusively.
type Mask struct {
	Width, Height int
	Cells         []uint8
	HoleValue     uint8
	ValidValue    uint8
	Conn          Connectivity

	neighborOffsets [][2]int
}

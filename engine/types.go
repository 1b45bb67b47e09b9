package engine

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Sentinel errors for the fill loop.
var (
	// ErrNoCandidatesFound indicates the finder had no source for a target.
	ErrNoCandidatesFound = errors.New("engine: no source candidates for target")
	// ErrPaintRejected indicates AcceptPaintedVertex returned false.
	ErrPaintRejected = errors.New("engine: painted vertex rejected")
	// ErrPaintFailed indicates the inpainter returned an error.
	ErrPaintFailed = errors.New("engine: paint failed")
	// ErrTerminated is returned by Step once the loop has terminated.
	ErrTerminated = errors.New("engine: loop terminated")
	// ErrNotInitialized is returned by Step before Initialize.
	ErrNotInitialized = errors.New("engine: loop not initialized")
	// ErrNilComponent indicates a nil queue, finder, inpainter or visitor.
	ErrNilComponent = errors.New("engine: nil component")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("engine: invalid option supplied")
)

// State is the lifecycle state of a Loop.
type State int

const (
	// Uninitialized: Initialize has not run yet.
	Uninitialized State = iota
	// Running: the queue is seeded and Step may be called.
	Running
	// Stopped: the iteration cap was reached.
	Stopped
	// Exhausted: the queue ran empty; every boundary vertex was filled.
	Exhausted
	// Failed: a fatal error ended the run.
	Failed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Running:
		return "running"
	case Stopped:
		return "stopped"
	case Exhausted:
		return "exhausted"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Terminated reports whether no further Step is possible.
func (s State) Terminated() bool { return s >= Stopped }

// Visitor receives every domain callback of the loop.
type Visitor[V comparable] interface {
	// InitializeVertex (re)builds the descriptor of v. The loop calls it for
	// every vertex in Initialize; visitors call it again for vertices a fill
	// affected.
	InitializeVertex(v V)
	// DiscoverVertex finalizes the descriptor of a freshly popped target.
	DiscoverVertex(target V)
	// PotentialMatchMade is called once the finder chose source for target.
	PotentialMatchMade(target, source V)
	// PaintVertex copies source content onto target.
	PaintVertex(target, source V)
	// AcceptPaintedVertex validates target after painting.
	AcceptPaintedVertex(target V) bool
	// FinishVertex commits an accepted fill.
	FinishVertex(target, source V)
}

// Queue yields boundary vertices, highest priority first.
type Queue[V comparable] interface {
	Pop() (v V, priority float64, ok bool)
}

// Finder picks the source vertex for target.
type Finder[V comparable] interface {
	Find(target V) (V, error)
}

// Inpainter copies source content onto target through vis.PaintVertex.
type Inpainter[V comparable] interface {
	Paint(target, source V, vis Visitor[V]) error
}

// Pair is the (target, source) couple used by one iteration.
type Pair[V comparable] struct {
	Target    V
	Source    V
	Priority  float64
	Iteration int
}

// Option configures a Loop. Invalid options are recorded and surfaced as
// ErrOptionViolation by New.
type Option func(*Options)

// Options holds the Loop settings.
type Options struct {
	// MaxIterations, if > 0, stops the loop after that many fills.
	MaxIterations int
	// Logger receives lifecycle and per-iteration events.
	Logger zerolog.Logger

	err error
}

// DefaultOptions returns no iteration cap and a silent logger.
func DefaultOptions() Options {
	return Options{MaxIterations: 0, Logger: zerolog.Nop()}
}

// WithMaxIterations caps the number of fills.
//
//	n > 0: stop after n fills
//	n == 0: no cap
//	n < 0: invalid → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithLogger sets the loop logger.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

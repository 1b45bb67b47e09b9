package engine

import (
	"context"
	"fmt"
	"iter"
)

// Loop is the generic fill loop.
type Loop[V comparable] struct {
	queue     Queue[V]
	finder    Finder[V]
	inpainter Inpainter[V]
	visitor   Visitor[V]
	opts      Options

	state State
	iter  int
	err   error
}

// New wires a loop. It returns ErrNilComponent for a missing collaborator and
// ErrOptionViolation for a bad option.
func New[V comparable](q Queue[V], f Finder[V], p Inpainter[V], vis Visitor[V], opts ...Option) (*Loop[V], error) {
	if q == nil || f == nil || p == nil || vis == nil {
		return nil, ErrNilComponent
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	return &Loop[V]{queue: q, finder: f, inpainter: p, visitor: vis, opts: o}, nil
}

// Initialize calls InitializeVertex for every vertex and moves the loop to
// Running. The visitor is expected to seed the queue with the boundary.
// Complexity: O(V) visitor calls.
func (l *Loop[V]) Initialize(vertices iter.Seq[V]) {
	n := 0
	for v := range vertices {
		l.visitor.InitializeVertex(v)
		n++
	}
	l.state = Running
	l.opts.Logger.Info().Int("vertices", n).Msg("fill loop initialized")
}

// State returns the current state.
func (l *Loop[V]) State() State { return l.state }

// Iterations returns the number of accepted fills so far.
func (l *Loop[V]) Iterations() int { return l.iter }

// Err returns the fatal error of a Failed loop, nil otherwise.
func (l *Loop[V]) Err() error { return l.err }

// Step runs one iteration. ok is false when the loop terminated successfully
// during this call (queue exhausted or iteration cap). A fatal condition moves
// the loop to Failed and is returned as err; calling Step on a terminated loop
// returns ErrTerminated.
func (l *Loop[V]) Step() (pair Pair[V], ok bool, err error) {
	switch {
	case l.state == Uninitialized:
		return pair, false, ErrNotInitialized
	case l.state.Terminated():
		return pair, false, fmt.Errorf("%w: %s", ErrTerminated, l.state)
	}
	if l.opts.MaxIterations > 0 && l.iter >= l.opts.MaxIterations {
		l.finish(Stopped)
		return pair, false, nil
	}

	// 1. Pop the next live target.
	target, priority, live := l.queue.Pop()
	if !live {
		l.finish(Exhausted)
		return pair, false, nil
	}

	// 2. Finalize its descriptor.
	l.visitor.DiscoverVertex(target)

	// 3. Find a source.
	source, err := l.finder.Find(target)
	if err != nil {
		return pair, false, l.fail(fmt.Errorf("%w %v: %w", ErrNoCandidatesFound, target, err))
	}
	l.visitor.PotentialMatchMade(target, source)

	// 4. Paint.
	if err = l.inpainter.Paint(target, source, l.visitor); err != nil {
		return pair, false, l.fail(fmt.Errorf("%w: %v from %v: %w", ErrPaintFailed, target, source, err))
	}

	// 5. Validate.
	if !l.visitor.AcceptPaintedVertex(target) {
		return pair, false, l.fail(fmt.Errorf("%w: %v from %v", ErrPaintRejected, target, source))
	}

	// 6. Commit.
	l.visitor.FinishVertex(target, source)
	l.iter++
	l.opts.Logger.Debug().
		Int("iteration", l.iter).
		Interface("target", target).
		Interface("source", source).
		Float64("priority", priority).
		Msg("filled")

	return Pair[V]{Target: target, Source: source, Priority: priority, Iteration: l.iter}, true, nil
}

// Run steps until the loop terminates or ctx is done, and returns the number
// of fills made by this call. ctx is checked between iterations only.
func (l *Loop[V]) Run(ctx context.Context) (int, error) {
	n := 0
	for {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		_, ok, err := l.Step()
		if err != nil {
			return n, err
		}
		if !ok {
			return n, nil
		}
		n++
	}
}

func (l *Loop[V]) finish(s State) {
	l.state = s
	l.opts.Logger.Info().Int("iterations", l.iter).Stringer("state", s).Msg("fill loop finished")
}

func (l *Loop[V]) fail(err error) error {
	l.state = Failed
	l.err = err
	l.opts.Logger.Warn().Err(err).Int("iterations", l.iter).Msg("fill loop failed")
	return err
}

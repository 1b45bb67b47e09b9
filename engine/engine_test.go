package engine_test

import (
	"bytes"
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/inpaint/engine"
	"github.com/katalvlaran/inpaint/frontier"
)

// line is a 1-D toy domain: cells are holes or valid values, a hole is on the
// boundary when a direct neighbor is valid, and a fill copies the value of
// the nearest valid cell.
type line struct {
	engine.NopVisitor[int]
	vals   []int
	hole   []bool
	queue  *frontier.Queue[int]
	reject bool
	events []string
}

func newLine(cells ...int) *line {
	l := &line{vals: cells, hole: make([]bool, len(cells))}
	for i, v := range cells {
		l.hole[i] = v < 0
	}
	l.queue = frontier.New[int](len(cells), func(i int) int { return i })
	return l
}

func (l *line) boundary(i int) bool {
	if i < 0 || i >= len(l.hole) || !l.hole[i] {
		return false
	}
	return (i > 0 && !l.hole[i-1]) || (i+1 < len(l.hole) && !l.hole[i+1])
}

func (l *line) InitializeVertex(i int) {
	if l.boundary(i) {
		_ = l.queue.Push(i, float64(i)) // rightmost first
	}
}

func (l *line) DiscoverVertex(i int) { l.events = append(l.events, "discover") }

func (l *line) PaintVertex(t, s int) {
	l.events = append(l.events, "paint")
	l.vals[t] = l.vals[s]
}

func (l *line) AcceptPaintedVertex(int) bool { return !l.reject }

func (l *line) FinishVertex(t, _ int) {
	l.events = append(l.events, "finish")
	l.hole[t] = false
	l.InitializeVertex(t - 1)
	l.InitializeVertex(t + 1)
}

func (l *line) holes() int {
	n := 0
	for _, h := range l.hole {
		if h {
			n++
		}
	}
	return n
}

func (l *line) Find(t int) (int, error) {
	for d := 1; d < len(l.hole); d++ {
		for _, s := range []int{t + d, t - d} {
			if s >= 0 && s < len(l.hole) && !l.hole[s] {
				return s, nil
			}
		}
	}
	return 0, errNoValid
}

func (l *line) Paint(t, s int, vis engine.Visitor[int]) error {
	vis.PaintVertex(t, s)
	return nil
}

var errNoValid = errors.New("no valid cell")

func newLoop(t *testing.T, l *line, opts ...engine.Option) *engine.Loop[int] {
	t.Helper()
	lp, err := engine.New[int](l.queue, l, l, l, opts...)
	require.NoError(t, err)
	return lp
}

func indices(n int) func(func(int) bool) {
	return slices.Values(seq(n))
}

func seq(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	return s
}

func TestLoop_FillsEveryHole(t *testing.T) {
	l := newLine(1, -1, -1, -1, -1, 9)
	lp := newLoop(t, l)
	lp.Initialize(indices(6))
	require.Equal(t, engine.Running, lp.State())

	before := l.holes()
	var pairs []engine.Pair[int]
	for {
		p, ok, err := lp.Step()
		require.NoError(t, err)
		if !ok {
			break
		}
		pairs = append(pairs, p)
		after := l.holes()
		assert.Equal(t, before-1, after, "one hole per fill")
		before = after
	}
	assert.Equal(t, engine.Exhausted, lp.State())
	assert.Zero(t, l.holes())
	assert.Equal(t, 4, lp.Iterations())
	assert.Equal(t, []int{9, 9, 9, 9}, l.vals[1:5], "rightmost boundary fills first")
	assert.Equal(t, 4, pairs[0].Target)
	assert.Equal(t, 5, pairs[0].Source)
	assert.Equal(t, 4, pairs[3].Iteration)

	_, _, err := lp.Step()
	assert.ErrorIs(t, err, engine.ErrTerminated)
}

func TestLoop_CallbackOrder(t *testing.T) {
	l := newLine(1, -1)
	lp := newLoop(t, l)
	lp.Initialize(indices(2))
	n, err := lp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, []string{"discover", "paint", "finish"}, l.events)
}

func TestLoop_NoCandidatesIsFatal(t *testing.T) {
	l := newLine(-1, -1)
	l.queue.Push(0, 1)
	lp := newLoop(t, l)
	lp.Initialize(indices(2))

	_, _, err := lp.Step()
	require.ErrorIs(t, err, engine.ErrNoCandidatesFound)
	assert.ErrorIs(t, err, errNoValid)
	assert.Equal(t, engine.Failed, lp.State())
	assert.Equal(t, err, lp.Err())
}

func TestLoop_RejectIsFatal(t *testing.T) {
	l := newLine(1, -1, -1)
	l.reject = true
	lp := newLoop(t, l)
	lp.Initialize(indices(3))

	_, err := lp.Run(context.Background())
	require.ErrorIs(t, err, engine.ErrPaintRejected)
	assert.Equal(t, engine.Failed, lp.State())
	assert.Equal(t, 2, l.holes(), "rejected fill is not committed")
}

func TestLoop_MaxIterations(t *testing.T) {
	l := newLine(1, -1, -1, -1, 2)
	lp := newLoop(t, l, engine.WithMaxIterations(2))
	lp.Initialize(indices(5))
	n, err := lp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, engine.Stopped, lp.State())
	assert.True(t, lp.State().Terminated())
	assert.Equal(t, 1, l.holes())
}

func TestLoop_CancelBetweenIterations(t *testing.T) {
	l := newLine(1, -1, -1)
	lp := newLoop(t, l)
	lp.Initialize(indices(3))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := lp.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, n)
	assert.Equal(t, engine.Running, lp.State(), "cancelled loop can resume")

	n, err = lp.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestLoop_Errors(t *testing.T) {
	l := newLine(1, -1)
	_, err := engine.New[int](nil, l, l, l)
	assert.ErrorIs(t, err, engine.ErrNilComponent)
	_, err = engine.New[int](l.queue, l, l, l, engine.WithMaxIterations(-1))
	assert.ErrorIs(t, err, engine.ErrOptionViolation)

	lp := newLoop(t, l)
	_, _, err = lp.Step()
	assert.ErrorIs(t, err, engine.ErrNotInitialized)
}

func TestLoop_Logs(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	l := newLine(1, -1)
	lp := newLoop(t, l, engine.WithLogger(log))
	lp.Initialize(indices(2))
	_, err := lp.Run(context.Background())
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `"message":"fill loop initialized"`)
	assert.Contains(t, out, `"message":"filled"`)
	assert.Contains(t, out, `"state":"exhausted"`)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "running", engine.Running.String())
	assert.Equal(t, "State(42)", engine.State(42).String())
	assert.False(t, engine.Running.Terminated())
	assert.True(t, engine.Failed.Terminated())
}

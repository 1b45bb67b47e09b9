package engine

import (
	"github.com/rs/zerolog"
)

// NopVisitor ignores every callback and accepts every paint. Embed it to
// implement only some callbacks.
type NopVisitor[V comparable] struct{}

func (NopVisitor[V]) InitializeVertex(V)         {}
func (NopVisitor[V]) DiscoverVertex(V)           {}
func (NopVisitor[V]) PotentialMatchMade(_, _ V)  {}
func (NopVisitor[V]) PaintVertex(_, _ V)         {}
func (NopVisitor[V]) AcceptPaintedVertex(V) bool { return true }
func (NopVisitor[V]) FinishVertex(_, _ V)        {}

// Composite forwards every callback to each visitor in order. A paint is
// accepted only if every visitor accepts it; all of them are asked.
type Composite[V comparable] []Visitor[V]

func (c Composite[V]) InitializeVertex(v V) {
	for _, vis := range c {
		vis.InitializeVertex(v)
	}
}

func (c Composite[V]) DiscoverVertex(v V) {
	for _, vis := range c {
		vis.DiscoverVertex(v)
	}
}

func (c Composite[V]) PotentialMatchMade(t, s V) {
	for _, vis := range c {
		vis.PotentialMatchMade(t, s)
	}
}

func (c Composite[V]) PaintVertex(t, s V) {
	for _, vis := range c {
		vis.PaintVertex(t, s)
	}
}

func (c Composite[V]) AcceptPaintedVertex(v V) bool {
	ok := true
	for _, vis := range c {
		ok = vis.AcceptPaintedVertex(v) && ok
	}
	return ok
}

func (c Composite[V]) FinishVertex(t, s V) {
	for _, vis := range c {
		vis.FinishVertex(t, s)
	}
}

// LoggingVisitor decorates Next, logging each callback at debug level and
// rejections at warn level.
type LoggingVisitor[V comparable] struct {
	Next Visitor[V]
	Log  zerolog.Logger
}

// NewLoggingVisitor wraps next.
func NewLoggingVisitor[V comparable](next Visitor[V], log zerolog.Logger) *LoggingVisitor[V] {
	return &LoggingVisitor[V]{Next: next, Log: log}
}

func (l *LoggingVisitor[V]) InitializeVertex(v V) {
	l.Log.Debug().Interface("vertex", v).Msg("initialize")
	l.Next.InitializeVertex(v)
}

func (l *LoggingVisitor[V]) DiscoverVertex(v V) {
	l.Log.Debug().Interface("target", v).Msg("discover")
	l.Next.DiscoverVertex(v)
}

func (l *LoggingVisitor[V]) PotentialMatchMade(t, s V) {
	l.Log.Debug().Interface("target", t).Interface("source", s).Msg("match")
	l.Next.PotentialMatchMade(t, s)
}

func (l *LoggingVisitor[V]) PaintVertex(t, s V) {
	l.Log.Debug().Interface("target", t).Interface("source", s).Msg("paint")
	l.Next.PaintVertex(t, s)
}

func (l *LoggingVisitor[V]) AcceptPaintedVertex(v V) bool {
	ok := l.Next.AcceptPaintedVertex(v)
	if !ok {
		l.Log.Warn().Interface("target", v).Msg("paint rejected")
	}
	return ok
}

func (l *LoggingVisitor[V]) FinishVertex(t, s V) {
	l.Log.Debug().Interface("target", t).Interface("source", s).Msg("finish")
	l.Next.FinishVertex(t, s)
}

package inpaint

import (
	"fmt"
	"image"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/inpaint/engine"
)

// ErrOptionViolation indicates an invalid Option.
var ErrOptionViolation = fmt.Errorf("%w: bad option", ErrBadConfig)

// Option configures an Inpainter beyond what Config serializes.
type Option func(*options)

type options struct {
	logger        zerolog.Logger
	maxIterations int
	visitors      []engine.Visitor[image.Point]
	logCallbacks  bool
	err           error
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithMaxIterations stops Run after n fills; 0 means no cap.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max iterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.maxIterations = n
	}
}

// WithVisitor adds v after the built-in patch visitor. v sees the initial
// pass and every loop callback.
func WithVisitor(v engine.Visitor[image.Point]) Option {
	return func(o *options) {
		if v != nil {
			o.visitors = append(o.visitors, v)
		}
	}
}

// WithCallbackLogging logs every visitor callback at debug level.
func WithCallbackLogging() Option {
	return func(o *options) { o.logCallbacks = true }
}

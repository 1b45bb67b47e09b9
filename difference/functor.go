package difference

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/inpaint/descriptor"
)

// Sentinel errors for difference functors.
var (
	// ErrInvalidDescriptorComparison is the panic payload for mismatched feature lengths.
	ErrInvalidDescriptorComparison = errors.New("difference: descriptor lengths differ")
	// ErrUnknownFunctor is returned by ByName for unregistered names.
	ErrUnknownFunctor = errors.New("difference: unknown functor")
)

// Functor scores how badly source would fill target. Lower is better;
// +Inf means "never select".
type Functor[D descriptor.Descriptor] interface {
	Difference(target, source D) float64
}

// Func adapts a plain function to Functor.
type Func[D descriptor.Descriptor] func(target, source D) float64

// Difference implements Functor.
func (f Func[D]) Difference(target, source D) float64 { return f(target, source) }

// excluded reports whether the pair must short-circuit to +Inf.
func excluded(a, b descriptor.Descriptor) bool {
	return a.Vertex() == b.Vertex() ||
		a.Status() == descriptor.Invalid ||
		b.Status() == descriptor.Invalid
}

// mustSameLength panics when two feature vectors cannot be compared.
func mustSameLength(a, b []float64) {
	if len(a) != len(b) {
		panic(fmt.Errorf("%w: %d vs %d", ErrInvalidDescriptorComparison, len(a), len(b)))
	}
}

var inf = math.Inf(1)

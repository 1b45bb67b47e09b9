package difference

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/inpaint/descriptor"
	"github.com/katalvlaran/inpaint/raster"
)

// PatchFunctor is a Functor over patch descriptors.
type PatchFunctor = Functor[*descriptor.Patch]

type patchFactory func(im *raster.Image, weights []float64) PatchFunctor

var patchFunctors = map[string]patchFactory{
	"sad":      func(im *raster.Image, _ []float64) PatchFunctor { return SumAbsolute{Image: im} },
	"mean-sad": func(im *raster.Image, _ []float64) PatchFunctor { return SumAbsolute{Image: im, Average: true} },
	"ssd":      func(im *raster.Image, _ []float64) PatchFunctor { return SumSquared{Image: im} },
	"mean-ssd": func(im *raster.Image, _ []float64) PatchFunctor { return SumSquared{Image: im, Average: true} },
	"mean-color": func(im *raster.Image, w []float64) PatchFunctor {
		return MeanColor{Image: im, Weights: w}
	},
	"isophote-angle": func(im *raster.Image, _ []float64) PatchFunctor { return IsophoteAngle{Image: im} },
}

// ByName returns the registered patch functor called name.
// weights is only used by "mean-color" and must match im.Channels when set.
func ByName(name string, im *raster.Image, weights []float64) (PatchFunctor, error) {
	mk, ok := patchFunctors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFunctor, name)
	}
	if weights != nil && len(weights) != im.Channels {
		return nil, fmt.Errorf("%w: %d weights for %d channels", ErrInvalidDescriptorComparison, len(weights), im.Channels)
	}
	return mk(im, weights), nil
}

// Names lists the registered patch functor names in sorted order.
func Names() []string {
	names := make([]string, 0, len(patchFunctors))
	for n := range patchFunctors {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

package inpaint

import (
	"context"
	"errors"
	"fmt"
	"image"
	"iter"

	"github.com/katalvlaran/inpaint/descriptor"
	"github.com/katalvlaran/inpaint/engine"
	"github.com/katalvlaran/inpaint/frontier"
	"github.com/katalvlaran/inpaint/gridgraph"
	"github.com/katalvlaran/inpaint/painter"
	"github.com/katalvlaran/inpaint/priority"
	"github.com/katalvlaran/inpaint/raster"
)

// Sentinel errors of the facade.
var (
	// ErrNilInput indicates a nil image or mask.
	ErrNilInput = errors.New("inpaint: nil image or mask")
	// ErrSizeMismatch indicates image and mask dimensions differ.
	ErrSizeMismatch = errors.New("inpaint: image and mask sizes differ")
	// ErrUnreachableHoles indicates the boundary ran out while hole pixels
	// remained, e.g. holes enclosed by indeterminate pixels.
	ErrUnreachableHoles = errors.New("inpaint: holes left unreachable")
)

// Inpainter holds the state of one inpainting run.
type Inpainter struct {
	cfg     Config
	opts    options
	im      *raster.Image
	mask    *gridgraph.Mask
	visitor *patchVisitor
	matcher *matcher
	loop    *engine.Loop[image.Point]
}

// New prepares a run over copies of img and mask, seeding the boundary queue.
// The mask keeps its own sentinels and connectivity; Config's mask fields
// only apply to FromImages.
func New(img *raster.Image, mask *gridgraph.Mask, cfg Config, opts ...Option) (*Inpainter, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if img == nil || mask == nil {
		return nil, ErrNilInput
	}
	if img.Width != mask.Width || img.Height != mask.Height {
		return nil, fmt.Errorf("%w: image %dx%d, mask %dx%d",
			ErrSizeMismatch, img.Width, img.Height, mask.Width, mask.Height)
	}

	im, m := img.Clone(), mask.Clone()
	fill := cfg.Fill()

	prio, err := priority.ByName(cfg.PriorityFunction, m, im, priority.Options{
		PatchHalfWidth: cfg.PatchHalfWidth,
		BlurVariance:   cfg.BlurVariance,
		DepthChannel:   cfg.DepthChannel,
		DepthThreshold: cfg.DepthThreshold,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	pnt, err := painter.ByName(cfg.Painter, m, fill, cfg.PatchHalfWidth)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	patches := descriptor.NewStore[*descriptor.Patch](m.Width, m.Height)
	match, err := newMatcher(cfg, im, patches)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadConfig, err)
	}
	queue := frontier.New[image.Point](m.Width*m.Height, func(p image.Point) int {
		if !m.Contains(p) {
			return -1
		}
		return m.Index(p)
	})

	pv := &patchVisitor{
		mask:      m,
		im:        im,
		patches:   patches,
		prio:      prio,
		queue:     queue,
		matcher:   match,
		hw:        cfg.PatchHalfWidth,
		fill:      fill,
		threshold: cfg.AcceptanceThreshold,
		isSource:  make([]bool, m.Width*m.Height),
		holes:     m.HoleCount(),
	}
	var vis engine.Visitor[image.Point] = pv
	if len(o.visitors) > 0 {
		vis = append(engine.Composite[image.Point]{pv}, o.visitors...)
	}
	if o.logCallbacks {
		vis = engine.NewLoggingVisitor(vis, o.logger)
	}
	pv.reinit = vis.InitializeVertex

	loop, err := engine.New[image.Point](queue, match, patchPainter{painter: pnt, patches: patches}, vis,
		engine.WithMaxIterations(o.maxIterations),
		engine.WithLogger(o.logger),
	)
	if err != nil {
		return nil, err
	}
	loop.Initialize(pixels(m.Width, m.Height))

	o.logger.Info().
		Int("width", m.Width).
		Int("height", m.Height).
		Int("holes", pv.holes).
		Int("boundary", queue.Len()).
		Int("sources", len(match.sources)).
		Str("priority", cfg.PriorityFunction).
		Strs("functors", cfg.DifferenceFunctors).
		Msg("inpainting initialized")

	return &Inpainter{cfg: cfg, opts: o, im: im, mask: m, visitor: pv, matcher: match, loop: loop}, nil
}

// FromImages converts img to a three-channel raster and mask to a Mask using
// Config's sentinels and connectivity, then calls New.
func FromImages(img, mask image.Image, cfg Config, opts ...Option) (*Inpainter, error) {
	if img == nil || mask == nil {
		return nil, ErrNilInput
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	im, err := raster.FromImage(img)
	if err != nil {
		return nil, err
	}
	m, err := gridgraph.FromImage(mask, cfg.GridOptions())
	if err != nil {
		return nil, err
	}
	return New(im, m, cfg, opts...)
}

// pixels yields every pixel of a w×h grid, row-major.
func pixels(w, h int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if !yield(image.Pt(x, y)) {
					return
				}
			}
		}
	}
}

// Iterate performs exactly one fill. ok is false once the run has ended;
// err reports fatal failures (no candidates, rejected paint) and holes left
// behind when the boundary ran out.
func (ip *Inpainter) Iterate() (pair engine.Pair[image.Point], ok bool, err error) {
	pair, ok, err = ip.loop.Step()
	if err == nil && !ok {
		err = ip.leftover()
	}
	return pair, ok, err
}

// Run fills until the hole is gone, the iteration cap is hit, a fatal error
// occurs, or ctx is done. It returns the number of fills made by this call.
func (ip *Inpainter) Run(ctx context.Context) (int, error) {
	n, err := ip.loop.Run(ctx)
	if err == nil {
		err = ip.leftover()
	}
	return n, err
}

func (ip *Inpainter) leftover() error {
	if ip.loop.State() != engine.Exhausted || ip.visitor.holes == 0 {
		return nil
	}
	ip.opts.logger.Warn().Int("holes", ip.visitor.holes).Msg("boundary exhausted with holes left")
	return fmt.Errorf("%w: %d pixels", ErrUnreachableHoles, ip.visitor.holes)
}

// OutputImage renders the current working image.
func (ip *Inpainter) OutputImage() *image.NRGBA { return ip.im.ToNRGBA() }

// Raster returns a copy of the current working image with every channel.
func (ip *Inpainter) Raster() *raster.Image { return ip.im.Clone() }

// MaskImage renders the current mask.
func (ip *Inpainter) MaskImage() *image.Gray { return ip.mask.ToImage() }

// PotentialCandidatePairs returns the ranked candidates of the most recent
// iteration, best first. Empty unless Config.RecordCandidates > 0.
func (ip *Inpainter) PotentialCandidatePairs() []CandidatePair {
	out := make([]CandidatePair, len(ip.matcher.last))
	copy(out, ip.matcher.last)
	return out
}

// Boundary returns the current fill front in row-major order. It is the set
// of pixels the queue holds as live targets.
func (ip *Inpainter) Boundary() []image.Point { return ip.mask.FindBoundary() }

// RemainingHoles returns the number of hole pixels left.
func (ip *Inpainter) RemainingHoles() int { return ip.visitor.holes }

// Iterations returns the number of accepted fills.
func (ip *Inpainter) Iterations() int { return ip.loop.Iterations() }

// State returns the loop state.
func (ip *Inpainter) State() engine.State { return ip.loop.State() }

// Err returns the fatal error of a failed run.
func (ip *Inpainter) Err() error { return ip.loop.Err() }

// Config returns the configuration of the run.
func (ip *Inpainter) Config() Config { return ip.cfg }

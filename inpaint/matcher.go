package inpaint

import (
	"image"

	"github.com/katalvlaran/inpaint/descriptor"
	"github.com/katalvlaran/inpaint/difference"
	"github.com/katalvlaran/inpaint/nnsearch"
	"github.com/katalvlaran/inpaint/raster"
)

// CandidatePair is one ranked (target, source) candidate of an iteration.
type CandidatePair struct {
	Target image.Point
	Source image.Point
	Score  float64
}

// matcher implements engine.Finder over the current source patches.
type matcher struct {
	im      *raster.Image
	patches *descriptor.Store[*descriptor.Patch]
	search  nnsearch.Searcher[*descriptor.Patch]
	trees   []*nnsearch.KDTree[*descriptor.Patch]
	full    []image.Point
	record  int

	sources []*descriptor.Patch
	last    []CandidatePair
	best    float64
}

// newMatcher builds one stage per configured functor. Non-final stages keep
// StageK candidates; the final stage keeps RecordCandidates (at least one).
func newMatcher(cfg Config, im *raster.Image, patches *descriptor.Store[*descriptor.Patch]) (*matcher, error) {
	m := &matcher{im: im, patches: patches, record: cfg.RecordCandidates}
	hw := cfg.PatchHalfWidth
	for y := -hw; y <= hw; y++ {
		for x := -hw; x <= hw; x++ {
			m.full = append(m.full, image.Pt(x, y))
		}
	}

	ks := cfg.StageKs()
	names := cfg.DifferenceFunctors
	stages := make([]nnsearch.Searcher[*descriptor.Patch], 0, len(names))
	for i, name := range names {
		final := i == len(names)-1
		k := max(1, cfg.RecordCandidates)
		if !final {
			k = ks[i]
		}
		if name == KDTreeColor {
			tree, err := nnsearch.NewKDTree(nil, k, m.colorFeature)
			if err != nil {
				return nil, err
			}
			m.trees = append(m.trees, tree)
			stages = append(stages, tree)
			continue
		}
		f, err := difference.ByName(name, im, nil)
		if err != nil {
			return nil, err
		}
		if final && cfg.RecordCandidates == 0 {
			stages = append(stages, nnsearch.Linear[*descriptor.Patch]{Functor: f})
		} else {
			stages = append(stages, nnsearch.KNN[*descriptor.Patch]{Functor: f, K: k})
		}
	}
	if len(stages) == 1 {
		m.search = stages[0]
	} else {
		m.search = &nnsearch.Staged[*descriptor.Patch]{Stages: stages}
	}
	return m, nil
}

// colorFeature is the per-channel mean over the target's valid offsets, or
// over the whole support for sources.
func (m *matcher) colorFeature(p *descriptor.Patch) []float64 {
	if p.State == descriptor.Target {
		return difference.ChannelMeans(m.im, p.Center, p.ValidOffsets)
	}
	return difference.ChannelMeans(m.im, p.Center, m.full)
}

// addSource registers a patch that just became a source.
func (m *matcher) addSource(p *descriptor.Patch) {
	m.sources = append(m.sources, p)
	for _, t := range m.trees {
		t.Insert(p)
	}
}

// Find implements engine.Finder.
func (m *matcher) Find(target image.Point) (image.Point, error) {
	m.last = m.last[:0]
	matches, err := m.search.Search(m.patches.Get(target), m.sources)
	if err != nil {
		return image.Point{}, err
	}
	m.best = matches[0].Score
	for i, match := range matches {
		if i == m.record {
			break
		}
		m.last = append(m.last, CandidatePair{Target: target, Source: match.Item.Center, Score: match.Score})
	}
	return matches[0].Item.Center, nil
}

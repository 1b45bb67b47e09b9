package nnsearch

import (
	"fmt"

	"github.com/katalvlaran/inpaint/descriptor"
)

// Staged runs its stages in order; stage i+1 only sees stage i's output.
// The typical three-step pipeline is KNN(cheap) → KNN(exact) → Linear(exact).
type Staged[D descriptor.Descriptor] struct {
	Stages []Searcher[D]
}

// NewThreeStep builds the coarse → fine → best pipeline.
func NewThreeStep[D descriptor.Descriptor](coarse, fine, best Searcher[D]) *Staged[D] {
	return &Staged[D]{Stages: []Searcher[D]{coarse, fine, best}}
}

// Search implements Searcher. The result is the last stage's ranking.
func (s *Staged[D]) Search(target D, candidates []D) ([]Match[D], error) {
	if len(s.Stages) == 0 {
		return nil, ErrNoStages
	}
	pool := candidates
	var out []Match[D]
	for i, st := range s.Stages {
		m, err := st.Search(target, pool)
		if err != nil {
			return nil, fmt.Errorf("stage %d: %w", i+1, err)
		}
		if len(m) == 0 {
			return nil, fmt.Errorf("stage %d: %w", i+1, ErrNoCandidatesFound)
		}
		out = m
		pool = Items(m)
	}
	return out, nil
}

package nnsearch

import (
	"math"
	"sort"

	"github.com/katalvlaran/inpaint/descriptor"
	"github.com/katalvlaran/inpaint/difference"
)

// FindBest returns the candidate with the smallest finite difference to target.
// The first candidate wins a tie.
// Complexity: O(C·F).
func FindBest[D descriptor.Descriptor](target D, candidates []D, f difference.Functor[D]) (Match[D], error) {
	best := Match[D]{Score: math.Inf(1)}
	found := false
	for _, c := range candidates {
		if c.Status() != descriptor.Source {
			continue
		}
		s := f.Difference(target, c)
		if math.IsInf(s, 1) || math.IsNaN(s) {
			continue
		}
		if !found || s < best.Score {
			best = Match[D]{Item: c, Score: s}
			found = true
		}
	}
	if !found {
		return Match[D]{}, ErrNoCandidatesFound
	}
	return best, nil
}

// FindKNN returns up to k candidates with the smallest finite differences,
// sorted ascending; equal scores keep candidate order.
// Complexity: O(C·F + C log C).
func FindKNN[D descriptor.Descriptor](target D, candidates []D, k int, f difference.Functor[D]) ([]Match[D], error) {
	if k <= 0 {
		return nil, ErrBadK
	}
	scored := make([]Match[D], 0, len(candidates))
	for _, c := range candidates {
		if c.Status() != descriptor.Source {
			continue
		}
		s := f.Difference(target, c)
		if math.IsInf(s, 1) || math.IsNaN(s) {
			continue
		}
		scored = append(scored, Match[D]{Item: c, Score: s})
	}
	if len(scored) == 0 {
		return nil, ErrNoCandidatesFound
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].Score < scored[j].Score })
	if len(scored) > k {
		scored = scored[:k]
	}
	return scored, nil
}

// Linear is a Searcher returning the single best candidate.
type Linear[D descriptor.Descriptor] struct {
	Functor difference.Functor[D]
}

// Search implements Searcher.
func (l Linear[D]) Search(target D, candidates []D) ([]Match[D], error) {
	m, err := FindBest(target, candidates, l.Functor)
	if err != nil {
		return nil, err
	}
	return []Match[D]{m}, nil
}

// KNN is a Searcher returning the K best candidates.
type KNN[D descriptor.Descriptor] struct {
	Functor difference.Functor[D]
	K       int
}

// Search implements Searcher.
func (n KNN[D]) Search(target D, candidates []D) ([]Match[D], error) {
	return FindKNN(target, candidates, n.K, n.Functor)
}

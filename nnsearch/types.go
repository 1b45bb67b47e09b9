package nnsearch

import (
	"errors"

	"github.com/katalvlaran/inpaint/descriptor"
)

// Sentinel errors for nearest-neighbor search.
var (
	// ErrNoCandidatesFound indicates no eligible source survived a search stage.
	ErrNoCandidatesFound = errors.New("nnsearch: no candidates found")
	// ErrBadK indicates a non-positive neighbor count.
	ErrBadK = errors.New("nnsearch: k must be positive")
	// ErrNoStages indicates a Staged search without stages.
	ErrNoStages = errors.New("nnsearch: staged search needs at least one stage")
)

// Match is one ranked candidate.
type Match[D descriptor.Descriptor] struct {
	Item  D
	Score float64
}

// Searcher ranks candidates for target, best first.
type Searcher[D descriptor.Descriptor] interface {
	Search(target D, candidates []D) ([]Match[D], error)
}

// Items strips the scores from matches, keeping their order.
func Items[D descriptor.Descriptor](matches []Match[D]) []D {
	out := make([]D, len(matches))
	for i, m := range matches {
		out[i] = m.Item
	}
	return out
}

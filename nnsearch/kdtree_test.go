package nnsearch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/inpaint/descriptor"
	"github.com/katalvlaran/inpaint/nnsearch"
)

func inf() float64 { return math.Inf(1) }

func values(d fv) []float64 { return d.Values }

func TestKDTree_MatchesLinearKNN(t *testing.T) {
	var cands []fv
	for x := 1; x <= 40; x++ {
		cands = append(cands, vec(x, descriptor.Source, float64((x*37)%41), float64((x*11)%13)))
	}
	target := vec(0, descriptor.Target, 20, 6)

	tree, err := nnsearch.NewKDTree(cands[:25], 5, values)
	require.NoError(t, err)
	for _, c := range cands[25:] {
		tree.Insert(c)
	}
	assert.Equal(t, 40, tree.Len())

	got, err := tree.Search(target, nil)
	require.NoError(t, err)
	require.Len(t, got, 5)

	// Brute force reference in squared Euclidean distance.
	want, err := nnsearch.FindKNN[fv](target, cands, 5, sqEuclid{})
	require.NoError(t, err)
	for i := range want {
		assert.Equal(t, want[i].Score, got[i].Score, "rank %d", i)
	}
	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Score, got[i].Score)
	}
}

func TestKDTree_FiltersSelfAndNonSource(t *testing.T) {
	self := vec(0, descriptor.Target, 1)
	tree, err := nnsearch.NewKDTree([]fv{
		self,
		vec(1, descriptor.Invalid, 1),
		vec(2, descriptor.Source, 3),
	}, 2, values)
	require.NoError(t, err)

	got, err := tree.Search(self, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Item.Coord.X)
	assert.Equal(t, 4.0, got[0].Score)
}

func TestKDTree_Empty(t *testing.T) {
	tree, err := nnsearch.NewKDTree[fv](nil, 3, values)
	require.NoError(t, err)
	_, err = tree.Search(vec(0, descriptor.Target, 1), nil)
	assert.ErrorIs(t, err, nnsearch.ErrNoCandidatesFound)

	tree.Insert(vec(4, descriptor.Source, 2))
	got, err := tree.Search(vec(0, descriptor.Target, 1), nil)
	require.NoError(t, err)
	assert.Equal(t, 4, got[0].Item.Coord.X)

	_, err = nnsearch.NewKDTree[fv](nil, 0, values)
	assert.ErrorIs(t, err, nnsearch.ErrBadK)
}

type sqEuclid struct{}

func (sqEuclid) Difference(a, b fv) float64 {
	var s float64
	for i := range a.Values {
		d := a.Values[i] - b.Values[i]
		s += d * d
	}
	return s
}

// byX prefers candidates with a small X coordinate.
type byX struct{}

func (byX) Difference(_, b fv) float64 { return float64(b.Coord.X) }

func TestKDTree_LaterStageRanksOnlyThePool(t *testing.T) {
	cands := []fv{
		vec(1, descriptor.Source, 100),
		vec(2, descriptor.Source, 200),
		vec(3, descriptor.Source, 1),
	}
	tree, err := nnsearch.NewKDTree(cands, 1, values)
	require.NoError(t, err)

	s := &nnsearch.Staged[fv]{Stages: []nnsearch.Searcher[fv]{
		nnsearch.KNN[fv]{Functor: byX{}, K: 2},
		tree,
	}}
	got, err := s.Search(vec(0, descriptor.Target, 0), cands)
	require.NoError(t, err)
	require.Len(t, got, 1)
	// x=3 is nearest overall but the first stage dropped it.
	assert.Equal(t, 1, got[0].Item.Coord.X)
	assert.Equal(t, 10000.0, got[0].Score)
}

func TestKDTree_FullPoolUsesIndex(t *testing.T) {
	cands := []fv{
		vec(1, descriptor.Source, 100),
		vec(2, descriptor.Source, 1),
	}
	tree, err := nnsearch.NewKDTree(cands, 1, values)
	require.NoError(t, err)

	got, err := tree.Search(vec(0, descriptor.Target, 0), cands)
	require.NoError(t, err)
	assert.Equal(t, 2, got[0].Item.Coord.X)
	assert.Equal(t, 1.0, got[0].Score)
}

func TestKDTree_PoolTiesKeepPoolOrder(t *testing.T) {
	tree, err := nnsearch.NewKDTree([]fv{
		vec(1, descriptor.Source, 5),
		vec(2, descriptor.Source, 5),
		vec(3, descriptor.Source, 5),
	}, 2, values)
	require.NoError(t, err)

	pool := []fv{vec(3, descriptor.Source, 5), vec(1, descriptor.Source, 5)}
	got, err := tree.Search(vec(0, descriptor.Target, 0), pool)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 3, got[0].Item.Coord.X)
	assert.Equal(t, 1, got[1].Item.Coord.X)
}

package nnsearch

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/inpaint/descriptor"
)

// KDTree indexes candidates by a numeric feature for approximate coarse search.
//
// Searching the whole index uses the tree. When Search is handed a narrower
// pool, such as an earlier stage's output, it ranks only that pool by the
// same feature distance. Items are expected to stay eligible once inserted;
// ineligible items are still filtered on the way out.
type KDTree[D descriptor.Descriptor] struct {
	feature func(D) []float64
	k       int
	tree    *kdtree.Tree
	seq     int
}

// NewKDTree builds a tree over initial, balanced by median partitioning.
// feature must return vectors of one fixed length for every item.
func NewKDTree[D descriptor.Descriptor](initial []D, k int, feature func(D) []float64) (*KDTree[D], error) {
	if k <= 0 {
		return nil, ErrBadK
	}
	t := &KDTree[D]{feature: feature, k: k}
	pts := make(points[D], 0, len(initial))
	for _, d := range initial {
		pts = append(pts, t.point(d))
	}
	t.tree = kdtree.New(pts, false)
	return t, nil
}

// Insert adds d to the index.
// Complexity: O(log n) average; insertion order does not rebalance.
func (t *KDTree[D]) Insert(d D) {
	t.tree.Insert(t.point(d), false)
}

// Len returns the number of indexed items.
func (t *KDTree[D]) Len() int { return t.tree.Count }

// Search implements Searcher: the k nearest items to target's feature by
// squared Euclidean distance.
//
// A nil pool, or one as large as the index, means every indexed item and is
// answered by the tree; among the kept items equal distances keep insertion
// order, but which of many tied items are kept follows tree traversal.
// A smaller pool is scanned linearly and ties keep pool order.
func (t *KDTree[D]) Search(target D, candidates []D) ([]Match[D], error) {
	if candidates != nil && len(candidates) < t.tree.Count {
		return t.scan(target, candidates)
	}
	if t.tree.Count == 0 {
		return nil, ErrNoCandidatesFound
	}
	// One extra slot, in case target itself is indexed.
	keep := kdtree.NewNKeeper(t.k + 1)
	t.tree.NearestSet(keep, point[D]{vals: t.feature(target)})

	found := make([]point[D], 0, len(keep.Heap))
	dists := make(map[int]float64, len(keep.Heap))
	for _, cd := range keep.Heap {
		if cd.Comparable == nil {
			continue
		}
		p := cd.Comparable.(point[D])
		if p.item.Status() != descriptor.Source || p.item.Vertex() == target.Vertex() {
			continue
		}
		found = append(found, p)
		dists[p.seq] = cd.Dist
	}
	if len(found) == 0 {
		return nil, ErrNoCandidatesFound
	}
	sort.Slice(found, func(i, j int) bool {
		di, dj := dists[found[i].seq], dists[found[j].seq]
		if di != dj {
			return di < dj
		}
		return found[i].seq < found[j].seq
	})
	if len(found) > t.k {
		found = found[:t.k]
	}
	out := make([]Match[D], len(found))
	for i, p := range found {
		out[i] = Match[D]{Item: p.item, Score: dists[p.seq]}
	}
	return out, nil
}

// scan ranks pool by feature distance to target.
// Complexity: O(n log n) for n = len(pool).
func (t *KDTree[D]) scan(target D, pool []D) ([]Match[D], error) {
	q := point[D]{vals: t.feature(target)}
	var out []Match[D]
	for _, c := range pool {
		if c.Status() != descriptor.Source || c.Vertex() == target.Vertex() {
			continue
		}
		d := q.Distance(point[D]{vals: t.feature(c)})
		if math.IsNaN(d) || math.IsInf(d, 1) {
			continue
		}
		out = append(out, Match[D]{Item: c, Score: d})
	}
	if len(out) == 0 {
		return nil, ErrNoCandidatesFound
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score < out[j].Score })
	if len(out) > t.k {
		out = out[:t.k]
	}
	return out, nil
}

func (t *KDTree[D]) point(d D) point[D] {
	t.seq++
	return point[D]{vals: t.feature(d), item: d, seq: t.seq}
}

// point is one indexed feature vector.
type point[D descriptor.Descriptor] struct {
	vals []float64
	item D
	seq  int
}

// Compare implements kdtree.Comparable.
func (p point[D]) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	return p.vals[d] - c.(point[D]).vals[d]
}

// Dims implements kdtree.Comparable.
func (p point[D]) Dims() int { return len(p.vals) }

// Distance implements kdtree.Comparable: squared Euclidean distance.
func (p point[D]) Distance(c kdtree.Comparable) float64 {
	q := c.(point[D])
	var sum float64
	for i, v := range p.vals {
		d := v - q.vals[i]
		sum += d * d
	}
	return sum
}

// points implements kdtree.Interface.
type points[D descriptor.Descriptor] []point[D]

func (p points[D]) Index(i int) kdtree.Comparable { return p[i] }
func (p points[D]) Len() int                      { return len(p) }
func (p points[D]) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// Pivot partitions p around the median along d.
func (p points[D]) Pivot(d kdtree.Dim) int {
	pl := plane[D]{points: p, dim: d}
	return kdtree.Partition(pl, kdtree.MedianOfMedians(pl))
}

// plane sorts points along one dimension.
type plane[D descriptor.Descriptor] struct {
	points points[D]
	dim    kdtree.Dim
}

func (p plane[D]) Len() int { return len(p.points) }
func (p plane[D]) Less(i, j int) bool {
	return p.points[i].vals[p.dim] < p.points[j].vals[p.dim]
}
func (p plane[D]) Swap(i, j int) { p.points[i], p.points[j] = p.points[j], p.points[i] }
func (p plane[D]) Slice(start, end int) kdtree.SortSlicer {
	return plane[D]{points: p.points[start:end], dim: p.dim}
}

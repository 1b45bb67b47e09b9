package frontier

import (
	"container/heap"
	"errors"
)

// ErrBadIndex indicates an indexer returned a value outside [0, n).
var ErrBadIndex = errors.New("frontier: vertex index out of range")

// Queue is a lazy max-priority queue of vertices of type V.
// index maps a vertex to a dense slot in [0, n).
type Queue[V any] struct {
	index    func(V) int
	boundary []bool
	version  []uint32
	items    itemHeap[V]
	seq      uint64
	live     int
}

// New returns an empty queue over n vertex slots.
func New[V any](n int, index func(V) int) *Queue[V] {
	return &Queue[V]{
		index:    index,
		boundary: make([]bool, n),
		version:  make([]uint32, n),
	}
}

// Push inserts v with the given priority, flags it as boundary, and makes
// every older entry of v stale.
// Complexity: O(log N).
func (q *Queue[V]) Push(v V, priority float64) error {
	i, err := q.slot(v)
	if err != nil {
		return err
	}
	if !q.boundary[i] {
		q.live++
	}
	q.boundary[i] = true
	q.version[i]++
	q.seq++
	heap.Push(&q.items, &item[V]{
		vertex:   v,
		slot:     i,
		priority: priority,
		version:  q.version[i],
		seq:      q.seq,
	})
	return nil
}

// Pop removes and returns the highest-priority vertex that is still flagged
// as boundary, discarding stale entries on the way. ok is false once no live
// entry is left. The returned vertex is no longer flagged as boundary.
func (q *Queue[V]) Pop() (v V, priority float64, ok bool) {
	for q.items.Len() > 0 {
		it := heap.Pop(&q.items).(*item[V])
		if !q.boundary[it.slot] || it.version != q.version[it.slot] {
			continue
		}
		q.boundary[it.slot] = false
		q.live--
		return it.vertex, it.priority, true
	}
	var zero V
	return zero, 0, false
}

// Peek returns the highest-priority live vertex without removing it.
func (q *Queue[V]) Peek() (v V, priority float64, ok bool) {
	for q.items.Len() > 0 {
		it := q.items[0]
		if q.boundary[it.slot] && it.version == q.version[it.slot] {
			return it.vertex, it.priority, true
		}
		heap.Pop(&q.items)
	}
	var zero V
	return zero, 0, false
}

// Remove clears the boundary flag of v; its queued entries become stale.
// Complexity: O(1).
func (q *Queue[V]) Remove(v V) error {
	i, err := q.slot(v)
	if err != nil {
		return err
	}
	if q.boundary[i] {
		q.boundary[i] = false
		q.live--
	}
	return nil
}

// IsBoundary reports whether v is currently flagged as boundary.
func (q *Queue[V]) IsBoundary(v V) bool {
	i, err := q.slot(v)
	return err == nil && q.boundary[i]
}

// Len returns the number of distinct live vertices.
func (q *Queue[V]) Len() int { return q.live }

// Entries returns the number of heap entries, live or stale.
func (q *Queue[V]) Entries() int { return q.items.Len() }

// Empty reports whether no live vertex is queued.
func (q *Queue[V]) Empty() bool { return q.live == 0 }

func (q *Queue[V]) slot(v V) (int, error) {
	i := q.index(v)
	if i < 0 || i >= len(q.boundary) {
		return 0, ErrBadIndex
	}
	return i, nil
}

// item is one heap entry.
type item[V any] struct {
	vertex   V
	slot     int
	priority float64
	version  uint32
	seq      uint64
}

// itemHeap is a max-heap ordered by priority, then by push order.
type itemHeap[V any] []*item[V]

// Len returns the number of entries in the heap.
func (h itemHeap[V]) Len() int { return len(h) }

// Less orders higher priority first; ties pop in push order.
func (h itemHeap[V]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority > h[j].priority
	}
	return h[i].seq < h[j].seq
}

// Swap swaps two elements in the heap.
func (h itemHeap[V]) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *item[V].
func (h *itemHeap[V]) Push(x any) { *h = append(*h, x.(*item[V])) }

// Pop removes and returns the last element.
// Called by heap.Pop after moving the top element to the end.
func (h *itemHeap[V]) Pop() any {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*h = old[:n-1]
	return it
}

// Package frontier implements the boundary priority queue of the fill loop:
// a max-priority binary heap of vertices with lazy invalidation.
//
// Pushing a vertex that is already queued does not remove the older entry;
// instead every push bumps a per-vertex version and sets its boundary flag.
// Pop discards entries whose vertex is no longer flagged as boundary, or
// whose version is older than the latest push, until a live entry is found or
// the heap is empty. This avoids an O(n) removal on every fill.
//
// Complexity:
//
//   - Push:   O(log N)
//   - Pop:    O(k log N), k = stale entries discarded on the way
//   - Remove, IsBoundary: O(1)
//   - Memory: O(V + pushes)
//
// Equal priorities pop in push order (FIFO) so runs are deterministic.
package frontier

// Package nnsearch finds the source descriptors that best match a fill target.
//
// What:
//
//   - FindBest: argmin of a difference.Functor over a candidate slice.
//   - FindKNN:  the k smallest-difference candidates, ties kept in candidate
//     order (stable).
//   - Linear, KNN: the same two scans as Searcher values.
//   - KDTree: an incrementally built k-d tree (gonum spatial/kdtree) over a
//     numeric feature of each candidate, for cheap coarse filtering.
//   - Staged: chains Searchers so each stage only ranks the previous stage's
//     output (coarse → fine → best).
//
// Guarantees:
//
//   - A candidate whose Status is not descriptor.Source is never returned.
//   - A candidate scored +Inf (self match, invalid pair) is never returned.
//   - An empty result from any stage fails with ErrNoCandidatesFound.
//
// Complexity:
//
//   - FindBest: O(C·F), C = candidates, F = functor cost.
//   - FindKNN:  O(C·F + C log C).
//   - KDTree:   Insert O(log n) average, Search O(log n + k) average.
package nnsearch

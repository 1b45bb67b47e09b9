// Package engine runs the fill loop of exemplar inpainting, independent of
// what a vertex is.
//
// The loop knows nothing about pixels, images or colors. Everything domain
// specific is plugged in:
//
//   - Queue:     yields the next boundary vertex (highest priority first).
//   - Finder:    picks the source vertex for a target.
//   - Inpainter: copies source content onto the target, calling
//     Visitor.PaintVertex per copied vertex.
//   - Visitor:   builds descriptors, validates paints, updates the frontier.
//
// One iteration (Step):
//
//  1. Pop the next live target. Empty queue → Exhausted (success).
//  2. DiscoverVertex(target).
//  3. Find a source. Failure → Failed, ErrNoCandidatesFound.
//  4. PotentialMatchMade(target, source), then Paint.
//  5. AcceptPaintedVertex(target) false → Failed, ErrPaintRejected.
//  6. FinishVertex(target, source).
//
// States:
//
//	Uninitialized ──Initialize──▶ Running ──Step──▶ Running
//	                                 │
//	                                 ├─▶ Exhausted (queue empty, success)
//	                                 ├─▶ Stopped   (iteration cap, success)
//	                                 └─▶ Failed    (fatal error)
//
// Cancellation is cooperative: Run checks ctx between iterations and never
// aborts one midway. A cancelled Run leaves the loop Running, so it can be
// resumed.
//
// The loop is single-threaded; none of its types are safe for concurrent use.
package engine

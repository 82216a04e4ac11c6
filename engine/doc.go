// Package engine implements the dynamic single-source shortest-path tree:
// the authoritative distance/parent arrays, the full-Dijkstra baseline, and
// the three-phase batched incremental update (first-order effects → Csr
// rebuild → level-synchronous propagation → tree reindex) described for
// the dynamic SSSP engine.
//
// An Engine owns an edgeset.EdgeSet (mutated only inside ApplyChanges,
// under a single mutex) and derives a fresh csr.Csr snapshot once per
// batch. Phase A (first-order effects) and Phase C (propagation) are
// data-parallel over a worker pool; Phase B (Csr rebuild) and Phase D
// (tree reindex) are single-threaded global barriers between them.
//
// Concurrency model: dist cells are updated with a lock-free compare-and-
// swap loop (tryRelax), with parent written by a plain atomic store right
// after a winning CAS — the (dist, parent) pair is not updated atomically
// together, so a parent pointer may briefly lag a newer dist, which the
// next propagation round's fixpoint check corrects; affected/valid are
// int32 flag cells written to a constant, so races on them are benign by
// construction. See ApplyChanges in batch.go for the worker-pool wiring
// (golang.org/x/sync/errgroup).
package engine

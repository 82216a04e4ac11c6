// Package dynamicsssp is the root of a dynamic single-source shortest-path
// engine: given an undirected, positively-weighted graph and a stream of
// batched edge insertions and deletions, it keeps a shortest-path tree from
// a fixed source up to date without recomputing from scratch.
//
// The engine is organized under four subpackages:
//
//	edgeset/   — the mutable, lazily-compacted live edge set
//	csr/       — the immutable compressed-sparse-row graph snapshot
//	treeindex/ — a child-list view over a parent-pointer array, for subtree
//	             invalidation without a doubly-linked node graph
//	engine/    — Initialise (full Dijkstra) and ApplyChanges (the
//	             three-phase incremental update: first-order effects,
//	             snapshot rebuild, level-synchronous propagation)
//
// cmd/dynsssp is a driver that loads an edge-list dataset, runs an initial
// shortest-path computation from the highest-degree vertex, applies a
// synthetic batch of edits, and records the batch's wall-clock time.
package dynamicsssp

// Package csr implements an immutable compressed-sparse-row snapshot of an
// undirected weighted graph: three parallel arrays (offset, neighbor,
// weight) that support O(1) access to a vertex's adjacency range and O(deg)
// iteration over it.
//
// A Csr is built once from a live edgeset.EdgeSet (FromEdgeSet) and is
// read-only for the rest of its life; LoadEdgeList reads an edge-list file
// into such an EdgeSet. For each undirected edge {u, v, w} the snapshot stores both
// arcs (u→v, w) and (v→u, w); self-loops contribute only once. Neighbor
// order within a vertex's adjacency range is unspecified — callers must not
// depend on it.
package csr

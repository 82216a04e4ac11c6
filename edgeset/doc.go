// Package edgeset implements the mutable set of undirected weighted edges
// that backs a dynamic shortest-path graph.
//
// An EdgeSet canonicalizes every edge under the key (min(u,v), max(u,v)),
// de-duplicates on insert, and removes in O(1) by dropping the key from a
// membership index without compacting the underlying ordered sequence.
// The ordered sequence may therefore carry stale (removed) entries between
// snapshots; Each walks only the membership index, so the next CSR build
// never sees them.
//
// This two-structure design amortizes Remove to O(1) at the cost of
// keeping stale entries in the ordered sequence, which is never compacted.
package edgeset

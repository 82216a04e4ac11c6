package csr

import "github.com/AAA-1010/dynamic-sssp-update/edgeset"

// FromEdgeSet builds an immutable Csr snapshot from the live edges of es.
// n is the number of vertices; callers pass es.MaxVertexID()+1 (or larger,
// if new vertices should be reserved ahead of any edge touching them).
//
// Construction is a single-threaded three-pass counting sort: compute
// per-vertex degree, prefix-sum into Offset, then scatter Neighbor/Weight
// using a cursor copy of Offset. Self-loops contribute one arc, not two.
//
// Complexity: O(n + m) time and space.
func FromEdgeSet(es *edgeset.EdgeSet, n int) *Csr {
	degree := make([]int, n)
	es.Each(func(u, v int, w float64) {
		degree[u]++
		if u != v {
			degree[v]++
		}
	})

	offset := make([]int, n+1)
	for i := 0; i < n; i++ {
		offset[i+1] = offset[i] + degree[i]
	}

	neighbor := make([]int, offset[n])
	weight := make([]float64, offset[n])
	cursor := make([]int, n)
	copy(cursor, offset)

	es.Each(func(u, v int, w float64) {
		neighbor[cursor[u]] = v
		weight[cursor[u]] = w
		cursor[u]++
		if u != v {
			neighbor[cursor[v]] = u
			weight[cursor[v]] = w
			cursor[v]++
		}
	})

	return &Csr{
		n:        n,
		Offset:   offset,
		Neighbor: neighbor,
		Weight:   weight,
	}
}

package engine

import (
	"container/heap"

	"github.com/AAA-1010/dynamic-sssp-update/csr"
	"github.com/AAA-1010/dynamic-sssp-update/treeindex"
)

// Initialise performs a full Dijkstra from source over a fresh Csr snapshot
// of the current EdgeSet: it sets dist/parent, clears affected, sets
// valid=1 for every vertex, and rebuilds the TreeIndex. Runs in
// O((n+m) log n) using a lazy-deletion binary heap, mirroring the
// container/heap min-priority-queue pattern.
//
// Returns ErrSourceOutOfRange if source is negative or source >= the
// EdgeSet's current vertex range.
func (e *Engine) Initialise(source int) error {
	n := e.edges.MaxVertexID() + 1
	if source < 0 || source >= n {
		return ErrSourceOutOfRange
	}

	e.graph = csr.FromEdgeSet(e.edges, n)
	e.resize(n)

	for v := 0; v < e.n; v++ {
		e.setDist(v, Inf)
		e.setParent(v, None)
		e.setAffected(v, false)
		e.setValid(v, true)
	}
	e.setDist(source, 0)

	pq := make(nodePQ, 0, n)
	heap.Init(&pq)
	heap.Push(&pq, &nodeItem{id: source, dist: 0})

	visited := make([]bool, n)
	for pq.Len() > 0 {
		item := heap.Pop(&pq).(*nodeItem)
		u, d := item.id, item.dist

		if visited[u] {
			continue // stale lazy-deleted entry
		}
		if d != e.distAt(u) {
			continue // superseded by a better entry pushed later
		}
		visited[u] = true

		neighbors, weights := e.graph.Neighbors(u)
		for i, v := range neighbors {
			w := weights[i]
			nd := d + w
			if nd < e.distAt(v) {
				e.setDist(v, nd)
				e.setParent(v, u)
				heap.Push(&pq, &nodeItem{id: v, dist: nd})
			}
		}
	}

	e.tree = treeindex.Build(e.Parent())

	return nil
}

// nodeItem represents a vertex and its current distance from the source,
// as stored in the priority queue that orders vertices by increasing
// distance.
type nodeItem struct {
	id   int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending, using the
// lazy-decrease-key pattern: pushing a new entry for an improved distance
// rather than mutating an existing heap position, and skipping stale
// entries on pop via the visited check in Initialise.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

package engine

import (
	"runtime"
	"sync/atomic"

	"github.com/AAA-1010/dynamic-sssp-update/csr"
	"github.com/AAA-1010/dynamic-sssp-update/treeindex"
	"golang.org/x/sync/errgroup"
)

// chunkSize bounds how many batch events or vertices a single worker task
// processes before yielding back to the pool. Coarse enough to amortize
// goroutine scheduling, fine enough to balance skewed adjacency ranges.
const chunkSize = 256

// Workers is the fixed worker-pool size used to parallelize Phase A and
// Phase C. It defaults to the host's CPU count; tests may lower it to
// exercise contention with fewer goroutines, since the algorithm's
// correctness does not depend on the degree of parallelism.
var Workers = runtime.NumCPU()

// ApplyChanges consumes an ordered batch of change events and mutates the
// engine in place until every invariant of the shortest-path tree is
// re-established, following the three-phase incremental update:
//
//   - Phase A (first-order effects): data-parallel over batch events.
//     Inserts mutate the EdgeSet (serialized) and attempt to relax both
//     directions; deletions mutate the EdgeSet (serialized) and, if the
//     edge was a tree edge, invalidate the subtree rooted at its deeper
//     endpoint using the stale, pre-batch TreeIndex. After Phase A, every
//     invalidated vertex's subtree in the current parent array is
//     invalidated as well.
//   - Phase B (Csr rebuild): single-threaded snapshot of the mutated
//     EdgeSet; serves as the barrier between Phase A and Phase C.
//   - Phase C (propagation): level-synchronous relaxation rounds over
//     every affected vertex until a round produces no relaxation. Each
//     affected vertex is marked valid, relaxes from its neighbors into
//     itself, then relaxes from itself into its neighbors.
//   - Phase D (tree reindex): rebuild the TreeIndex from the final parent
//     array.
//
// An empty batch is a no-op. ApplyChanges must not be called concurrently
// with itself or with Initialise on the same Engine.
func (e *Engine) ApplyChanges(batch []Change, source int) error {
	if source < 0 {
		return ErrSourceOutOfRange
	}
	if len(batch) == 0 {
		return nil
	}

	maxVertex := e.n - 1
	for _, ch := range batch {
		if ch.Op != OpInsert {
			continue // deletions never add vertices
		}
		if ch.U > maxVertex {
			maxVertex = ch.U
		}
		if ch.V > maxVertex {
			maxVertex = ch.V
		}
	}
	if source > maxVertex {
		maxVertex = source
	}
	e.resize(maxVertex + 1)

	staleTree := e.tree
	if staleTree == nil {
		staleTree = treeindex.Build(e.Parent())
	}

	if err := e.phaseA(batch, staleTree); err != nil {
		return err
	}

	// A Phase A insert may have re-parented a vertex onto one that a later
	// deletion in the same batch invalidated; detach those subtrees too.
	current := treeindex.Build(e.Parent())
	for v := 0; v < e.n; v++ {
		if !e.isValid(v) {
			e.invalidateSubtree(current, v)
		}
	}

	e.phaseB()

	e.phaseC()

	e.phaseD()

	return nil
}

// phaseA applies first-order effects in parallel over the batch.
func (e *Engine) phaseA(batch []Change, staleTree *treeindex.TreeIndex) error {
	g := newGroup()

	for lo := 0; lo < len(batch); lo += chunkSize {
		hi := lo + chunkSize
		if hi > len(batch) {
			hi = len(batch)
		}
		lo, hi := lo, hi
		g.Go(func() error {
			for _, ch := range batch[lo:hi] {
				e.applyFirstOrderEffect(ch, staleTree)
			}

			return nil
		})
	}

	return g.Wait()
}

func (e *Engine) applyFirstOrderEffect(ch Change, staleTree *treeindex.TreeIndex) {
	switch ch.Op {
	case OpInsert:
		e.edgesMu.Lock()
		present := e.edges.Has(ch.U, ch.V)
		err := e.edges.Add(ch.U, ch.V, ch.W)
		e.edgesMu.Unlock()
		if err != nil || present {
			return // negative weight or already present: nothing added, so nothing to relax
		}

		e.tryRelax(ch.U, ch.V, ch.W)
		e.tryRelax(ch.V, ch.U, ch.W)

	case OpDelete:
		e.edgesMu.Lock()
		e.edges.Remove(ch.U, ch.V)
		e.edgesMu.Unlock()

		if ch.U >= e.n || ch.V >= e.n {
			return // an endpoint outside the tracked range is not on the tree
		}
		if e.parentAt(ch.U) == ch.V {
			e.invalidateSubtree(staleTree, ch.U)
		} else if e.parentAt(ch.V) == ch.U {
			e.invalidateSubtree(staleTree, ch.V)
		}
	}
}

// invalidateSubtree detaches every vertex in the subtree rooted at root
// (root included), using the pre-batch TreeIndex: valid:=0, affected:=1,
// dist:=+Inf, parent:=None.
func (e *Engine) invalidateSubtree(staleTree *treeindex.TreeIndex, root int) {
	for _, v := range staleTree.Subtree(root) {
		e.setValid(v, false)
		e.setAffected(v, true)
		e.setDist(v, Inf)
		e.setParent(v, None)
	}
}

// phaseB rebuilds the Csr snapshot from the mutated EdgeSet. Single-threaded;
// the global barrier between Phase A and Phase C.
func (e *Engine) phaseB() {
	e.graph = csr.FromEdgeSet(e.edges, e.n)
}

// phaseC runs level-synchronous propagation rounds until a round relaxes
// nothing. Each affected vertex is marked valid, pulls from its neighbors,
// then pushes to them.
func (e *Engine) phaseC() {
	for {
		var any atomic.Bool
		g := newGroup()

		for lo := 0; lo < e.n; lo += chunkSize {
			hi := lo + chunkSize
			if hi > e.n {
				hi = e.n
			}
			lo, hi := lo, hi
			g.Go(func() error {
				for u := lo; u < hi; u++ {
					if !e.isAffected(u) {
						continue
					}
					e.setAffected(u, false)
					e.setValid(u, true)

					neighbors, weights := e.graph.Neighbors(u)
					// Pull: an invalidated u reattaches through any valid
					// neighbor, even one that is not itself affected.
					for i, v := range neighbors {
						if e.tryRelax(v, u, weights[i]) {
							any.Store(true)
						}
					}
					// Push: propagate u's distance to its neighbors.
					for i, v := range neighbors {
						if e.tryRelax(u, v, weights[i]) {
							any.Store(true)
						}
					}
				}

				return nil
			})
		}
		_ = g.Wait()

		if !any.Load() {
			break
		}
	}
}

// phaseD rebuilds the TreeIndex from the final parent array.
func (e *Engine) phaseD() {
	e.tree = treeindex.Build(e.Parent())
}

// tryRelax attempts relaxation x→y with weight w: if valid[x] and
// dist[x]+w < dist[y], it sets dist[y] via compare-and-swap, then writes
// parent[y] and affected[y] unconditionally. The CAS retry loop handles
// concurrent writers to dist[y]; a failed CAS re-reads and re-checks rather
// than giving up, so a relaxation is never lost to a benign race.
func (e *Engine) tryRelax(x, y int, w float64) bool {
	if !e.isValid(x) {
		return false
	}

	for {
		dx := e.distAt(x)
		dy := e.distAt(y)
		nd := dx + w
		if nd >= dy {
			return false
		}
		if e.casDist(y, dy, nd) {
			e.setParent(y, x)
			e.setAffected(y, true)

			return true
		}
		// dist[y] changed under us; loop and re-check against the new value.
	}
}

// newGroup returns a worker-pool errgroup capped at Workers concurrent
// goroutines.
func newGroup() *errgroup.Group {
	g := &errgroup.Group{}
	if Workers > 0 {
		g.SetLimit(Workers)
	}

	return g
}

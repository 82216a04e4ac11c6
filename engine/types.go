package engine

import (
	"math"
	"sync"
	"sync/atomic"

	"github.com/AAA-1010/dynamic-sssp-update/csr"
	"github.com/AAA-1010/dynamic-sssp-update/edgeset"
	"github.com/AAA-1010/dynamic-sssp-update/treeindex"
)

// None marks the absence of a parent (the source, or an invalidated /
// unreachable vertex).
const None = treeindex.None

// Inf is the positive-infinity distance sentinel for unreachable vertices.
var Inf = math.Inf(1)

// Op identifies the kind of change event in a batch.
type Op int

const (
	// OpInsert adds (or no-ops on) an edge.
	OpInsert Op = iota
	// OpDelete removes (or no-ops on) an edge.
	OpDelete
)

// Change is one event in an incremental update batch. W is ignored for
// OpDelete; use NewInsert/NewDelete to build events unambiguously.
type Change struct {
	Op Op
	U  int
	V  int
	W  float64
}

// NewInsert builds an Insert(u, v, w) change event.
func NewInsert(u, v int, w float64) Change {
	return Change{Op: OpInsert, U: u, V: v, W: w}
}

// NewDelete builds a Delete(u, v) change event.
func NewDelete(u, v int) Change {
	return Change{Op: OpDelete, U: u, V: v}
}

// Engine holds the authoritative shortest-path tree state: the mutable
// EdgeSet, the current Csr snapshot, the dist/parent/affected/valid arrays,
// and a TreeIndex over parent.
//
// dist is stored as raw float64 bit patterns so relaxation can use a
// lock-free compare-and-swap (sync/atomic has no native float64 CAS); parent
// is updated with a plain atomic store immediately after a winning CAS on
// dist, matching the race model: a parent pointer may briefly refer to a
// stale-but-still-valid predecessor, which the next propagation round's
// fixpoint check corrects. affected/valid are single-flag int32 cells
// written to a constant, so concurrent writes are benign by construction.
//
// It is not safe to call ApplyChanges concurrently with itself or with
// Initialise on the same Engine — batches must be totally ordered by the
// caller.
type Engine struct {
	edgesMu sync.Mutex // guards EdgeSet mutation during Phase A
	edges   *edgeset.EdgeSet
	graph   *csr.Csr

	n        int
	distBits []uint64 // atomic: math.Float64bits(dist[v])
	parent   []int64  // atomic
	affected []int32  // atomic, 0 or 1
	valid    []int32  // atomic, 0 or 1

	tree *treeindex.TreeIndex
}

// New constructs an Engine bound to es. It allocates all per-vertex arrays
// sized to the EdgeSet's current vertex range but does not compute
// distances — call Initialise before reading Dist/Parent.
func New(es *edgeset.EdgeSet) *Engine {
	e := &Engine{edges: es}
	e.resize(es.MaxVertexID() + 1)

	return e
}

// resize grows every per-vertex array up to n, preserving existing entries.
// New vertices appear with dist=+Inf, parent=None, affected=0, valid=1.
// Callers must hold edgesMu or otherwise guarantee no concurrent access to
// the arrays being replaced (resize is only invoked at phase barriers, never
// while workers are mid-phase).
func (e *Engine) resize(n int) {
	if n <= e.n {
		return
	}

	nextDist := make([]uint64, n)
	copy(nextDist, e.distBits)
	for i := len(e.distBits); i < n; i++ {
		nextDist[i] = math.Float64bits(Inf)
	}

	nextParent := make([]int64, n)
	copy(nextParent, e.parent)
	for i := len(e.parent); i < n; i++ {
		nextParent[i] = None
	}

	nextAffected := make([]int32, n)
	copy(nextAffected, e.affected)

	nextValid := make([]int32, n)
	copy(nextValid, e.valid)
	for i := len(e.valid); i < n; i++ {
		nextValid[i] = 1
	}

	e.distBits = nextDist
	e.parent = nextParent
	e.affected = nextAffected
	e.valid = nextValid
	e.n = n
}

// N returns the number of vertices currently tracked by the engine.
func (e *Engine) N() int {
	return e.n
}

func (e *Engine) distAt(v int) float64 {
	return math.Float64frombits(atomic.LoadUint64(&e.distBits[v]))
}

func (e *Engine) setDist(v int, d float64) {
	atomic.StoreUint64(&e.distBits[v], math.Float64bits(d))
}

// casDist attempts to set dist[v] to next, succeeding only if the current
// value still equals old (read moments earlier by the caller).
func (e *Engine) casDist(v int, old, next float64) bool {
	return atomic.CompareAndSwapUint64(&e.distBits[v], math.Float64bits(old), math.Float64bits(next))
}

func (e *Engine) parentAt(v int) int {
	return int(atomic.LoadInt64(&e.parent[v]))
}

func (e *Engine) setParent(v, p int) {
	atomic.StoreInt64(&e.parent[v], int64(p))
}

func (e *Engine) isAffected(v int) bool {
	return atomic.LoadInt32(&e.affected[v]) == 1
}

func (e *Engine) setAffected(v int, on bool) {
	var x int32
	if on {
		x = 1
	}
	atomic.StoreInt32(&e.affected[v], x)
}

func (e *Engine) isValid(v int) bool {
	return atomic.LoadInt32(&e.valid[v]) == 1
}

func (e *Engine) setValid(v int, on bool) {
	var x int32
	if on {
		x = 1
	}
	atomic.StoreInt32(&e.valid[v], x)
}

// Dist returns a read-only snapshot of the current distance array.
func (e *Engine) Dist() []float64 {
	out := make([]float64, e.n)
	for i := range out {
		out[i] = e.distAt(i)
	}

	return out
}

// Parent returns a read-only snapshot of the current parent array.
func (e *Engine) Parent() []int {
	out := make([]int, e.n)
	for i := range out {
		out[i] = e.parentAt(i)
	}

	return out
}

// Graph returns the Csr snapshot the current dist/parent arrays were
// computed against.
func (e *Engine) Graph() *csr.Csr {
	return e.graph
}

package treeindex

// TreeIndex is a child-list view of a parent array, rebuilt on demand.
type TreeIndex struct {
	ChildHead []int // ChildHead[u] = first child of u, or None
	NextSib   []int // NextSib[v] = next sibling of v under the same parent, or None
}

// Build constructs a TreeIndex from parent, where parent[v] is the parent
// of v or None for the root / unreachable vertices.
//
// Complexity: O(n).
func Build(parent []int) *TreeIndex {
	n := len(parent)
	ti := &TreeIndex{
		ChildHead: make([]int, n),
		NextSib:   make([]int, n),
	}
	for i := 0; i < n; i++ {
		ti.ChildHead[i] = None
		ti.NextSib[i] = None
	}

	for v := 0; v < n; v++ {
		p := parent[v]
		if p == None {
			continue
		}
		ti.NextSib[v] = ti.ChildHead[p]
		ti.ChildHead[p] = v
	}

	return ti
}

// Children returns the direct children of u.
func (ti *TreeIndex) Children(u int) []int {
	var out []int
	for c := ti.ChildHead[u]; c != None; c = ti.NextSib[c] {
		out = append(out, c)
	}

	return out
}

// Subtree returns every vertex in the subtree rooted at root, root included,
// via an iterative pre-order walk (no recursion, so depth is bounded only by
// available memory, not the call stack).
func (ti *TreeIndex) Subtree(root int) []int {
	stack := []int{root}
	var out []int
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, u)
		for c := ti.ChildHead[u]; c != None; c = ti.NextSib[c] {
			stack = append(stack, c)
		}
	}

	return out
}

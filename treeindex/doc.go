// Package treeindex builds a child-list view of a parent-pointer array so
// subtrees of the shortest-path tree can be enumerated without a doubly
// linked node graph.
//
// Two index arrays, ChildHead and NextSib, let the children of vertex u be
// walked as ChildHead[u], NextSib[ChildHead[u]], and so on until NONE. This
// avoids cyclic ownership and stays cache-friendly; it is rebuilt from
// scratch (a single linear pass) whenever the parent array changes shape.
package treeindex

// None marks the absence of a parent, child, or sibling.
const None = -1

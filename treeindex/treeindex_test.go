package treeindex_test

import (
	"testing"

	"github.com/AAA-1010/dynamic-sssp-update/treeindex"
	"github.com/stretchr/testify/assert"
)

func TestBuildAndChildren(t *testing.T) {
	// Tree: 0 -> 1, 0 -> 2, 1 -> 3
	parent := []int{treeindex.None, 0, 0, 1}
	ti := treeindex.Build(parent)

	assert.ElementsMatch(t, []int{1, 2}, ti.Children(0))
	assert.ElementsMatch(t, []int{3}, ti.Children(1))
	assert.Empty(t, ti.Children(3))
}

func TestSubtreeIncludesRootAndDescendants(t *testing.T) {
	// Tree: 0 -> 1, 1 -> 2, 1 -> 3, 3 -> 4
	parent := []int{treeindex.None, 0, 1, 1, 3}
	ti := treeindex.Build(parent)

	assert.ElementsMatch(t, []int{1, 2, 3, 4}, ti.Subtree(1))
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, ti.Subtree(0))
	assert.ElementsMatch(t, []int{4}, ti.Subtree(4))
}

package csr_test

import (
	"os"
	"testing"

	"github.com/AAA-1010/dynamic-sssp-update/csr"
	"github.com/AAA-1010/dynamic-sssp-update/edgeset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEdgeSetBuildsSymmetricAdjacency(t *testing.T) {
	es := edgeset.New()
	require.NoError(t, es.Add(0, 1, 1))
	require.NoError(t, es.Add(1, 2, 1))
	require.NoError(t, es.Add(2, 3, 1))

	g := csr.FromEdgeSet(es, es.MaxVertexID()+1)

	assert.Equal(t, 4, g.N())
	assert.Equal(t, 3, g.M())
	assert.Equal(t, []int{0, 1, 3, 5, 6}, g.Offset)

	nbrs, _ := g.Neighbors(1)
	assert.ElementsMatch(t, []int{0, 2}, nbrs)
}

func TestFromEdgeSetSelfLoopSingleArc(t *testing.T) {
	es := edgeset.New()
	require.NoError(t, es.Add(0, 0, 1))

	g := csr.FromEdgeSet(es, 1)
	assert.Equal(t, 1, g.Degree(0))
}

func TestHighestDegreeVertex(t *testing.T) {
	es := edgeset.New()
	require.NoError(t, es.Add(0, 1, 1))
	require.NoError(t, es.Add(0, 2, 1))
	require.NoError(t, es.Add(0, 3, 1))

	g := csr.FromEdgeSet(es, es.MaxVertexID()+1)
	assert.Equal(t, 0, g.HighestDegreeVertex())
}

func TestLoadEdgeListSkipsCommentsAndHeader(t *testing.T) {
	input := "# comment\nsrc dst\n0 1\n1,2\n2 3 2.5\n"
	es, err := loadFromString(t, input)
	require.NoError(t, err)

	assert.Equal(t, 3, es.Len())
	w, ok := es.Weight(2, 3)
	require.True(t, ok)
	assert.Equal(t, 2.5, w)
}

func TestLoadEdgeListOneBased(t *testing.T) {
	input := "1 2\n2 3\n"
	es, err := loadFromStringOpts(t, input, csr.WithOneBased(true))
	require.NoError(t, err)

	assert.True(t, es.Has(0, 1))
	assert.True(t, es.Has(1, 2))
}

func TestLoadEdgeListMalformedLineFails(t *testing.T) {
	input := "0 1\nnot-a-number garbage too\n"
	_, err := loadFromString(t, input)
	assert.ErrorIs(t, err, csr.ErrMalformedLine)
}

func TestLoadEdgeListMissingFile(t *testing.T) {
	_, err := csr.LoadEdgeList("/nonexistent/path/to/edges.txt")
	assert.ErrorIs(t, err, csr.ErrInputNotFound)
}

// loadFromString writes input to a temp file and loads it, so tests can
// exercise the real LoadEdgeList path (and its I/O error handling) without
// duplicating the parser.
func loadFromString(t *testing.T, input string) (*edgeset.EdgeSet, error) {
	t.Helper()

	return loadFromStringOpts(t, input)
}

func loadFromStringOpts(t *testing.T, input string, opts ...csr.LoadOption) (*edgeset.EdgeSet, error) {
	t.Helper()

	path := t.TempDir() + "/edges.txt"
	require.NoError(t, os.WriteFile(path, []byte(input), 0o644))

	return csr.LoadEdgeList(path, opts...)
}

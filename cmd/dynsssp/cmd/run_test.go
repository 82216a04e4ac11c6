package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AAA-1010/dynamic-sssp-update/edgeset"
	"github.com/AAA-1010/dynamic-sssp-update/engine"
)

func TestExtractPath(t *testing.T) {
	es := edgeset.New()
	require.NoError(t, es.Add(0, 1, 1))
	require.NoError(t, es.Add(1, 2, 1))
	require.NoError(t, es.Add(2, 3, 1))

	eng := engine.New(es)
	require.NoError(t, eng.Initialise(0))

	assert.Equal(t, []int{0, 1, 2, 3}, extractPath(eng, 0, 3))
	assert.Equal(t, []int{0}, extractPath(eng, 0, 0))
}

func TestExtractPathUnreachable(t *testing.T) {
	es := edgeset.New()
	require.NoError(t, es.Add(0, 1, 1))
	require.NoError(t, es.Add(2, 3, 1))

	eng := engine.New(es)
	require.NoError(t, eng.Initialise(0))

	assert.Nil(t, extractPath(eng, 0, 3))
}

func TestPickTarget(t *testing.T) {
	es := edgeset.New()
	require.NoError(t, es.Add(0, 1, 1))
	require.NoError(t, es.Add(1, 2, 1))
	require.NoError(t, es.Add(2, 3, 1))

	eng := engine.New(es)
	require.NoError(t, eng.Initialise(0))

	target, dist := pickTarget(eng, 0, 2)
	assert.Equal(t, 3, target)
	assert.Equal(t, 3.0, dist)
}

func TestSynthesizeBatchIsDeterministicForSeed(t *testing.T) {
	a := synthesizeBatch(50, 200, 42)
	b := synthesizeBatch(50, 200, 42)

	require.Len(t, a, 200)
	assert.Equal(t, a, b)
}

func TestWriteResultRowWritesHeaderOnce(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")

	require.NoError(t, writeResultRow(path, resultRow{Dataset: "grqc", BatchSize: 10, TimeMs: 1.5, Version: "test"}))
	require.NoError(t, writeResultRow(path, resultRow{Dataset: "grqc", BatchSize: 20, TimeMs: 2.5, Version: "test"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := splitLines(string(data))
	require.Len(t, lines, 3)
	assert.Equal(t, "dataset,batch_size,time_ms,version", lines[0])
	assert.Equal(t, "grqc,10,1.5,test", lines[1])
	assert.Equal(t, "grqc,20,2.5,test", lines[2])
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return lines
}

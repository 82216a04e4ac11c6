package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "dynsssp.yaml")
	content := `
dataset:
  path: ./data/roadNet-CA.edgelist
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "./data/roadNet-CA.edgelist", cfg.Dataset.Path)
	assert.False(t, cfg.Dataset.OneBased)
	assert.Equal(t, "dev", cfg.Dataset.Version)
	assert.Equal(t, 15000, cfg.Batch.Size)
	assert.Equal(t, int64(123), cfg.Batch.Seed)
	assert.Equal(t, 5.0, cfg.Target.MinDistance)
	assert.Equal(t, "results.csv", cfg.Results.CSVPath)
}

func TestLoad_CustomValues(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "dynsssp.yaml")
	content := `
dataset:
  path: ./data/grqc.edgelist
  one_based: true
  version: v2-parallel
batch:
  size: 500
  seed: 7
target:
  min_distance: 2.5
results:
  csv_path: out/results.csv
`
	require.NoError(t, os.WriteFile(configFile, []byte(content), 0644))

	cfg, err := Load(configFile)
	require.NoError(t, err)

	assert.Equal(t, "./data/grqc.edgelist", cfg.Dataset.Path)
	assert.True(t, cfg.Dataset.OneBased)
	assert.Equal(t, "v2-parallel", cfg.Dataset.Version)
	assert.Equal(t, 500, cfg.Batch.Size)
	assert.Equal(t, int64(7), cfg.Batch.Seed)
	assert.Equal(t, 2.5, cfg.Target.MinDistance)
	assert.Equal(t, "out/results.csv", cfg.Results.CSVPath)
}

func TestLoad_MissingDatasetPath(t *testing.T) {
	dir := t.TempDir()
	configFile := filepath.Join(dir, "dynsssp.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("batch:\n  size: 10\n"), 0644))

	_, err := Load(configFile)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "dataset.path is required")
}

func TestLoad_ExplicitFileNotFoundIsError(t *testing.T) {
	// An explicitly named config file that cannot be read is a hard error,
	// unlike an absent file on the default search path.
	_, err := Load("/nonexistent/path/dynsssp.yaml")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "read config")
}

func TestValidate_ZeroBatchSize(t *testing.T) {
	cfg := &Config{}
	cfg.Dataset.Path = "x.edgelist"
	cfg.Batch.Size = 0

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "batch.size must be positive")
}

func TestValidate_NegativeMinDistance(t *testing.T) {
	cfg := &Config{}
	cfg.Dataset.Path = "x.edgelist"
	cfg.Batch.Size = 1
	cfg.Target.MinDistance = -1

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "min_distance must be non-negative")
}

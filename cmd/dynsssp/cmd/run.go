package cmd

import (
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/AAA-1010/dynamic-sssp-update/csr"
	"github.com/AAA-1010/dynamic-sssp-update/engine"
	"github.com/AAA-1010/dynamic-sssp-update/internal/config"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Load a dataset, apply a synthetic batch, and record timing",
	Example: `  # Run against roadNet-CA with defaults from ./dynsssp.yaml
  ` + `dynsssp run

  # Override the dataset and batch size on the command line
  dynsssp run --dataset ./data/grqc.edgelist --batch-size 500`,
	RunE: runRun,
}

var (
	flagDataset     string
	flagOneBased    bool
	flagVersion     string
	flagBatchSize   int
	flagSeed        int64
	flagMinDistance float64
	flagResultsCSV  string
)

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&flagDataset, "dataset", "", "Edge-list dataset path (overrides config)")
	runCmd.Flags().BoolVar(&flagOneBased, "one-based", false, "Dataset vertex ids start at 1")
	runCmd.Flags().StringVar(&flagVersion, "tag", "", "Version tag recorded in the results CSV")
	runCmd.Flags().IntVar(&flagBatchSize, "batch-size", 0, "Number of random insert/delete events to apply")
	runCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed for batch synthesis")
	runCmd.Flags().Float64Var(&flagMinDistance, "min-distance", 0, "Minimum baseline distance for target-vertex selection")
	runCmd.Flags().StringVar(&flagResultsCSV, "results", "", "Results CSV path (overrides config)")
}

func runRun(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlagOverrides(cfg, cmd)

	log := GetLogger()
	log.Printf("=== Dynamic SSSP driver ===")

	edges, err := csr.LoadEdgeList(cfg.Dataset.Path, csr.WithOneBased(cfg.Dataset.OneBased))
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	n := edges.MaxVertexID() + 1
	snapshot := csr.FromEdgeSet(edges, n)
	vn, m := snapshot.Stats()
	log.Printf("Graph: n=%d, m=%d edges", vn, m)

	source := snapshot.HighestDegreeVertex()
	if source < 0 {
		return fmt.Errorf("dataset %s has no vertices", cfg.Dataset.Path)
	}
	log.Printf("Source vertex = %d (degree %d)", source, snapshot.Degree(source))

	eng := engine.New(edges)
	if err := eng.Initialise(source); err != nil {
		return fmt.Errorf("initialise: %w", err)
	}

	target, baseline := pickTarget(eng, source, cfg.Target.MinDistance)
	if target == source {
		return fmt.Errorf("%w: no vertex at distance >= %g found; adjust target.min_distance",
			engine.ErrConfigInvalid, cfg.Target.MinDistance)
	}

	log.Printf("Baseline: dist = %g", baseline)
	log.Printf("  path: %v", extractPath(eng, source, target))

	batch := synthesizeBatch(eng.N(), cfg.Batch.Size, cfg.Batch.Seed)

	start := time.Now()
	if err := eng.ApplyChanges(batch, source); err != nil {
		return fmt.Errorf("apply changes: %w", err)
	}
	elapsedMs := float64(time.Since(start)) / float64(time.Millisecond)

	log.Printf("After %d edits (%.3f ms):", cfg.Batch.Size, elapsedMs)
	newDist := eng.Dist()[target]
	if math.IsInf(newDist, 1) {
		log.Printf("target unreachable")
	} else {
		log.Printf("dist = %g", newDist)
		log.Printf("  path: %v", extractPath(eng, source, target))
	}

	return writeResultRow(cfg.Results.CSVPath, resultRow{
		Dataset:   filepath.Base(cfg.Dataset.Path),
		BatchSize: cfg.Batch.Size,
		TimeMs:    elapsedMs,
		Version:   cfg.Dataset.Version,
	})
}

func applyFlagOverrides(cfg *config.Config, cmd *cobra.Command) {
	if flagDataset != "" {
		cfg.Dataset.Path = flagDataset
	}
	if cmd.Flags().Changed("one-based") {
		cfg.Dataset.OneBased = flagOneBased
	}
	if flagVersion != "" {
		cfg.Dataset.Version = flagVersion
	}
	if flagBatchSize > 0 {
		cfg.Batch.Size = flagBatchSize
	}
	if cmd.Flags().Changed("seed") {
		cfg.Batch.Seed = flagSeed
	}
	if cmd.Flags().Changed("min-distance") {
		cfg.Target.MinDistance = flagMinDistance
	}
	if flagResultsCSV != "" {
		cfg.Results.CSVPath = flagResultsCSV
	}
}

// pickTarget selects the reachable vertex with the largest distance from
// source that is still >= minDistance, so the reported path is long enough
// to be interesting.
func pickTarget(eng *engine.Engine, source int, minDistance float64) (target int, dist float64) {
	target = source
	dist = 0
	for v, d := range eng.Dist() {
		if math.IsInf(d, 1) {
			continue
		}
		if d >= minDistance && d > dist {
			dist, target = d, v
		}
	}

	return target, dist
}

// extractPath walks parent pointers from target back to source and
// reverses the result. Returns nil when target is unreachable.
func extractPath(eng *engine.Engine, source, target int) []int {
	dist := eng.Dist()
	if math.IsInf(dist[target], 1) {
		return nil
	}

	parent := eng.Parent()
	var path []int
	for v := target; v != source; v = parent[v] {
		path = append(path, v)
	}
	path = append(path, source)

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// synthesizeBatch produces a seeded random mix of inserts and deletes over
// the vertex range [0, n): uniform endpoint pair, coin-flip op, weights
// uniform in [1, 10).
func synthesizeBatch(n, size int, seed int64) []engine.Change {
	rng := rand.New(rand.NewSource(seed))
	batch := make([]engine.Change, 0, size)
	for len(batch) < size {
		a, b := rng.Intn(n), rng.Intn(n)
		if a == b {
			continue
		}
		if rng.Intn(2) == 0 {
			batch = append(batch, engine.NewInsert(a, b, 1+rng.Float64()*9))
		} else {
			batch = append(batch, engine.NewDelete(a, b))
		}
	}

	return batch
}

type resultRow struct {
	Dataset   string
	BatchSize int
	TimeMs    float64
	Version   string
}

// writeResultRow appends one row to the results CSV, writing the header
// line only when the file is new or empty.
func writeResultRow(path string, row resultRow) error {
	info, statErr := os.Stat(path)
	needHeader := statErr != nil || info.Size() == 0

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open results csv: %w", err)
	}
	defer f.Close()

	if needHeader {
		if _, err := f.WriteString("dataset,batch_size,time_ms,version\n"); err != nil {
			return fmt.Errorf("write results header: %w", err)
		}
	}

	_, err = fmt.Fprintf(f, "%s,%d,%g,%s\n", row.Dataset, row.BatchSize, row.TimeMs, row.Version)
	if err != nil {
		return fmt.Errorf("write results row: %w", err)
	}

	return nil
}

// Command dynsssp drives the dynamic shortest-path engine against an
// edge-list dataset: it loads a graph, runs an initial Dijkstra from the
// highest-degree vertex, synthesizes a random insert/delete batch, applies
// it through the incremental engine, and records timing to a results CSV.
package main

import "github.com/AAA-1010/dynamic-sssp-update/cmd/dynsssp/cmd"

func main() {
	cmd.Execute()
}

package cmd

import (
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose bool
	cfgFile string
	logger  *log.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "dynsssp",
	Short: "Dynamic single-source shortest-path engine driver",
	Long: `dynsssp loads a weighted undirected graph from an edge-list file,
computes an initial shortest-path tree from its highest-degree vertex, then
applies a synthetic batch of edge insertions and deletions using the
incremental update engine, timing the batch and recording the result.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		flags := log.LstdFlags
		if verbose {
			flags |= log.Lshortfile
		}
		logger = log.New(os.Stdout, "dynsssp: ", flags)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to dynsssp config file (default: ./dynsssp.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")

	logger = log.New(os.Stdout, "dynsssp: ", log.LstdFlags)
}

// Execute runs the root command and exits with status 1 on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// BinName returns the base name of the current executable.
func BinName() string {
	return filepath.Base(os.Args[0])
}

// GetLogger returns the driver's configured logger.
func GetLogger() *log.Logger {
	return logger
}

package main

import (
	"os"
	"time"

	"bizscan/internal/pipeline"

	"github.com/spf13/cobra"
)

var (
	flagSeed    uint64
	flagNoDelay bool
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:           "bizscan",
	Short:         "bizscan generates demo job, lead and price datasets, exports them and prints summary reports.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Uint64Var(&flagSeed, "seed", 0, "random seed (0 uses the configured seed, then the clock)")
	pf.BoolVar(&flagNoDelay, "no-delay", false, "skip the per-record pacing delay")
	// BIZSCAN_DATA_DIR lets a wrapper pick the artifact directory.
	pf.StringVar(&flagDataDir, "data-dir", os.Getenv("BIZSCAN_DATA_DIR"), "directory for exported files (overrides config)")
}

func env() pipeline.Env {
	return pipeline.Env{
		Out:     os.Stdout,
		Now:     time.Now,
		Seed:    flagSeed,
		DataDir: flagDataDir,
		NoDelay: flagNoDelay,
	}
}

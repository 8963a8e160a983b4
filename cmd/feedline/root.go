// ABOUTME: Root Cobra command and global flags
// ABOUTME: Sets up CLI structure and the process-wide logger

package main

import (
	"github.com/spf13/cobra"

	"github.com/harper/feedline/internal/logging"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "feedline",
	Short: "Resilient RSS/Atom fetcher and normalizer",
	Long: `feedline fetches RSS/Atom feeds, routing around cross-origin and
transport failures via ordered fallback strategies (direct, then public
proxies), and normalizes both feed schemas into one uniform item shape.

It keeps no state: every invocation fetches fresh and prints what it found.
Scheduling, storage, and source management belong to whatever calls it.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Set(logging.Console(verbose))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "show per-strategy fetch diagnostics")
}

// Command splitdump runs the plane-splitting and depth-ordering engine
// against a scene file (or a generated test grid) and prints or dumps the
// result.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "splitdump",
	Short:         "Split and order convex quad polygons from a scene file",
	SilenceUsage:  true,
	SilenceErrors: false,
}

var verbose bool

func main() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug tracing")
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func logLevel() slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

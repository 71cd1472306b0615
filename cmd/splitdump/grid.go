package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/akmonengine/planesplit/geom"
	"github.com/akmonengine/planesplit/split"
	"github.com/akmonengine/planesplit/split/bsp"
	"github.com/akmonengine/planesplit/splitlog"
	"github.com/spf13/cobra"
)

var (
	gridCount int
	gridView  []float64
)

var gridCmd = &cobra.Command{
	Use:   "grid",
	Short: "Split and order the generated grid benchmark fixture",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		splitlog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()})))

		polys := split.MakeGrid(gridCount)

		view := geom.Vec3{1, 1, 1}
		if len(gridView) == 3 {
			view = geom.Vec3{gridView[0], gridView[1], gridView[2]}
		}

		var splitter split.Splitter[int]
		if useNaive {
			splitter = split.NewNaiveSplitter[int]()
		} else {
			splitter = bsp.New[int]()
		}

		out := splitter.Solve(polys, view.Normalize())
		fmt.Printf("input=%d output=%d\n", len(polys), len(out))
		return nil
	},
}

func init() {
	gridCmd.Flags().IntVar(&gridCount, "count", 2, "grid size parameter")
	gridCmd.Flags().Float64SliceVar(&gridView, "view", nil, "view direction as x,y,z")
	gridCmd.Flags().BoolVar(&useNaive, "naive", false, "use the naive O(n^2) splitter instead of the BSP splitter")
	rootCmd.AddCommand(gridCmd)
}

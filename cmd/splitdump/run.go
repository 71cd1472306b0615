package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/akmonengine/planesplit/scene"
	"github.com/akmonengine/planesplit/split"
	"github.com/akmonengine/planesplit/split/bsp"
	"github.com/akmonengine/planesplit/splitlog"
	"github.com/spf13/cobra"
)

var (
	useNaive bool
	dumpPath string
	pngPath  string
)

var runCmd = &cobra.Command{
	Use:   "run {scene.yaml}",
	Short: "Split and order the rectangles described by a scene file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		splitlog.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel()})))

		s, err := scene.Load(args[0])
		if err != nil {
			return err
		}

		var splitter split.Splitter[int]
		if useNaive {
			splitter = split.NewNaiveSplitter[int]()
		} else {
			splitter = bsp.New[int]()
		}

		var dbg *split.DebugWrap[int]
		if dumpPath != "" || pngPath != "" {
			dbg = split.NewDebugWrap[int](splitter)
			splitter = dbg
		}

		view := s.View.Geom()
		out := splitter.Solve(s.Polygons(), view)

		for i, p := range out {
			fmt.Printf("%d: anchor=%v\n", i, p.Anchor)
		}

		if dumpPath != "" {
			if err := writeDump(dumpPath, dbg.Dump()); err != nil {
				return err
			}
		}
		if pngPath != "" {
			if err := writePNG(pngPath, out, view); err != nil {
				return err
			}
		}

		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&useNaive, "naive", false, "use the naive O(n^2) splitter instead of the BSP splitter")
	runCmd.Flags().StringVar(&dumpPath, "dump", "", "write a YAML dump of the input/view/output to this path")
	runCmd.Flags().StringVar(&pngPath, "png", "", "write a debug raster of the ordered output to this path")
	rootCmd.AddCommand(runCmd)
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridastar/internal/render"
	"github.com/pdrpinto/gridastar/internal/report"
)

func newRenderCmd(root *rootFlags) *cobra.Command {
	var (
		overrides scenarioFlags
		out       string
		cellSize  int
		labels    bool
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Search and draw the grid with the path to a PNG",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario, err := loadScenario(cmd, root, &overrides)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("out") {
				scenario.Image = out
			}
			if cmd.Flags().Changed("cell-size") {
				scenario.CellSize = cellSize
			}

			grid, result, err := search(cmd, scenario)
			if err != nil {
				return err
			}
			scene := render.Scene{Grid: grid, Start: result.Start, Target: result.Target, Path: result.Path}
			options := render.Options{CellSize: scenario.CellSize, Labels: labels}
			if scenario.Image == "-" {
				return render.WritePNG(cmd.OutOrStdout(), scene, options)
			}
			if err := render.SavePNG(scenario.Image, scene, options); err != nil {
				return err
			}
			if err := report.WritePath(cmd.OutOrStdout(), result); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "image written to %s\n", scenario.Image)
			return nil
		},
	}
	overrides.register(cmd)
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "PNG output path, - for stdout (default from scenario)")
	f.IntVar(&cellSize, "cell-size", render.DefaultCellSize, "Cell size in pixels")
	f.BoolVar(&labels, "labels", false, "Mark start and target with S and T")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridastar/internal/mapfile"
)

func newGenCmd() *cobra.Command {
	spec := mapfile.DefaultGenerateSpec()
	var out string
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Write a random map of clustered walls",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if spec.Rows <= 0 || spec.Cols <= 0 {
				return fmt.Errorf("map size must be positive, got %dx%d", spec.Rows, spec.Cols)
			}
			if spec.Density < 0 || spec.Density > 1 {
				return fmt.Errorf("density must be in [0, 1], got %g", spec.Density)
			}
			if err := mapfile.Save(out, mapfile.Generate(spec)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%dx%d map written to %s\n", spec.Rows, spec.Cols, out)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&out, "out", "o", "", "Map output path (required)")
	f.IntVar(&spec.Rows, "rows", spec.Rows, "Rows")
	f.IntVar(&spec.Cols, "cols", spec.Cols, "Columns")
	f.IntVar(&spec.Clusters, "clusters", spec.Clusters, "Wall clusters")
	f.IntVar(&spec.Steps, "steps", spec.Steps, "Random-walk steps per cluster")
	f.Float64Var(&spec.Density, "density", spec.Density, "Chance a visited cell becomes a wall")
	f.Int64Var(&spec.Seed, "seed", spec.Seed, "Random seed")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/logging"
	"github.com/pdrpinto/gridastar/internal/report"
)

func newBatchCmd(root *rootFlags) *cobra.Command {
	var (
		mapPath string
		workers int
	)
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run every query of a scenario in parallel",
		Long:  "Runs the scenario's queries list (or its single start/target pair)\nagainst one shared grid and prints a summary table.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario, err := loadScenario(cmd, root, nil)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("map") {
				scenario.Map = mapPath
			}
			if cmd.Flags().Changed("workers") {
				scenario.Workers = workers
			}

			grid, err := loadGrid(scenario.Map)
			if err != nil {
				return err
			}
			options, err := scenario.SearchOptions()
			if err != nil {
				return err
			}
			logger := logging.New("batch")
			options = append(options, astar.WithLogger(logger))

			queries := scenario.BatchQueries()
			outcomes, err := astar.FindPaths(cmd.Context(), grid, queries, options...)
			if err != nil {
				return fmt.Errorf("batch: %w", err)
			}
			logger.WithField("queries", len(queries)).Info("batch finished")
			fmt.Fprintln(cmd.OutOrStdout(), report.BatchTable(outcomes))
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&mapPath, "map", "", "Map file (default from scenario)")
	f.IntVar(&workers, "workers", 0, "Concurrent searches (default: number of CPUs)")
	return cmd
}

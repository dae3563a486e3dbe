package main

import (
	"fmt"

	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/config"
	"github.com/pdrpinto/gridastar/internal/logging"
	"github.com/pdrpinto/gridastar/internal/report"
)

func newFindCmd(root *rootFlags) *cobra.Command {
	var (
		overrides scenarioFlags
		table     bool
		ascii     bool
	)
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Search one start/target pair and print the path",
		RunE: func(cmd *cobra.Command, _ []string) error {
			scenario, err := loadScenario(cmd, root, &overrides)
			if err != nil {
				return err
			}
			grid, result, err := search(cmd, scenario)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := report.WritePath(out, result); err != nil {
				return err
			}
			if table {
				stepCost, err := astar.ParseHeuristic(scenario.StepCost)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, report.RouteTable(result, stepCost))
			}
			if ascii {
				fmt.Fprint(out, report.ASCIIMap(grid, result.Start, result.Target, result.Path))
			}
			return nil
		},
	}
	overrides.register(cmd)
	f := cmd.Flags()
	f.BoolVar(&table, "table", false, "Also print the route as a table")
	f.BoolVar(&ascii, "ascii", false, "Also print the map with the path drawn in")
	return cmd
}

// search runs the scenario's single query.
func search(cmd *cobra.Command, scenario config.Scenario) (*astar.GridMap, astar.Result, error) {
	grid, err := loadGrid(scenario.Map)
	if err != nil {
		return nil, astar.Result{}, err
	}
	options, err := scenario.SearchOptions()
	if err != nil {
		return nil, astar.Result{}, err
	}
	options = append(options, astar.WithLogger(logging.New("search")))

	start, target := scenario.Start.Cell(), scenario.Target.Cell()
	result, err := astar.FindPath(cmd.Context(), grid, start, target, options...)
	if err != nil {
		return grid, astar.Result{}, fmt.Errorf("%s -> %s: %w", start, target, err)
	}
	logging.New("search").WithField("cost", result.Cost).Info("path found")
	return grid, result, nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	astar "github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal/config"
	"github.com/pdrpinto/gridastar/internal/logging"
	"github.com/pdrpinto/gridastar/internal/mapfile"
)

type rootFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	rootCmd := &cobra.Command{
		Use:   "gridastar",
		Short: "A* shortest paths on occupancy grids",
		Long: "gridastar searches 8-connected occupancy grids read from map files,\n" +
			"prints or renders the shortest path and serves a step-by-step visualiser.",
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level, err := logging.ParseLevel(flags.logLevel)
			if err != nil {
				return err
			}
			logging.Init(level, flags.logFormat, cmd.ErrOrStderr())
			return nil
		},
	}
	rootCmd.Version = version

	f := rootCmd.PersistentFlags()
	f.StringVar(&flags.configPath, "config", "", "Scenario file (YAML or JSON)")
	f.StringVar(&flags.logLevel, "log-level", "warn", "Log level: debug, info, warn, error")
	f.StringVar(&flags.logFormat, "log-format", "text", "Log format: text or json")

	rootCmd.AddCommand(newFindCmd(flags))
	rootCmd.AddCommand(newRenderCmd(flags))
	rootCmd.AddCommand(newGenCmd())
	rootCmd.AddCommand(newBatchCmd(flags))
	rootCmd.AddCommand(newServeCmd())
	return rootCmd
}

// scenarioFlags are the scenario fields a command may override on the command line.
type scenarioFlags struct {
	mapPath   string
	start     []int
	target    []int
	heuristic string
	stepCost  string
}

func (s *scenarioFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&s.mapPath, "map", "", "Map file, one row per line of 0 (free) and 1 (wall)")
	f.IntSliceVar(&s.start, "start", nil, "Start cell as row,col")
	f.IntSliceVar(&s.target, "target", nil, "Target cell as row,col")
	f.StringVar(&s.heuristic, "heuristic", "", "Goal estimate: manhattan or euclidean")
	f.StringVar(&s.stepCost, "step-cost", "", "Move cost: euclidean or manhattan")
}

// loadScenario reads --config over the defaults, then applies the flags that were set.
func loadScenario(cmd *cobra.Command, root *rootFlags, overrides *scenarioFlags) (config.Scenario, error) {
	scenario := config.Default()
	if root.configPath != "" {
		loaded, err := config.LoadFromPath(root.configPath)
		if err != nil {
			return config.Scenario{}, err
		}
		scenario = loaded
	}
	if overrides == nil {
		return scenario, nil
	}

	f := cmd.Flags()
	if f.Changed("map") {
		scenario.Map = overrides.mapPath
	}
	for _, point := range []struct {
		name  string
		value []int
		into  *config.Point
	}{
		{"start", overrides.start, &scenario.Start},
		{"target", overrides.target, &scenario.Target},
	} {
		if !f.Changed(point.name) {
			continue
		}
		if len(point.value) != 2 {
			return config.Scenario{}, fmt.Errorf("--%s wants row,col, got %v", point.name, point.value)
		}
		*point.into = config.Point{point.value[0], point.value[1]}
	}
	if f.Changed("heuristic") {
		scenario.Heuristic = overrides.heuristic
	}
	if f.Changed("step-cost") {
		scenario.StepCost = overrides.stepCost
	}
	return scenario, scenario.Validate()
}

func loadGrid(path string) (*astar.GridMap, error) {
	values, err := mapfile.Load(path)
	if err != nil {
		return nil, err
	}
	return astar.FromInts(values)
}

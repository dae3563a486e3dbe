// Package config loads search scenarios from YAML or JSON files.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	astar "github.com/pdrpinto/gridastar"
)

// Point is a [row, col] pair as written in scenario files.
type Point [2]int

// Cell converts the point to a grid cell.
func (point Point) Cell() astar.Cell { return astar.Cell{Row: point[0], Col: point[1]} }

// QueryConfig is one start/target pair of a batch.
type QueryConfig struct {
	Start  Point `yaml:"start" json:"start"`
	Target Point `yaml:"target" json:"target"`
}

// Scenario is everything a run needs besides the map contents.
type Scenario struct {
	Map       string        `yaml:"map" json:"map"`
	Start     Point         `yaml:"start" json:"start"`
	Target    Point         `yaml:"target" json:"target"`
	Heuristic string        `yaml:"heuristic" json:"heuristic"`
	StepCost  string        `yaml:"step_cost" json:"step_cost"`
	Image     string        `yaml:"image" json:"image"`
	CellSize  int           `yaml:"cell_size" json:"cell_size"`
	Workers   int           `yaml:"workers" json:"workers"`
	Queries   []QueryConfig `yaml:"queries" json:"queries"`
}

// Default returns the scenario used when no file is given.
func Default() Scenario {
	return Scenario{
		Map:       "astar_map.txt",
		Start:     Point{1, 4},
		Target:    Point{26, 18},
		Heuristic: "manhattan",
		StepCost:  "euclidean",
		Image:     "Astar.png",
		CellSize:  30,
	}
}

// LoadFromPath reads a scenario file (YAML or JSON) over the defaults.
// Format is detected by extension (.yaml/.yml → YAML, .json → JSON) or by content.
func LoadFromPath(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	scenario, err := Load(data, filepath.Ext(path))
	if err != nil {
		return Scenario{}, err
	}
	if scenario.Map != "" && !filepath.IsAbs(scenario.Map) {
		scenario.Map = filepath.Join(filepath.Dir(path), scenario.Map)
	}
	return scenario, nil
}

// Load parses a scenario from bytes. ext is the file extension used as a format hint; empty = detect from content.
func Load(data []byte, ext string) (Scenario, error) {
	scenario := Default()
	ext = strings.ToLower(ext)
	if ext == ".yml" {
		ext = ".yaml"
	}
	if ext == "" {
		ext = ".yaml"
		if strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
			ext = ".json"
		}
	}

	switch ext {
	case ".json":
		if err := json.Unmarshal(data, &scenario); err != nil {
			return Scenario{}, fmt.Errorf("parse scenario json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &scenario); err != nil {
			return Scenario{}, fmt.Errorf("parse scenario yaml: %w", err)
		}
	}
	if err := scenario.Validate(); err != nil {
		return Scenario{}, err
	}
	return scenario, nil
}

// Validate checks the fields that do not depend on the map.
func (scenario Scenario) Validate() error {
	if _, err := astar.ParseHeuristic(scenario.Heuristic); err != nil {
		return fmt.Errorf("heuristic: %w", err)
	}
	if _, err := astar.ParseHeuristic(scenario.StepCost); err != nil {
		return fmt.Errorf("step_cost: %w", err)
	}
	if scenario.CellSize < 0 {
		return fmt.Errorf("cell_size must not be negative, got %d", scenario.CellSize)
	}
	if scenario.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", scenario.Workers)
	}
	return nil
}

// SearchOptions converts the heuristic settings to engine options.
func (scenario Scenario) SearchOptions() ([]astar.Option, error) {
	estimate, err := astar.ParseHeuristic(scenario.Heuristic)
	if err != nil {
		return nil, err
	}
	stepCost, err := astar.ParseHeuristic(scenario.StepCost)
	if err != nil {
		return nil, err
	}
	options := []astar.Option{astar.WithHeuristic(estimate), astar.WithStepCost(stepCost)}
	if scenario.Workers > 0 {
		options = append(options, astar.WithWorkers(scenario.Workers))
	}
	return options, nil
}

// BatchQueries returns the configured queries, or the single start/target pair when none are listed.
func (scenario Scenario) BatchQueries() []astar.Query {
	if len(scenario.Queries) == 0 {
		return []astar.Query{{Start: scenario.Start.Cell(), Target: scenario.Target.Cell()}}
	}
	queries := make([]astar.Query, 0, len(scenario.Queries))
	for _, query := range scenario.Queries {
		queries = append(queries, astar.Query{Start: query.Start.Cell(), Target: query.Target.Cell()})
	}
	return queries
}

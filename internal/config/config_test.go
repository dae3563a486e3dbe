package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	astar "github.com/pdrpinto/gridastar"
)

func TestLoad_YAMLOverridesDefaults(t *testing.T) {
	data := []byte(`
map: maps/room.txt
start: [0, 2]
target: [5, 7]
heuristic: euclidean
queries:
  - start: [0, 0]
    target: [1, 1]
`)
	scenario, err := Load(data, ".yml")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.Map = "maps/room.txt"
	want.Start = Point{0, 2}
	want.Target = Point{5, 7}
	want.Heuristic = "euclidean"
	want.Queries = []QueryConfig{{Start: Point{0, 0}, Target: Point{1, 1}}}
	if diff := cmp.Diff(want, scenario); diff != "" {
		t.Errorf("scenario mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_JSONDetectedByContent(t *testing.T) {
	scenario, err := Load([]byte(`{"start": [3, 3], "cell_size": 12}`), "")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if scenario.Start != (Point{3, 3}) || scenario.CellSize != 12 {
		t.Errorf("got start=%v cell_size=%d", scenario.Start, scenario.CellSize)
	}
	if scenario.Heuristic != "manhattan" {
		t.Errorf("default heuristic lost: %q", scenario.Heuristic)
	}
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]struct {
		data []byte
		ext  string
		want string
	}{
		"bad yaml":      {[]byte("start: [1, 2"), ".yaml", "parse scenario yaml"},
		"bad json":      {[]byte("{"), ".json", "parse scenario json"},
		"bad heuristic": {[]byte("heuristic: octile"), ".yaml", "heuristic"},
		"bad step cost": {[]byte("step_cost: hex"), ".yaml", "step_cost"},
		"negative size": {[]byte("cell_size: -1"), ".yaml", "cell_size"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(tc.data, tc.ext)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("err = %v, want it to mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFromPath_ResolvesMapRelativeToFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scenario.yaml")
	if err := os.WriteFile(path, []byte("map: grid.txt\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	scenario, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if scenario.Map != filepath.Join(dir, "grid.txt") {
		t.Errorf("map = %q, want it next to the scenario file", scenario.Map)
	}
}

func TestScenario_SearchOptions(t *testing.T) {
	scenario := Default()
	scenario.Heuristic = "euclidean"
	scenario.StepCost = "manhattan"
	scenario.Workers = 2

	options, err := scenario.SearchOptions()
	if err != nil {
		t.Fatal(err)
	}
	engine := astar.NewEngine(astar.MustGridMap([][]int{{0}}), options...)
	got := engine.Options()
	if got.Estimate != astar.EuclideanKind || got.StepCost != astar.ManhattanKind || got.NumberOfWorkers != 2 {
		t.Errorf("options = %+v", got)
	}
}

func TestScenario_BatchQueries(t *testing.T) {
	scenario := Default()
	want := []astar.Query{{Start: astar.Cell{Row: 1, Col: 4}, Target: astar.Cell{Row: 26, Col: 18}}}
	if diff := cmp.Diff(want, scenario.BatchQueries()); diff != "" {
		t.Errorf("single query mismatch (-want +got):\n%s", diff)
	}

	scenario.Queries = []QueryConfig{{Start: Point{0, 1}, Target: Point{2, 3}}}
	want = []astar.Query{{Start: astar.Cell{Row: 0, Col: 1}, Target: astar.Cell{Row: 2, Col: 3}}}
	if diff := cmp.Diff(want, scenario.BatchQueries()); diff != "" {
		t.Errorf("listed queries mismatch (-want +got):\n%s", diff)
	}
}

package report

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	astar "github.com/pdrpinto/gridastar"
)

func search(t *testing.T, grid *astar.GridMap, start, target astar.Cell) astar.Result {
	t.Helper()
	result, err := astar.FindPath(context.Background(), grid, start, target)
	if err != nil {
		t.Fatalf("FindPath: %v", err)
	}
	return result
}

func TestWritePath(t *testing.T) {
	grid := astar.MustGridMap([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	result := search(t, grid, astar.Cell{Row: 0, Col: 0}, astar.Cell{Row: 2, Col: 2})

	var buf bytes.Buffer
	if err := WritePath(&buf, result); err != nil {
		t.Fatal(err)
	}
	want := "[0,0] -> [2,2] shortest path:\n[2,2] [1,1]\n"
	if buf.String() != want {
		t.Errorf("WritePath = %q, want %q", buf.String(), want)
	}
}

func TestASCIIMap(t *testing.T) {
	grid := astar.MustGridMap([][]int{
		{0, 0, 0},
		{1, 0, 1},
		{0, 0, 0},
	})
	start, target := astar.Cell{Row: 0, Col: 0}, astar.Cell{Row: 2, Col: 2}
	result := search(t, grid, start, target)

	got := ASCIIMap(grid, start, target, result.Path)
	want := "S . .\n# * #\n. . T\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("map mismatch (-want +got):\n%s", diff)
	}
}

func TestRouteLength(t *testing.T) {
	cases := []struct {
		name  string
		route []astar.Cell
		want  float64
	}{
		{"empty", nil, 0},
		{"single cell", []astar.Cell{{Row: 3, Col: 3}}, 0},
		{"diagonal then straight", []astar.Cell{{Row: 0, Col: 0}, {Row: 1, Col: 1}, {Row: 1, Col: 2}}, math.Sqrt2 + 1},
		{"towards the origin", []astar.Cell{{Row: 2, Col: 2}, {Row: 1, Col: 1}, {Row: 0, Col: 1}}, math.Sqrt2 + 1},
		{"straight run", []astar.Cell{{Row: 0, Col: 4}, {Row: 0, Col: 3}, {Row: 0, Col: 2}}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := RouteLength(tc.route)
			if math.Abs(float64(got)-tc.want) > 1e-5 {
				t.Errorf("RouteLength = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestRouteTable(t *testing.T) {
	grid := astar.MustGridMap([][]int{{0, 0, 0, 0}})
	result := search(t, grid, astar.Cell{Row: 0, Col: 0}, astar.Cell{Row: 0, Col: 3})

	rendered := RouteTable(result, astar.EuclideanKind)
	for _, want := range []string{"[0,0]", "[0,3]", "30", "3.00"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("table missing %q:\n%s", want, rendered)
		}
	}
}

func TestRouteTable_ManhattanStepCost(t *testing.T) {
	grid := astar.MustGridMap([][]int{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}})
	result, err := astar.FindPath(context.Background(), grid,
		astar.Cell{Row: 0, Col: 0}, astar.Cell{Row: 2, Col: 2}, astar.WithStepCost(astar.ManhattanKind))
	if err != nil {
		t.Fatal(err)
	}
	if result.Cost != 40 {
		t.Fatalf("cost = %d, want 40", result.Cost)
	}

	rendered := RouteTable(result, astar.ManhattanKind)
	if !strings.Contains(rendered, "20") || !strings.Contains(rendered, "40") {
		t.Errorf("table does not add up to the search cost:\n%s", rendered)
	}
	if strings.Contains(rendered, "14") {
		t.Errorf("table priced moves as euclidean:\n%s", rendered)
	}
}

func TestBatchTable(t *testing.T) {
	grid := astar.MustGridMap([][]int{{0, 0}, {0, 1}})
	queries := []astar.Query{
		{Start: astar.Cell{Row: 0, Col: 0}, Target: astar.Cell{Row: 1, Col: 0}},
		{Start: astar.Cell{Row: 0, Col: 0}, Target: astar.Cell{Row: 1, Col: 1}},
	}
	outcomes, err := astar.FindPaths(context.Background(), grid, queries, astar.WithWorkers(1))
	if err != nil {
		t.Fatal(err)
	}

	rendered := BatchTable(outcomes)
	for _, want := range []string{"found", "BlockedEndpoint", "1/2"} {
		if !strings.Contains(rendered, want) {
			t.Errorf("batch table missing %q:\n%s", want, rendered)
		}
	}
}

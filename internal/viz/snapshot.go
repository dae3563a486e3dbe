package viz

import (
	"cmp"
	"slices"

	"github.com/zyedidia/generic/mapset"

	astar "github.com/pdrpinto/gridastar"
)

// Snapshot is the JSON view of one search step. Cells are [row, col].
type Snapshot struct {
	Step    int      `json:"step"`
	Rows    int      `json:"rows"`
	Cols    int      `json:"cols"`
	Walls   [][2]int `json:"walls"`
	Open    [][2]int `json:"open,omitempty"`
	Closed  [][2]int `json:"closed,omitempty"`
	Current [2]int   `json:"current"`
	Start   [2]int   `json:"start"`
	Target  [2]int   `json:"target"`
	Done    bool     `json:"done"`
	Found   bool     `json:"found"`
	Path    [][2]int `json:"path,omitempty"`
	Cost    int      `json:"cost,omitempty"`
}

func pair(cell astar.Cell) [2]int { return [2]int{cell.Row, cell.Col} }

func pairs(cells []astar.Cell) [][2]int {
	if len(cells) == 0 {
		return nil
	}
	out := make([][2]int, 0, len(cells))
	for _, cell := range cells {
		out = append(out, pair(cell))
	}
	return out
}

// setPairs lists a set in row-major order so responses are stable.
func setPairs(set mapset.Set[astar.Cell]) [][2]int {
	cells := make([]astar.Cell, 0, set.Size())
	set.Each(func(cell astar.Cell) { cells = append(cells, cell) })
	slices.SortFunc(cells, func(a, b astar.Cell) int {
		if c := cmp.Compare(a.Row, b.Row); c != 0 {
			return c
		}
		return cmp.Compare(a.Col, b.Col)
	})
	return pairs(cells)
}

func newSnapshot(b *board, step astar.StepSnapshot) Snapshot {
	return Snapshot{
		Step:    step.StepIndex,
		Rows:    b.rows,
		Cols:    b.cols,
		Walls:   b.walls,
		Open:    setPairs(step.Open),
		Closed:  setPairs(step.Closed),
		Current: pair(step.Current),
		Start:   pair(b.start),
		Target:  pair(b.target),
		Done:    step.Done,
		Found:   step.Found,
		Path:    pairs(step.Path),
		Cost:    step.Cost,
	}
}

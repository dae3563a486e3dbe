package astar

import (
	"fmt"
	"sync/atomic"
)

// CellState is the occupancy of a single grid cell.
type CellState int

const (
	Passable CellState = 0
	Wall     CellState = 1
)

func (state CellState) String() string {
	if state == Wall {
		return "wall"
	}
	return "passable"
}

// GridMap is a 2-D occupancy grid. Rows are indexed first, columns second.
//
// The backing rows are swapped atomically by Replace. A search captures the
// rows once when it starts, so it never observes a half-replaced grid, but
// callers should still serialize replacement against in-flight searches.
type GridMap struct {
	rows atomic.Pointer[gridData]
}

type gridData struct {
	cells [][]CellState
	cols  int
}

// NewGridMap builds a grid from rows of cell states. Rows must all have the
// length of the first row.
func NewGridMap(rows [][]CellState) (*GridMap, error) {
	grid := &GridMap{}
	if err := grid.Replace(rows); err != nil {
		return nil, err
	}
	return grid, nil
}

// FromInts builds a grid from loader output: 1 is a wall, anything else is passable.
func FromInts(values [][]int) (*GridMap, error) {
	return NewGridMap(statesFromInts(values))
}

// MustGridMap is NewGridMap for literals in tests and examples; it panics on ragged input.
func MustGridMap(values [][]int) *GridMap {
	grid, err := FromInts(values)
	if err != nil {
		panic(err)
	}
	return grid
}

// Replace swaps the backing grid.
func (grid *GridMap) Replace(rows [][]CellState) error {
	data, err := newGridData(rows)
	if err != nil {
		return err
	}
	grid.rows.Store(data)
	return nil
}

// ReplaceInts is Replace for loader output.
func (grid *GridMap) ReplaceInts(values [][]int) error {
	return grid.Replace(statesFromInts(values))
}

// Rows returns the number of rows.
func (grid *GridMap) Rows() int { return grid.snapshot().rowCount() }

// Cols returns the number of columns, taken from the first row.
func (grid *GridMap) Cols() int { return grid.snapshot().cols }

// Empty reports whether the grid has no rows.
func (grid *GridMap) Empty() bool { return grid.Rows() == 0 }

// InBounds reports whether cell lies within [0, Rows) x [0, Cols).
func (grid *GridMap) InBounds(cell Cell) bool { return grid.snapshot().inBounds(cell) }

// IsPassable reports whether cell is in bounds and not a wall.
func (grid *GridMap) IsPassable(cell Cell) bool { return grid.snapshot().isPassable(cell) }

// State returns the state of an in-bounds cell; out-of-bounds cells read as Wall.
func (grid *GridMap) State(cell Cell) CellState {
	data := grid.snapshot()
	if !data.inBounds(cell) {
		return Wall
	}
	return data.cells[cell.Row][cell.Col]
}

// Cells returns a copy of the backing rows.
func (grid *GridMap) Cells() [][]CellState {
	data := grid.snapshot()
	out := make([][]CellState, len(data.cells))
	for rowIndex, row := range data.cells {
		out[rowIndex] = append([]CellState(nil), row...)
	}
	return out
}

func (grid *GridMap) snapshot() *gridData {
	if data := grid.rows.Load(); data != nil {
		return data
	}
	return &gridData{}
}

func newGridData(rows [][]CellState) (*gridData, error) {
	data := &gridData{cells: make([][]CellState, len(rows))}
	if len(rows) > 0 {
		data.cols = len(rows[0])
	}
	for rowIndex, row := range rows {
		if len(row) != data.cols {
			return nil, fmt.Errorf("%w: row %d has %d columns, want %d", ErrRaggedMap, rowIndex, len(row), data.cols)
		}
		data.cells[rowIndex] = append([]CellState(nil), row...)
	}
	return data, nil
}

func (data *gridData) rowCount() int { return len(data.cells) }

func (data *gridData) inBounds(cell Cell) bool {
	return cell.Row >= 0 && cell.Row < len(data.cells) && cell.Col >= 0 && cell.Col < data.cols
}

func (data *gridData) isPassable(cell Cell) bool {
	return data.inBounds(cell) && data.cells[cell.Row][cell.Col] != Wall
}

func statesFromInts(values [][]int) [][]CellState {
	rows := make([][]CellState, len(values))
	for rowIndex, row := range values {
		rows[rowIndex] = make([]CellState, len(row))
		for colIndex, value := range row {
			if value == int(Wall) {
				rows[rowIndex][colIndex] = Wall
			}
		}
	}
	return rows
}

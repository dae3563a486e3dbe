package astar

import "fmt"

// Cell is a (row, column) position on the grid.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// String renders the cell as [row,col].
func (cell Cell) String() string {
	return fmt.Sprintf("[%d,%d]", cell.Row, cell.Col)
}

// neighborOffsets lists the 8-connected moves in expansion order:
// row offset +1, 0, -1 (outer) by column offset +1, 0, -1 (inner).
var neighborOffsets = func() []Cell {
	offsets := make([]Cell, 0, 8)
	for rowOffset := 1; rowOffset >= -1; rowOffset-- {
		for colOffset := 1; colOffset >= -1; colOffset-- {
			if rowOffset == 0 && colOffset == 0 {
				continue
			}
			offsets = append(offsets, Cell{Row: rowOffset, Col: colOffset})
		}
	}
	return offsets
}()

// Adjacent reports whether a and b are distinct cells at Chebyshev distance 1.
func Adjacent(a, b Cell) bool {
	rowDelta, colDelta := absInt(a.Row-b.Row), absInt(a.Col-b.Col)
	return rowDelta <= 1 && colDelta <= 1 && (rowDelta+colDelta) > 0
}

func absInt(value int) int {
	if value < 0 {
		return -value
	}
	return value
}

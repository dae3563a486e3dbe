// Package report prints search results to a terminal.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/ungerik/go3d/vec2"

	astar "github.com/pdrpinto/gridastar"
)

// Map symbols.
const (
	SymbolOpen   = '.'
	SymbolWall   = '#'
	SymbolStart  = 'S'
	SymbolTarget = 'T'
	SymbolPath   = '*'
)

// WritePath prints the path in the order the engine returns it, target first.
func WritePath(w io.Writer, result astar.Result) error {
	cells := make([]string, 0, len(result.Path))
	for _, cell := range result.Path {
		cells = append(cells, cell.String())
	}
	_, err := fmt.Fprintf(w, "%s -> %s shortest path:\n%s\n", result.Start, result.Target, strings.Join(cells, " "))
	return err
}

// RouteTable renders the route start to target with per-move and running
// costs. stepCost must be the kind the search used for the totals to add up.
func RouteTable(result astar.Result, stepCost astar.HeuristicKind) string {
	writer := table.NewWriter()
	writer.SetStyle(table.StyleLight)
	writer.AppendHeader(table.Row{"#", "Cell", "Move", "Cost"})

	route := result.Route()
	total := 0
	for i, cell := range route {
		move := 0
		if i > 0 {
			move = stepCost.Distance(route[i-1], cell)
		}
		total += move
		writer.AppendRow(table.Row{i, cell.String(), move, total})
	}
	writer.AppendFooter(table.Row{"", "length", fmt.Sprintf("%.2f", RouteLength(route)), result.Cost})
	writer.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
		{Number: 4, Align: text.AlignRight},
	})
	return writer.Render()
}

// RouteLength is the geometric length of the route in cell units.
func RouteLength(route []astar.Cell) float32 {
	var length float32
	for i := 1; i < len(route); i++ {
		from := vec2.T{float32(route[i-1].Col), float32(route[i-1].Row)}
		to := vec2.T{float32(route[i].Col), float32(route[i].Row)}
		delta := vec2.Sub(&to, &from)
		length += delta.Length()
	}
	return length
}

// ASCIIMap draws the grid with the path, start and target marked.
func ASCIIMap(grid *astar.GridMap, start, target astar.Cell, path []astar.Cell) string {
	onPath := make(map[astar.Cell]bool, len(path))
	for _, cell := range path {
		onPath[cell] = true
	}

	var builder strings.Builder
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			cell := astar.Cell{Row: row, Col: col}
			symbol := SymbolOpen
			switch {
			case cell == start:
				symbol = SymbolStart
			case cell == target:
				symbol = SymbolTarget
			case !grid.IsPassable(cell):
				symbol = SymbolWall
			case onPath[cell]:
				symbol = SymbolPath
			}
			if col > 0 {
				builder.WriteByte(' ')
			}
			builder.WriteRune(symbol)
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

// BatchTable summarises a batch run, one row per query.
func BatchTable(outcomes []astar.Outcome) string {
	writer := table.NewWriter()
	writer.SetStyle(table.StyleLight)
	writer.AppendHeader(table.Row{"#", "Start", "Target", "Status", "Steps", "Cost", "Expanded"})

	found := 0
	for i, outcome := range outcomes {
		status := "found"
		if outcome.Err != nil {
			status = astar.ReasonOf(outcome.Err).String()
		} else {
			found++
		}
		writer.AppendRow(table.Row{
			i,
			outcome.Query.Start.String(),
			outcome.Query.Target.String(),
			status,
			len(outcome.Result.Path),
			outcome.Result.Cost,
			outcome.Result.ExpandedNodes,
		})
	}
	writer.AppendFooter(table.Row{"", "", "", fmt.Sprintf("%d/%d found", found, len(outcomes)), "", "", ""})
	return writer.Render()
}

// Package render draws a grid and a found path to a PNG image.
package render

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	astar "github.com/pdrpinto/gridastar"
)

const DefaultCellSize = 30

var (
	ColorBackground = color.RGBA{255, 255, 255, 255}
	ColorPathCell   = color.RGBA{255, 255, 0, 255}
	ColorWall       = color.RGBA{0, 0, 0, 255}
	ColorStart      = color.RGBA{0, 0, 255, 255}
	ColorTarget     = color.RGBA{255, 0, 0, 255}
	ColorGridLine   = color.RGBA{238, 238, 141, 255}
	ColorPathLine   = color.RGBA{0, 0, 0, 255}
)

// Options controls the drawing.
type Options struct {
	CellSize int
	Labels   bool // write S and T on the endpoints
}

// Scene is what gets drawn: the grid, the request and the engine's path
// (target first, start excluded).
type Scene struct {
	Grid   *astar.GridMap
	Start  astar.Cell
	Target astar.Cell
	Path   []astar.Cell
}

// Draw renders the scene. Path cells are filled first so walls and endpoints
// stay visible, then grid lines, then the polyline from target through the
// path to start.
func Draw(scene Scene, options Options) (image.Image, error) {
	if scene.Grid == nil || scene.Grid.Empty() {
		return nil, astar.ErrEmptyMap
	}
	cellSize := options.CellSize
	if cellSize <= 0 {
		cellSize = DefaultCellSize
	}
	rows, cols := scene.Grid.Rows(), scene.Grid.Cols()
	size := float64(cellSize)
	half := size / 2

	dc := gg.NewContext(cols*cellSize, rows*cellSize)
	dc.SetColor(ColorBackground)
	dc.Clear()

	fillCell := func(cell astar.Cell, c color.Color) {
		dc.SetColor(c)
		dc.DrawRectangle(float64(cell.Col)*size, float64(cell.Row)*size, size, size)
		dc.Fill()
	}

	// --- Cells ---
	for _, cell := range scene.Path {
		fillCell(cell, ColorPathCell)
	}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			cell := astar.Cell{Row: row, Col: col}
			switch {
			case !scene.Grid.IsPassable(cell):
				fillCell(cell, ColorWall)
			case cell == scene.Start:
				fillCell(cell, ColorStart)
			case cell == scene.Target:
				fillCell(cell, ColorTarget)
			}
		}
	}

	// --- Grid lines ---
	dc.SetColor(ColorGridLine)
	dc.SetLineWidth(1)
	for col := 1; col < cols; col++ {
		dc.DrawLine(float64(col)*size, 0, float64(col)*size, float64(rows)*size)
	}
	for row := 1; row < rows; row++ {
		dc.DrawLine(0, float64(row)*size, float64(cols)*size, float64(row)*size)
	}
	dc.Stroke()

	// --- Path line ---
	if len(scene.Path) > 0 {
		dc.SetColor(ColorPathLine)
		dc.SetLineWidth(2)
		dc.MoveTo(float64(scene.Target.Col)*size+half, float64(scene.Target.Row)*size+half)
		for _, cell := range scene.Path {
			dc.LineTo(float64(cell.Col)*size+half, float64(cell.Row)*size+half)
		}
		dc.LineTo(float64(scene.Start.Col)*size+half, float64(scene.Start.Row)*size+half)
		dc.Stroke()
	}

	if options.Labels {
		dc.SetFontFace(basicfont.Face7x13)
		dc.SetColor(ColorBackground)
		for label, cell := range map[string]astar.Cell{"S": scene.Start, "T": scene.Target} {
			if scene.Grid.InBounds(cell) {
				dc.DrawStringAnchored(label, float64(cell.Col)*size+half, float64(cell.Row)*size+half, 0.5, 0.5)
			}
		}
	}

	return dc.Image(), nil
}

// WritePNG draws the scene and encodes it as PNG to w.
func WritePNG(w io.Writer, scene Scene, options Options) error {
	img, err := Draw(scene, options)
	if err != nil {
		return err
	}
	dc := gg.NewContextForImage(img)
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// SavePNG draws the scene to the file at path.
func SavePNG(path string, scene Scene, options Options) error {
	img, err := Draw(scene, options)
	if err != nil {
		return err
	}
	if err := gg.SavePNG(path, img); err != nil {
		return fmt.Errorf("save png: %w", err)
	}
	return nil
}

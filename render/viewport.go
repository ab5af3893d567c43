package render

import (
	"math"

	"github.com/lixenwraith/vi-merge/engine"
	"github.com/lixenwraith/vi-merge/parameter"
	"github.com/lixenwraith/vi-merge/vmath"
)

// Viewport maps world units to terminal cells
// A cell is treated as twice as tall as it is wide, so one row spans 2*Unit world units
type Viewport struct {
	Cols, Rows int // Screen size in cells

	OriginCol int // Column of world x=0
	OriginRow int // Row of world y=0
	UsedCols  int // Columns covering the world width
	UsedRows  int // Rows covering the world height, excluding the floor row

	Unit float64 // World units per column
}

// NewViewport fits bounds into a cols x rows screen below the HUD, centered horizontally
func NewViewport(b engine.Bounds, cols, rows int) Viewport {
	// One row reserved for the floor line
	avail := max(rows-parameter.HUDRows-1, 1)
	cols = max(cols, 1)

	unit := math.Max(b.Width/float64(cols), b.Height/(2*float64(avail)))
	if unit <= 0 {
		unit = 1
	}

	used := int(math.Ceil(b.Width / unit))
	return Viewport{
		Cols:      cols,
		Rows:      rows,
		OriginCol: max((cols-used)/2, 0),
		OriginRow: parameter.HUDRows,
		UsedCols:  used,
		UsedRows:  int(math.Ceil(b.Height / (2 * unit))),
		Unit:      unit,
	}
}

// Col returns the column containing world x
func (v Viewport) Col(x float64) int {
	return v.OriginCol + int(math.Floor(x/v.Unit))
}

// Row returns the row containing world y
func (v Viewport) Row(y float64) int {
	return v.OriginRow + int(math.Floor(y/(2*v.Unit)))
}

// ToCell returns the cell containing p
func (v Viewport) ToCell(p vmath.Vec2) (col, row int) {
	return v.Col(p.X), v.Row(p.Y)
}

// CellCenter returns the world position at the center of a cell
func (v Viewport) CellCenter(col, row int) vmath.Vec2 {
	return vmath.V2(
		(float64(col-v.OriginCol)+0.5)*v.Unit,
		(float64(row-v.OriginRow)+0.5)*2*v.Unit,
	)
}

// WorldX converts a mouse column to a world x
func (v Viewport) WorldX(col int) float64 {
	return v.CellCenter(col, v.OriginRow).X
}

// OnScreen reports whether a cell is inside the screen
func (v Viewport) OnScreen(col, row int) bool {
	return col >= 0 && row >= 0 && col < v.Cols && row < v.Rows
}

package render

import (
	"fmt"
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-merge/engine"
	"github.com/lixenwraith/vi-merge/parameter"
	"github.com/lixenwraith/vi-merge/vmath"
	"github.com/mattn/go-runewidth"
)

// Rect is a cell rectangle, X/Y inclusive, W/H in cells
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether a cell falls inside r
func (r Rect) Contains(col, row int) bool {
	return col >= r.X && col < r.X+r.W && row >= r.Y && row < r.Y+r.H
}

// Empty reports a zero-area rectangle
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Renderer draws world snapshots to a tcell screen
type Renderer struct {
	screen tcell.Screen
	bounds engine.Bounds
	vp     Viewport

	status string
	again  Rect

	bg tcell.Style
}

// NewRenderer creates a renderer sized to the current screen
func NewRenderer(screen tcell.Screen, bounds engine.Bounds) *Renderer {
	r := &Renderer{
		screen: screen,
		bounds: bounds,
		bg:     style(RGBText, RGBBackground),
	}
	r.Resize()
	return r
}

// Resize refits the viewport to the screen size
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.vp = NewViewport(r.bounds, w, h)
}

// Viewport returns the active world-to-cell mapping
func (r *Renderer) Viewport() Viewport { return r.vp }

// SetStatus sets the right-aligned HUD text
func (r *Renderer) SetStatus(s string) { r.status = s }

// HitAgain reports whether a click lands on the overlay button drawn last frame
func (r *Renderer) HitAgain(col, row int) bool {
	return !r.again.Empty() && r.again.Contains(col, row)
}

// Draw renders one frame
func (r *Renderer) Draw(s *engine.Snapshot) {
	r.screen.SetStyle(r.bg)
	r.screen.Clear()

	r.drawContainer()
	r.drawLifeline()
	for i := range s.Balls {
		r.drawBall(&s.Balls[i])
	}
	r.drawHUD(s)

	r.again = Rect{}
	switch {
	case s.GameOver:
		r.drawOverlay(parameter.LoseText, RGBLifeline)
	case s.GameWin:
		r.drawOverlay(parameter.WinText, RGBAccent)
	}

	r.screen.Show()
}

func (r *Renderer) set(col, row int, ch rune, st tcell.Style) {
	if r.vp.OnScreen(col, row) {
		r.screen.SetContent(col, row, ch, nil, st)
	}
}

// drawText writes s starting at col and returns the column after it
func (r *Renderer) drawText(col, row int, s string, st tcell.Style) int {
	for _, ch := range s {
		r.set(col, row, ch, st)
		col += max(runewidth.RuneWidth(ch), 1)
	}
	return col
}

func (r *Renderer) drawContainer() {
	st := style(RGBWall, RGBBackground)
	left := r.vp.Col(r.bounds.Left - r.vp.Unit/2)
	right := r.vp.Col(r.bounds.Right + r.vp.Unit/2)
	floor := r.vp.Row(r.bounds.FloorY)
	top := r.vp.OriginRow

	for row := top; row < floor; row++ {
		r.set(left, row, '│', st)
		r.set(right, row, '│', st)
	}
	r.set(left, floor, '└', st)
	r.set(right, floor, '┘', st)
	for col := left + 1; col < right; col++ {
		r.set(col, floor, '─', st)
	}
}

func (r *Renderer) drawLifeline() {
	st := style(RGBLifeline, RGBBackground)
	row := r.vp.Row(r.bounds.LifelineY)
	start := r.vp.Col(r.bounds.Left)
	end := r.vp.Col(r.bounds.Right - r.vp.Unit/2)

	period := parameter.LifelineDash + parameter.LifelineGap
	for col := start; col <= end; col++ {
		if (col-start)%period < parameter.LifelineDash {
			r.set(col, row, '-', st)
		}
	}
}

// drawBall fills every cell whose center lies inside the disc, then labels the center cell
func (r *Renderer) drawBall(b *engine.BallView) {
	color := RGBFromSkin(b.Skin)
	fill := style(color.Contrast(), color)

	c0, r0 := r.vp.ToCell(vmath.V2(b.Pos.X-b.Radius, b.Pos.Y-b.Radius))
	c1, r1 := r.vp.ToCell(vmath.V2(b.Pos.X+b.Radius, b.Pos.Y+b.Radius))
	rSq := b.Radius * b.Radius

	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			if vmath.DistSq(r.vp.CellCenter(col, row), b.Pos) <= rSq {
				r.set(col, row, ' ', fill)
			}
		}
	}

	label := strconv.Itoa(b.Level)
	col, row := r.vp.ToCell(b.Pos)
	r.drawText(col-(len(label)-1)/2, row, label, fill)
}

func (r *Renderer) drawHUD(s *engine.Snapshot) {
	st := style(RGBText, RGBBackground)
	accent := style(RGBAccent, RGBBackground)

	col := r.drawText(1, 0, fmt.Sprintf("Score %d", s.Score), st)
	col = r.drawText(col+3, 0, "Next ", st)
	r.drawText(col, 0, strconv.Itoa(s.NextLevel), accent)

	if r.status != "" {
		r.drawText(r.vp.Cols-runewidth.StringWidth(r.status)-1, 0, r.status, accent)
	}
}

// drawOverlay draws a centered message box with the Again button and records its rect
func (r *Renderer) drawOverlay(msg string, accent RGB) {
	panel := RGBBackground.Blend(RGBBlack, 0.5)
	box := style(RGBText, panel)
	title := style(accent, panel)
	button := style(RGBBlack, accent)

	label := parameter.AgainButtonLabel
	w := max(runewidth.StringWidth(msg), runewidth.StringWidth(label)) + 4
	h := 5
	x := (r.vp.Cols - w) / 2
	y := (r.vp.Rows - h) / 2

	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			r.set(col, row, ' ', box)
		}
	}

	mw := runewidth.StringWidth(msg)
	r.drawText(x+(w-mw)/2, y+1, msg, title)

	lw := runewidth.StringWidth(label)
	bx := x + (w-lw)/2
	r.drawText(bx, y+3, label, button)
	r.again = Rect{X: bx, Y: y + 3, W: lw, H: 1}
}

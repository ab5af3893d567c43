package render

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-merge/config"
	"github.com/lixenwraith/vi-merge/engine"
	"github.com/lixenwraith/vi-merge/vmath"
)

func testBounds() engine.Bounds {
	return engine.NewWorld(config.Default(), nil, nil).Bounds()
}

// newTestScreen returns a 120x42 simulation screen; the default world maps at 10 units per column
func newTestScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Failed to init simulation screen: %v", err)
	}
	s.SetSize(120, 42)
	t.Cleanup(s.Fini)
	return s
}

func runeAt(s tcell.Screen, col, row int) rune {
	ch, _, _, _ := s.GetContent(col, row)
	return ch
}

func bgAt(s tcell.Screen, col, row int) tcell.Color {
	_, _, st, _ := s.GetContent(col, row)
	_, bg, _ := st.Decompose()
	return bg
}

func rowText(s tcell.Screen, row, cols int) string {
	var b strings.Builder
	for col := 0; col < cols; col++ {
		b.WriteRune(runeAt(s, col, row))
	}
	return b.String()
}

func TestViewportFit(t *testing.T) {
	vp := NewViewport(testBounds(), 120, 42)

	if vp.Unit != 10 {
		t.Errorf("Expected 10 units per column, got %f", vp.Unit)
	}
	if vp.OriginCol != 36 || vp.OriginRow != 1 {
		t.Errorf("Expected origin (36,1), got (%d,%d)", vp.OriginCol, vp.OriginRow)
	}
	if vp.UsedCols != 48 || vp.UsedRows != 40 {
		t.Errorf("Expected 48x40 world cells, got %dx%d", vp.UsedCols, vp.UsedRows)
	}
	if row := vp.Row(800); row != 41 {
		t.Errorf("Expected floor on last row 41, got %d", row)
	}
}

func TestViewportRoundTrip(t *testing.T) {
	vp := NewViewport(testBounds(), 120, 42)

	col, row := vp.ToCell(vmath.V2(240, 400))
	if col != 60 || row != 21 {
		t.Errorf("Expected cell (60,21), got (%d,%d)", col, row)
	}
	c := vp.CellCenter(col, row)
	if c.X != 245 || c.Y != 410 {
		t.Errorf("Expected center (245,410), got (%f,%f)", c.X, c.Y)
	}
	if x := vp.WorldX(36); x != 5 {
		t.Errorf("Expected world x 5 at first column, got %f", x)
	}
}

func TestViewportDegenerateScreen(t *testing.T) {
	vp := NewViewport(testBounds(), 0, 0)
	if vp.Unit <= 0 {
		t.Errorf("Expected positive unit, got %f", vp.Unit)
	}
}

func TestLevelPalette(t *testing.T) {
	p := NewLevelPalette()

	if got := p.Skin(1); got != 0xf7768e {
		t.Errorf("Expected skin 0xf7768e for level 1, got %#x", got)
	}
	if p.Color(0) != p.Color(1) {
		t.Error("Expected level below 1 to clamp to level 1")
	}
	if p.Color(99) != p.Color(10) {
		t.Error("Expected level past the table to reuse the last color")
	}
	if RGBFromSkin(p.Skin(5)) != p.Color(5) {
		t.Error("Expected skin to unpack to the level color")
	}
}

func TestContrast(t *testing.T) {
	if RGBWhite.Contrast() != RGBBlack {
		t.Error("Expected black text on white")
	}
	if RGBBlack.Contrast() != RGBWhite {
		t.Error("Expected white text on black")
	}
}

func TestDrawBall(t *testing.T) {
	screen := newTestScreen(t)
	palette := NewLevelPalette()
	r := NewRenderer(screen, testBounds())

	snap := &engine.Snapshot{
		Bounds:    testBounds(),
		NextLevel: 2,
		Balls: []engine.BallView{
			{Pos: vmath.V2(240, 400), Radius: 26, Level: 1, Skin: palette.Skin(1)},
		},
	}
	r.Draw(snap)

	if ch := runeAt(screen, 60, 21); ch != '1' {
		t.Errorf("Expected level label at ball center, got %q", ch)
	}
	want := RGBToTcell(palette.Color(1))
	if bg := bgAt(screen, 60, 21); bg != want {
		t.Errorf("Expected ball color at center, got %v", bg)
	}
	// Cell center (255, 410) is within 26 of (240, 400)
	if bg := bgAt(screen, 61, 21); bg != want {
		t.Errorf("Expected disc fill beside center, got %v", bg)
	}
	// Cell center (305, 410) is far outside
	if bg := bgAt(screen, 66, 21); bg == want {
		t.Error("Expected no fill outside the disc")
	}
}

func TestDrawContainerAndLifeline(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, testBounds())
	r.Draw(&engine.Snapshot{Bounds: testBounds()})

	if ch := runeAt(screen, 37, 5); ch != '│' {
		t.Errorf("Expected left wall, got %q", ch)
	}
	if ch := runeAt(screen, 82, 5); ch != '│' {
		t.Errorf("Expected right wall, got %q", ch)
	}
	if ch := runeAt(screen, 37, 41); ch != '└' {
		t.Errorf("Expected floor corner, got %q", ch)
	}
	if ch := runeAt(screen, 50, 41); ch != '─' {
		t.Errorf("Expected floor line, got %q", ch)
	}

	// Lifeline y=240 is row 13: dash of 3, gap of 2 from the left wall
	if ch := runeAt(screen, 38, 13); ch != '-' {
		t.Errorf("Expected lifeline dash, got %q", ch)
	}
	if ch := runeAt(screen, 41, 13); ch == '-' {
		t.Error("Expected lifeline gap")
	}
}

func TestDrawHUD(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, testBounds())
	r.SetStatus("PAUSED")
	r.Draw(&engine.Snapshot{Bounds: testBounds(), Score: 350, NextLevel: 3})

	hud := rowText(screen, 0, 120)
	if !strings.Contains(hud, "Score 350") {
		t.Errorf("Expected score in HUD, got %q", hud)
	}
	if !strings.Contains(hud, "Next 3") {
		t.Errorf("Expected preview in HUD, got %q", hud)
	}
	if !strings.HasSuffix(strings.TrimRight(hud, " "), "PAUSED") {
		t.Errorf("Expected right-aligned status, got %q", hud)
	}
}

func TestOverlayAndAgainButton(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, testBounds())

	r.Draw(&engine.Snapshot{Bounds: testBounds()})
	if r.HitAgain(55, 21) {
		t.Error("Expected no button without overlay")
	}

	r.Draw(&engine.Snapshot{Bounds: testBounds(), GameOver: true})

	// Box 13x5 at (53,18); label centered on row 21
	if ch := runeAt(screen, 55, 21); ch != '[' {
		t.Errorf("Expected button at (55,21), got %q", ch)
	}
	if !r.HitAgain(55, 21) || !r.HitAgain(63, 21) {
		t.Error("Expected clicks on the label to hit the button")
	}
	if r.HitAgain(64, 21) || r.HitAgain(55, 20) {
		t.Error("Expected clicks outside the label to miss")
	}
	if !strings.Contains(rowText(screen, 19, 120), "You lose") {
		t.Error("Expected lose text")
	}

	r.Draw(&engine.Snapshot{Bounds: testBounds(), GameWin: true})
	if !strings.Contains(rowText(screen, 19, 120), "You merged the top level!") {
		t.Error("Expected win text")
	}
}

func TestResizeRefits(t *testing.T) {
	screen := newTestScreen(t)
	r := NewRenderer(screen, testBounds())

	screen.SetSize(60, 22)
	r.Resize()

	if r.Viewport().Unit != 20 {
		t.Errorf("Expected 20 units per column after shrink, got %f", r.Viewport().Unit)
	}
	r.Draw(&engine.Snapshot{Bounds: testBounds(), GameOver: true})
}

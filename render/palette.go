package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-merge/component"
)

// levelHex is indexed by level-1; levels past the end reuse the last entry
var levelHex = []string{
	"#f7768e", // 1
	"#ff9e64", // 2
	"#e0af68", // 3
	"#9ece6a", // 4
	"#73daca", // 5
	"#7dcfff", // 6
	"#7aa2f7", // 7
	"#bb9af7", // 8
	"#c0caf5", // 9
	"#ffffff", // 10
}

// LevelPalette maps levels to terminal colors; implements engine.Palette
type LevelPalette struct {
	colors []RGB
}

// NewLevelPalette parses the built-in level colors
func NewLevelPalette() *LevelPalette {
	p := &LevelPalette{colors: make([]RGB, len(levelHex))}
	for i, hex := range levelHex {
		p.colors[i] = TcellToRGB(tcell.GetColor(hex))
	}
	return p
}

// Color returns the color for level, clamped into the table
func (p *LevelPalette) Color(level int) RGB {
	i := min(max(level-1, 0), len(p.colors)-1)
	return p.colors[i]
}

// Skin binds the level color at spawn time
func (p *LevelPalette) Skin(level int) component.Skin {
	return p.Color(level).Skin()
}

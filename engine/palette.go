package engine

import "github.com/lixenwraith/vi-merge/component"

// Palette binds a render skin to a level at spawn time
type Palette interface {
	Skin(level int) component.Skin
}

// PaletteFunc adapts a plain function to Palette
type PaletteFunc func(level int) component.Skin

func (f PaletteFunc) Skin(level int) component.Skin { return f(level) }

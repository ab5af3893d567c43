package render

import "github.com/lixenwraith/vi-merge/component"

// RGB stores explicit 8-bit color channels, decoupled from tcell
type RGB struct {
	R, G, B uint8
}

// Predefined colors
var (
	RGBBlack      = RGB{0, 0, 0}
	RGBWhite      = RGB{255, 255, 255}
	RGBBackground = RGB{26, 27, 38}
	RGBWall       = RGB{86, 95, 137}
	RGBLifeline   = RGB{247, 118, 142}
	RGBText       = RGB{192, 202, 245}
	RGBAccent     = RGB{224, 175, 104}
)

// Blend performs alpha blending: result = src*alpha + dst*(1-alpha)
func (dst RGB) Blend(src RGB, alpha float64) RGB {
	if alpha <= 0 {
		return dst
	}
	if alpha >= 1 {
		return src
	}
	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(dst.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(dst.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(dst.B)*inv),
	}
}

// Luma returns perceived brightness in [0, 255]
func (c RGB) Luma() float64 {
	return 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
}

// Contrast picks black or white text for legibility on c
func (c RGB) Contrast() RGB {
	if c.Luma() > 140 {
		return RGBBlack
	}
	return RGBWhite
}

// Skin packs the color as 0xRRGGBB
func (c RGB) Skin() component.Skin {
	return component.Skin(uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B))
}

// RGBFromSkin unpacks a 0xRRGGBB skin
func RGBFromSkin(s component.Skin) RGB {
	return RGB{R: uint8(s >> 16), G: uint8(s >> 8), B: uint8(s)}
}

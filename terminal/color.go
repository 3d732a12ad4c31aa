package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// ansi16 holds the reference RGB values of the 16 ANSI colors, taken from tcell's palette table
var ansi16 [16]colorful.Color

func init() {
	for i := range ansi16 {
		r, g, b := tcell.PaletteColor(i).RGB()
		ansi16[i] = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	}
}

// AnsiIndex maps a screen color to a 16-color palette index, -1 for the terminal default
// Palette colors 0-15 map to themselves; extended palette and RGB colors fold to the nearest entry in Lab space
func AnsiIndex(c tcell.Color) int {
	if !c.Valid() {
		return -1
	}
	if !c.IsRGB() {
		if idx := int(c - tcell.ColorValid); idx >= 0 && idx < len(ansi16) {
			return idx
		}
	}
	r, g, b := c.RGB()
	if r < 0 {
		return -1
	}
	return nearestAnsi(colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255})
}

func nearestAnsi(c colorful.Color) int {
	best := 0
	bestDist := c.DistanceLab(ansi16[0])
	for i := 1; i < len(ansi16); i++ {
		if d := c.DistanceLab(ansi16[i]); d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

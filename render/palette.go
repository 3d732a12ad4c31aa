package render

import "github.com/gdamore/tcell/v2"

// Palette maps color slots to screen styles for the color depth of the terminal
type Palette struct {
	colors [SlotCount]tcell.Color
	mono   bool
}

// NewPalette builds the slot mapping for a screen reporting colors addressable colors
// 16 or more: slots map to palette indices directly
// 8 to 15: bright slots fold onto their base color and gray shows as white
// fewer than 8 or noir: no color, bold only
func NewPalette(colors int, noir bool) Palette {
	p := Palette{mono: noir || colors < 8}
	if p.mono {
		for i := range p.colors {
			p.colors[i] = tcell.ColorDefault
		}
		return p
	}

	for i := range p.colors {
		idx := i
		if colors < 16 && i >= 8 {
			idx = i - 8
			if Slot(i) == SlotGray {
				idx = int(SlotWhite)
			}
		}
		p.colors[i] = tcell.PaletteColor(idx)
	}
	p.colors[SlotDefault] = tcell.ColorDefault
	return p
}

// Mono reports whether the palette renders intensity only
func (p Palette) Mono() bool { return p.mono }

// Color returns the screen color for slot
func (p Palette) Color(s Slot) tcell.Color {
	if int(s) >= SlotCount {
		return tcell.ColorDefault
	}
	return p.colors[s]
}

// Style converts a cell style into a screen style on the terminal's default background
func (p Palette) Style(s Style) tcell.Style {
	st := tcell.StyleDefault.Foreground(p.Color(s.Slot))
	if s.Bold {
		st = st.Bold(true)
	}
	return st
}

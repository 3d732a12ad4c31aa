package render

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Rect is a screen-space rectangle
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the screen point lies inside the rectangle
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Empty reports a zero-area rectangle
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Surface is an owned cell grid placed on the screen at Rect, composed at its Layer
// Coordinates passed to writers are surface-local. Writes outside the grid are dropped
type Surface struct {
	layer Layer
	rect  Rect
	cells []Cell
	dirty bool
}

// NewSurface allocates a blank surface. Negative sizes are treated as zero
func NewSurface(layer Layer, rect Rect) *Surface {
	if rect.Width < 0 {
		rect.Width = 0
	}
	if rect.Height < 0 {
		rect.Height = 0
	}
	return &Surface{
		layer: layer,
		rect:  rect,
		cells: make([]Cell, rect.Width*rect.Height),
		dirty: true,
	}
}

// Layer returns the stacking layer
func (s *Surface) Layer() Layer { return s.layer }

// Rect returns the screen placement
func (s *Surface) Rect() Rect { return s.rect }

// Size returns the grid dimensions
func (s *Surface) Size() (width, height int) {
	return s.rect.Width, s.rect.Height
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.rect.Width && y >= 0 && y < s.rect.Height
}

// Get returns the cell at local coordinates, zero Cell when out of bounds
func (s *Surface) Get(x, y int) Cell {
	if !s.inBounds(x, y) {
		return Cell{}
	}
	return s.cells[y*s.rect.Width+x]
}

// Clear blanks every cell
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = Cell{}
	}
	s.dirty = true
}

// Put writes a branch glyph at (x, y)
// The glyph is written only when x is a multiple of the display width of its first rune,
// which keeps wide glyphs from being split by neighbouring writes. Returns whether that rule let the write through
func (s *Surface) Put(x, y int, glyph string, style Style) bool {
	if glyph == "" {
		return false
	}
	w := GlyphWidth(glyph)
	if x%w != 0 {
		return false
	}
	s.SetString(x, y, glyph, style)
	return true
}

// GlyphWidth returns the display width of the first rune of glyph, at least 1
func GlyphWidth(glyph string) int {
	r, _ := utf8.DecodeRuneInString(glyph)
	if w := runewidth.RuneWidth(r); w > 1 {
		return w
	}
	return 1
}

// SetString writes text left to right starting at (x, y) without wrapping
// Returns the column after the last cell written or skipped
func (s *Surface) SetString(x, y int, text string, style Style) int {
	state := -1
	rest := text
	var cluster string
	for len(rest) > 0 {
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := runewidth.StringWidth(cluster)
		if w == 0 {
			continue
		}
		s.setCluster(x, y, cluster, w, style)
		x += w
	}
	return x
}

// setCluster places one grapheme cluster of width w, dropping it when any of its cells would fall outside
func (s *Surface) setCluster(x, y int, cluster string, w int, style Style) {
	if !s.inBounds(x, y) || !s.inBounds(x+w-1, y) {
		return
	}
	for i := 0; i < w; i++ {
		s.clearAt(x+i, y)
	}

	runes := []rune(cluster)
	idx := y*s.rect.Width + x
	s.cells[idx] = Cell{
		Rune:  runes[0],
		Width: w,
		Style: style,
	}
	if len(runes) > 1 {
		s.cells[idx].Combining = runes[1:]
	}
	for i := 1; i < w; i++ {
		s.cells[idx+i] = Cell{Cont: true, Style: style}
	}
	s.dirty = true
}

// clearAt removes whatever glyph occupies (x, y), including the rest of a wide glyph
func (s *Surface) clearAt(x, y int) {
	row := y * s.rect.Width
	lead := x
	for lead > 0 && s.cells[row+lead].Cont {
		lead--
	}
	c := s.cells[row+lead]
	if c.Rune == 0 && !c.Cont {
		return
	}
	span := c.Width
	if span < 1 {
		span = 1
	}
	for i := 0; i < span && lead+i < s.rect.Width; i++ {
		s.cells[row+lead+i] = Cell{}
	}
}

// Fill sets every cell in the local rectangle r to ch
func (s *Surface) Fill(r Rect, ch rune, style Style) {
	for y := r.Y; y < r.Y+r.Height; y++ {
		for x := r.X; x < r.X+r.Width; x++ {
			if s.inBounds(x, y) {
				s.clearAt(x, y)
				s.cells[y*s.rect.Width+x] = Cell{Rune: ch, Width: 1, Style: style}
			}
		}
	}
	s.dirty = true
}

// Border draws a box on the outer ring of the surface
func (s *Surface) Border(b BorderSet, style Style) {
	w, h := s.rect.Width, s.rect.Height
	if w < 2 || h < 2 {
		return
	}
	s.Fill(Rect{X: 1, Y: 0, Width: w - 2, Height: 1}, b.Top, style)
	s.Fill(Rect{X: 1, Y: h - 1, Width: w - 2, Height: 1}, b.Bottom, style)
	s.Fill(Rect{X: 0, Y: 1, Width: 1, Height: h - 2}, b.Left, style)
	s.Fill(Rect{X: w - 1, Y: 1, Width: 1, Height: h - 2}, b.Right, style)
	s.Fill(Rect{X: 0, Y: 0, Width: 1, Height: 1}, b.TopLeft, style)
	s.Fill(Rect{X: w - 1, Y: 0, Width: 1, Height: 1}, b.TopRight, style)
	s.Fill(Rect{X: 0, Y: h - 1, Width: 1, Height: 1}, b.BottomLeft, style)
	s.Fill(Rect{X: w - 1, Y: h - 1, Width: 1, Height: 1}, b.BottomRight, style)
}

// BorderSet holds the glyphs for a box outline
type BorderSet struct {
	Left, Right, Top, Bottom                   rune
	TopLeft, TopRight, BottomLeft, BottomRight rune
}

// BorderASCII is the plain ASCII outline used around messages
var BorderASCII = BorderSet{
	Left: '|', Right: '|', Top: '-', Bottom: '-',
	TopLeft: '+', TopRight: '+', BottomLeft: '+', BottomRight: '+',
}

// takeDirty reports and resets the change flag
func (s *Surface) takeDirty() bool {
	d := s.dirty
	s.dirty = false
	return d
}

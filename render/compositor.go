package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/bonsai/wrap"
)

// Geometry is the screen placement of every surface for one terminal size
type Geometry struct {
	Screen        Rect
	Tree          Rect
	Base          Rect
	MessageBorder Rect
	Message       Rect
}

// messageAnchor places the message box at this fraction of the screen on both axes
const messageAnchor = 0.7

// ComputeLayout derives surface rectangles for a width x height terminal
// The tree takes every row above the base art; the message box is anchored at 70% of the screen
func ComputeLayout(width, height int, base Base, message string) Geometry {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	g := Geometry{Screen: Rect{Width: width, Height: height}}

	bw, bh := base.Size()
	g.Base = Rect{
		X:      width/2 - bw/2,
		Y:      height - bh - base.Overlap(),
		Width:  bw,
		Height: bh,
	}
	treeHeight := height - bh
	if treeHeight < 0 {
		treeHeight = 0
	}
	g.Tree = Rect{Width: width, Height: treeHeight}

	if message != "" {
		boxW, boxH := wrap.BoxSize(message, width)
		mx := int(float64(width) * messageAnchor)
		my := int(float64(height) * messageAnchor)
		g.MessageBorder = Rect{X: mx - 2, Y: my - 1, Width: boxW + 4, Height: boxH + 2}
		g.Message = Rect{X: mx, Y: my, Width: boxW + 1, Height: boxH}
	}
	return g
}

// Compositor owns the layered surfaces of one tree and presents them on a tcell screen
type Compositor struct {
	screen   tcell.Screen
	palette  Palette
	geometry Geometry
	surfaces [layerCount]*Surface
	stale    bool
}

// NewCompositor binds a compositor to screen. noir drops color and keeps bold
func NewCompositor(screen tcell.Screen, noir bool) *Compositor {
	return &Compositor{
		screen:  screen,
		palette: NewPalette(screen.Colors(), noir),
	}
}

// Layout discards all surfaces and rebuilds them for the current screen size,
// painting the base art and message box. Called for every new tree and after every resize
func (c *Compositor) Layout(base Base, message string) Geometry {
	for i := range c.surfaces {
		c.surfaces[i] = nil
	}

	w, h := c.screen.Size()
	g := ComputeLayout(w, h, base, message)
	c.geometry = g

	c.surfaces[LayerTree] = NewSurface(LayerTree, g.Tree)
	if !g.Base.Empty() {
		c.surfaces[LayerBase] = NewSurface(LayerBase, g.Base)
		DrawBase(c.surfaces[LayerBase], base)
	}
	if message != "" {
		c.surfaces[LayerMessageBorder] = NewSurface(LayerMessageBorder, g.MessageBorder)
		c.surfaces[LayerMessage] = NewSurface(LayerMessage, g.Message)
		DrawMessage(c.surfaces[LayerMessageBorder], c.surfaces[LayerMessage], message)
	}

	c.screen.Clear()
	c.stale = true
	return g
}

// Geometry returns the placement computed by the last Layout
func (c *Compositor) Geometry() Geometry { return c.geometry }

// Surface returns the surface at layer l, nil if the layer is absent
func (c *Compositor) Surface(l Layer) *Surface {
	if l < 0 || l >= layerCount {
		return nil
	}
	return c.surfaces[l]
}

// Tree returns the canvas the growth engine draws into
func (c *Compositor) Tree() *Surface { return c.surfaces[LayerTree] }

// Palette returns the color mapping in effect
func (c *Compositor) Palette() Palette { return c.palette }

// Compose writes every surface into the screen's back buffer, lowest layer first
// Each surface covers its whole rectangle, blank cells included
// Returns false when nothing changed since the previous compose
func (c *Compositor) Compose() bool {
	changed := c.stale
	for _, s := range c.surfaces {
		if s != nil && s.takeDirty() {
			changed = true
		}
	}
	if !changed {
		return false
	}
	c.stale = false

	sw, sh := c.screen.Size()
	for _, s := range c.surfaces {
		if s == nil {
			continue
		}
		r := s.Rect()
		for y := 0; y < r.Height; y++ {
			py := r.Y + y
			if py < 0 || py >= sh {
				continue
			}
			for x := 0; x < r.Width; x++ {
				px := r.X + x
				if px < 0 || px >= sw {
					continue
				}
				cell := s.Get(x, y)
				if cell.Cont {
					continue
				}
				ch := cell.Rune
				if ch == 0 {
					ch = ' '
				}
				c.screen.SetContent(px, py, ch, cell.Combining, c.palette.Style(cell.Style))
			}
		}
	}
	return true
}

// Flush composes changed surfaces and lets the screen push the difference to the terminal
// Cheap to call every animation step: an unchanged frame costs a dirty-flag scan
func (c *Compositor) Flush() {
	if c.Compose() {
		c.screen.Show()
	}
}

// Invalidate forces the next Flush to recompose every surface
func (c *Compositor) Invalidate() {
	c.stale = true
}

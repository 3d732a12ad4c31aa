package render

// Slot is a named color slot. Values follow the 16-color terminal palette order
// SlotDefault (0) means the terminal's own foreground color
type Slot uint8

const (
	SlotDefault Slot = iota
	SlotRed
	SlotGreen
	SlotYellow
	SlotBlue
	SlotMagenta
	SlotCyan
	SlotWhite
	SlotGray
	SlotBrightRed
	SlotBrightGreen
	SlotBrightYellow
	SlotBrightBlue
	SlotBrightMagenta
	SlotBrightCyan
	SlotBrightWhite
)

// SlotCount is the size of the fixed palette
const SlotCount = 16

// Style is the per-cell attribute pair applied together with the glyph
type Style struct {
	Slot Slot
	Bold bool
}

// StyleDefault is the unstyled cell
var StyleDefault = Style{}

// Cell is one grid position of a surface
// A wide glyph stores its runes in the leading cell, the following Width-1 cells are continuation cells
type Cell struct {
	Rune      rune
	Combining []rune
	Width     int
	Style     Style
	Cont      bool // reserved by the wide glyph to the left
}

// Empty reports whether nothing was written to the cell
func (c Cell) Empty() bool {
	return c.Rune == 0 && !c.Cont
}

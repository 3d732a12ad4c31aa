package render

import (
	"fmt"
	"strconv"
	"strings"
)

// Base selects the static art drawn under the tree and the trunk branching table
type Base int

const (
	BaseNone  Base = iota
	BaseBowl       // wide bowl with feet
	BasePot        // small round pot
	BaseRoots      // organic trunk foot with spreading roots
	baseCount
)

var baseNames = [baseCount]string{
	BaseNone:  "none",
	BaseBowl:  "bowl",
	BasePot:   "pot",
	BaseRoots: "roots",
}

func (b Base) String() string {
	if !b.Valid() {
		return "unknown"
	}
	return baseNames[b]
}

// Valid reports whether b is a known style
func (b Base) Valid() bool {
	return b >= 0 && b < baseCount
}

// ParseBase resolves a style by name
func ParseBase(name string) (Base, bool) {
	for i, n := range baseNames {
		if n == name {
			return Base(i), true
		}
	}
	return BaseNone, false
}

// MarshalText encodes the style as its index
func (b Base) MarshalText() ([]byte, error) {
	return []byte(strconv.Itoa(int(b))), nil
}

// UnmarshalText accepts an index (0-3) or a style name
func (b *Base) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if n, err := strconv.Atoi(s); err == nil {
		if !Base(n).Valid() {
			return fmt.Errorf("invalid base index %q", s)
		}
		*b = Base(n)
		return nil
	}
	v, ok := ParseBase(strings.ToLower(s))
	if !ok {
		return fmt.Errorf("invalid base %q", s)
	}
	*b = v
	return nil
}

// Organic reports whether the style uses the wide curved trunk table
func (b Base) Organic() bool {
	return b == BaseRoots
}

// Size returns the fixed art dimensions
func (b Base) Size() (width, height int) {
	switch b {
	case BaseBowl:
		return 31, 4
	case BasePot:
		return 15, 3
	case BaseRoots:
		return 35, 4
	}
	return 0, 0
}

// Overlap is the number of rows the art sits above the bottom of the tree area
// BaseRoots rises one row so its trunk stub meets the first drawn trunk step
func (b Base) Overlap() int {
	if b == BaseRoots {
		return 1
	}
	return 0
}

type artSpan struct {
	row, col int
	text     string
	style    Style
}

var (
	artGray   = Style{Slot: SlotGray}
	artGreen  = Style{Slot: SlotGreen}
	artTrunk  = Style{Slot: SlotBrightYellow}
	artBrown  = Style{Slot: SlotYellow}
	artGrayB  = Style{Slot: SlotGray, Bold: true}
	artGreenB = Style{Slot: SlotGreen, Bold: true}
	artTrunkB = Style{Slot: SlotBrightYellow, Bold: true}
)

var baseArt = [baseCount][]artSpan{
	BaseBowl: {
		{0, 0, ":", artGrayB},
		{0, 1, "___________", artGreenB},
		{0, 12, "./~~~\\.", artTrunkB},
		{0, 19, "___________", artGreenB},
		{0, 30, ":", artGrayB},
		{1, 0, " \\                           / ", artGrayB},
		{2, 0, "  \\_________________________/ ", artGrayB},
		{3, 0, "  (_)                     (_)", artGrayB},
	},
	BasePot: {
		{0, 0, "(", artGray},
		{0, 1, "---", artGreen},
		{0, 4, "./~~~\\.", artTrunk},
		{0, 11, "---", artGreen},
		{0, 14, ")", artGray},
		{1, 0, " (           ) ", artGray},
		{2, 0, "  (_________)  ", artGray},
	},
	BaseRoots: {
		{0, 16, "###", artBrown},
		{1, 15, "#####", artBrown},
		{2, 14, "*", artGray},
		{2, 15, "#####", artBrown},
		{2, 20, "*", artGray},
		{3, 0, ".::--==++", artGray},
		{3, 9, "****#########****", artBrown},
		{3, 26, "++==--::.", artGray},
	},
}

// DrawBase paints the art for b onto s. Spans outside s are clipped
func DrawBase(s *Surface, b Base) {
	if !b.Valid() {
		return
	}
	for _, span := range baseArt[b] {
		s.SetString(span.col, span.row, span.text, span.style)
	}
}

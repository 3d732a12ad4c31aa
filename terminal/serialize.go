package terminal

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
)

// SerializeOptions controls the styling carried into the byte stream
type SerializeOptions struct {
	// Noir drops foreground color and keeps bold
	Noir bool
}

// sgrState is the attribute pair the stream currently carries
type sgrState struct {
	bold bool
	fg   int // 1-15, 0 for none
}

func (s sgrState) styled() bool {
	return s.bold || s.fg != 0
}

// Serialize writes every row of screen's cell buffer to w as text with ANSI styling
// Each row ends with a reset when it left a style open, then a newline
func Serialize(w io.Writer, screen tcell.Screen, opts SerializeOptions) error {
	bw := bufio.NewWriter(w)
	width, height := screen.Size()

	for y := 0; y < height; y++ {
		var cur sgrState
		for x := 0; x < width; {
			mainc, combc, style, cw := screen.GetContent(x, y)
			fg, _, attr := style.Decompose()

			next := sgrState{bold: attr&tcell.AttrBold != 0}
			if !opts.Noir {
				if idx := AnsiIndex(fg); idx > 0 {
					next.fg = idx
				}
			}
			writeStyleCoalesced(bw, cur, next)
			cur = next

			if mainc == 0 {
				mainc = ' '
			}
			bw.WriteRune(mainc)
			for _, r := range combc {
				bw.WriteRune(r)
			}

			// padding columns of a wide glyph are not re-emitted
			if cw < 1 {
				cw = 1
			}
			x += cw
		}
		if cur.styled() {
			bw.Write(csiSGR0)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// writeStyleCoalesced emits a single SGR sequence when the style changes
func writeStyleCoalesced(w *bufio.Writer, last, next sgrState) {
	if last == next {
		return
	}
	if !next.styled() {
		w.Write(csiSGR0)
		return
	}

	// reset first so dropped attributes do not linger
	w.Write(csi)
	w.WriteByte('0')
	if next.bold {
		w.WriteByte(';')
		writeInt(w, sgrBold)
	}
	if next.fg > 0 {
		w.WriteByte(';')
		if next.fg < 8 {
			writeInt(w, sgrFgBase+next.fg)
		} else {
			writeInt(w, sgrFgBright+next.fg-8)
		}
	}
	w.WriteByte('m')
}

package render

import (
	"github.com/lixenwraith/bonsai/wrap"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// MessageBorderStyle is the outline style of the message box
var MessageBorderStyle = Style{Slot: SlotGray, Bold: true}

// DrawMessage outlines border and writes the wrapped message into body
// Lines wider than body continue on the following row, rows past the bottom are dropped
func DrawMessage(border, body *Surface, message string) {
	if border == nil || body == nil || message == "" {
		return
	}
	border.Border(BorderASCII, MessageBorderStyle)

	w, _ := body.Size()
	layout := wrap.Wrap(message, w-2)

	y := 0
	for _, line := range layout.Lines {
		x := 0
		state := -1
		rest := line
		var cluster string
		for len(rest) > 0 {
			cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
			cw := runewidth.StringWidth(cluster)
			if cw == 0 {
				continue
			}
			if x+cw > w {
				x = 0
				y++
			}
			body.SetString(x, y, cluster, StyleDefault)
			x += cw
		}
		y++
	}
}

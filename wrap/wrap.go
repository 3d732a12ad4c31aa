// Package wrap lays a message out into lines of bounded width.
//
// Words are never split: a word wider than the line is kept whole on a line of its own.
// Widths are terminal cell widths, so wide runes count double.
package wrap

import (
	"strings"
	"unicode"

	"github.com/mattn/go-runewidth"
)

// Layout is the result of wrapping a message
type Layout struct {
	Lines    []string
	MaxWidth int
	// Pos is the column the next character would land on after the last line
	Pos int
}

// writer tracks the line being built and its column
type writer struct {
	lines []string
	cur   strings.Builder
	pos   int
}

func (w *writer) newline() {
	w.lines = append(w.lines, w.cur.String())
	w.cur.Reset()
	w.pos = 0
}

func (w *writer) write(s string, width int) {
	w.cur.WriteString(s)
	w.pos += width
}

// Wrap lays out message for lines of at most maxWidth columns
func Wrap(message string, maxWidth int) Layout {
	if maxWidth < 1 {
		maxWidth = 1
	}

	var (
		w         writer
		word      strings.Builder
		wordWidth int
		// set by a separator that ended a full line, so the next separators are dropped
		broke bool
	)

	// whitespace after an emitted word: space and tab take a column when room remains and
	// end the line when it is full, newline breaks
	space := func(r rune) {
		switch r {
		case ' ', '\t':
			switch {
			case broke:
			case w.pos < maxWidth-1:
				w.write(" ", 1)
			default:
				w.newline()
				broke = true
			}
		case '\n':
			w.newline()
			broke = false
		}
	}

	flush := func(r rune, end bool) {
		if wordWidth > 0 {
			broke = false
		}
		switch {
		case w.pos+wordWidth <= maxWidth:
			w.write(word.String(), wordWidth)
			if !end {
				space(r)
			}

		case wordWidth > maxWidth:
			if w.cur.Len() > 0 {
				w.newline()
			}
			w.write(word.String(), wordWidth)
			w.newline()

		default:
			w.newline()
			w.write(word.String(), wordWidth)
			if !end {
				space(r)
			}
		}
		word.Reset()
		wordWidth = 0
	}

	for _, r := range message {
		if unicode.IsSpace(r) {
			flush(r, false)
			continue
		}
		word.WriteRune(r)
		wordWidth += runewidth.RuneWidth(r)
	}
	flush(0, true)

	lines := w.lines
	if w.cur.Len() > 0 || len(lines) == 0 {
		lines = append(lines, w.cur.String())
	}
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}

	return Layout{Lines: lines, MaxWidth: maxWidth, Pos: w.pos}
}

// Rows counts the screen rows the layout occupies on a surface of the given width,
// with lines longer than the surface continuing on the next row
func (l Layout) Rows(surfaceWidth int) int {
	if surfaceWidth < 1 {
		surfaceWidth = 1
	}
	rows := 0
	for _, line := range l.Lines {
		n := runewidth.StringWidth(line)
		if n == 0 {
			rows++
			continue
		}
		rows += (n + surfaceWidth - 1) / surfaceWidth
	}
	return rows
}

// BoxSize returns the inner width and height of the message box for a terminal of termWidth columns
// A message that fits in a quarter of the terminal sits on one line, longer ones wrap at that quarter
func BoxSize(message string, termWidth int) (width, height int) {
	if message == "" {
		return 0, 0
	}
	n := runewidth.StringWidth(message)
	quarter := float64(termWidth) * 0.25

	if float64(n+3) <= quarter {
		width = n + 1
		height = Wrap(message, width-1).Rows(width + 1)
	} else {
		width = int(quarter)
		if width < 2 {
			width = 2
		}
		height = Wrap(message, width-1).Rows(width + 1)
	}
	if height < 1 {
		height = 1
	}
	return width, height
}

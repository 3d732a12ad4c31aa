package terminal

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Fallback size when the output is not a terminal
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// PrintNoir reports whether print output written to w should carry no color
// NO_COLOR and CLICOLOR=0 always win. A terminal that only supports plain text also disables color
// Redirected output keeps color so saved trees replay as they were shown
func PrintNoir(w io.Writer) bool {
	out := termenv.NewOutput(w)
	if out.EnvNoColor() {
		return true
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return out.EnvColorProfile() == termenv.Ascii
	}
	return false
}

// Size returns the dimensions of the terminal behind f, DefaultWidth x DefaultHeight when unknown
func Size(f *os.File) (width, height int) {
	if f != nil {
		if w, h, err := term.GetSize(int(f.Fd())); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return DefaultWidth, DefaultHeight
}

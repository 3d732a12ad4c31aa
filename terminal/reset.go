package terminal

import (
	"io"
	"os"
)

// EmergencyReset attempts to restore the terminal to a sane state
// Call this from panic recovery when the screen could not be finalized normally
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	// escape sequences alone leave the tty in raw mode
	resetTerminalMode()
}

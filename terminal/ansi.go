package terminal

import (
	"bufio"
)

// Pre-allocated ANSI sequence fragments
var (
	csi     = []byte("\x1b[")
	csiSGR0 = []byte("\x1b[0m")

	csiCursorShow    = []byte("\x1b[?25h")
	csiAltScreenExit = []byte("\x1b[?1049l")
	csiAutoWrapOn    = []byte("\x1b[?7h")
)

// SGR parameter codes
const (
	sgrBold     = 1
	sgrFgBase   = 30 // 30-37
	sgrFgBright = 90 // 90-97
)

// writeInt writes a small non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
		return
	}
	if n < 100 {
		w.WriteByte(byte(n/10) + '0')
		w.WriteByte(byte(n%10) + '0')
		return
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	w.Write(buf[i:])
}

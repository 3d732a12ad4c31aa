package terminal

import (
	"bytes"
	"testing"
)

func TestEmergencyResetRestoresScreenModes(t *testing.T) {
	var buf bytes.Buffer
	EmergencyReset(&buf)

	out := buf.Bytes()
	tests := []struct {
		name string
		seq  []byte
	}{
		{"cursor shown", csiCursorShow},
		{"alternate screen left", csiAltScreenExit},
		{"attributes reset", csiSGR0},
		{"auto wrap restored", csiAutoWrapOn},
	}
	for _, tt := range tests {
		if !bytes.Contains(out, tt.seq) {
			t.Errorf("%s: expected %q in %q", tt.name, tt.seq, out)
		}
	}
}

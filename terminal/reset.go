package terminal

import (
	"io"
	"os"
)

// EmergencyReset writes the sequences that leave the alternate screen and
// restore cursor, colours and wrapping, then tries to put the controlling tty
// back into cooked mode. Errors are ignored; this runs from crash paths
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiAltScreenExit)
	w.Write(csiSGR0)
	w.Write(csiAutoWrapOn)
	w.Write(csiRIS)

	if f, ok := w.(*os.File); ok {
		f.Sync()
	}

	resetTerminalMode()
}

package terminal

import "bufio"

// Pre-allocated ANSI sequence fragments
var (
	csi           = []byte("\x1b[")
	csiClear      = []byte("\x1b[2J\x1b[H")
	csiRIS        = []byte("\x1bc") // Reset to Initial State (emergency)
	csiSGR0       = []byte("\x1b[0m")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiAltScreenEnter = []byte("\x1b[?1049h")
	csiAltScreenExit  = []byte("\x1b[?1049l")
	// ?7l keeps the cursor at the right edge so the bottom-right cell does not scroll
	csiAutoWrapOn  = []byte("\x1b[?7h")
	csiAutoWrapOff = []byte("\x1b[?7l")
)

// writeInt writes a non-negative integer without allocation
func writeInt(w *bufio.Writer, n int) {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		w.WriteByte(byte(n) + '0')
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

// writeCursorPos writes a cursor positioning sequence (0-indexed input)
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y+1)
	w.WriteByte(';')
	writeInt(w, x+1)
	w.WriteByte('H')
}

// writeCursorForward moves the cursor right n columns
func writeCursorForward(w *bufio.Writer, n int) {
	if n <= 0 {
		return
	}
	w.Write(csi)
	if n > 1 {
		writeInt(w, n)
	}
	w.WriteByte('C')
}

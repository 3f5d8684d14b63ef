//go:build !linux

package terminal

// resetTerminalMode is a no-op where the termios ioctls are not wired
func resetTerminalMode() {}

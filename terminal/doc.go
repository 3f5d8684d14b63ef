// Package terminal presents finished frames on a terminal.
//
// Two presenters are provided:
//   - ANSISink writes ANSI sequences to any io.Writer, diffing against the
//     previous frame and degrading colours through a termenv profile
//   - ScreenSink draws through a tcell screen
//
// EmergencyReset restores a terminal left in raw or alternate-screen mode.
package terminal

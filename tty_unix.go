//go:build unix

package passterm

import (
	"io"
	"os"
)

// openTTY opens the controlling terminal device, giving a true
// hidden-input channel even when stdin has been redirected.
func openTTY() (*os.File, error) {
	return os.OpenFile("/dev/tty", os.O_RDWR, 0)
}

// ttyPromptWriter returns the sink prompts should go to when reading from
// the controlling terminal. /dev/tty is writable, so prompts land on the
// user's screen regardless of where stdout points.
func ttyPromptWriter(tty *os.File) io.Writer {
	return tty
}

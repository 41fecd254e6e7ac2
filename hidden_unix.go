//go:build unix

package passterm

import "golang.org/x/sys/unix"

// Unix terminals keep echoing the newline themselves because ECHONL stays
// set while echo is suppressed.
const echoesNewline = true

// termiosConsole controls echo through the termios local-mode flags of a
// terminal file descriptor.
type termiosConsole struct {
	fd   int
	orig unix.Termios
}

func newConsole(fd uintptr) console {
	return &termiosConsole{fd: int(fd)}
}

func (c *termiosConsole) suppressEcho() error {
	t, err := unix.IoctlGetTermios(c.fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	c.orig = *t

	// Hide the typed characters, but keep echoing the newline so the
	// user still sees the cursor advance on Enter.
	t.Lflag &^= unix.ECHO
	t.Lflag |= unix.ECHONL

	return unix.IoctlSetTermios(c.fd, ioctlWriteTermios, t)
}

func (c *termiosConsole) restoreMode() error {
	orig := c.orig
	return unix.IoctlSetTermios(c.fd, ioctlWriteTermios, &orig)
}

package passterm

import (
	"os"
	"strings"
)

// Stream identifies one of the process's standard streams.
type Stream int

// The standard streams that IsTerminal can classify.
const (
	Stdin Stream = iota
	Stdout
	Stderr
)

// String returns the conventional name of the stream.
func (s Stream) String() string {
	switch s {
	case Stdout:
		return "stdout"
	case Stderr:
		return "stderr"
	default:
		return "stdin"
	}
}

// IsTerminal reports whether the given standard stream is attached to an
// interactive terminal, as opposed to a pipe or a redirected file.
//
// On Unix this is the kernel's answer and cannot be wrong. On Windows a
// native console is checked first; if no std handle has one, a heuristic
// recognizes msys/cygwin pseudo-terminals, which do not register as
// consoles. Classification never fails: if the platform query errors out,
// the stream is reported as not a terminal.
func IsTerminal(s Stream) bool {
	return isTerminal(s)
}

// streamFile maps a Stream to its *os.File.
func streamFile(s Stream) *os.File {
	switch s {
	case Stdout:
		return os.Stdout
	case Stderr:
		return os.Stderr
	default:
		return os.Stdin
	}
}

// isPTYName reports whether a console pipe name identifies an msys or
// cygwin pseudo-terminal, e.g. "\msys-1888ae32e00d56aa-pty0-to-master".
// A "pty" substring alone is not enough: a regular file could
// legitimately carry that name, so the emulator prefix must be present
// as well.
func isPTYName(name string) bool {
	if !strings.Contains(name, "msys-") && !strings.Contains(name, "cygwin-") {
		return false
	}
	return strings.Contains(name, "-pty")
}

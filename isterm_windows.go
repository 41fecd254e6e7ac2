//go:build windows

package passterm

import (
	"encoding/binary"
	"unicode/utf16"

	"golang.org/x/sys/windows"
)

// isTerminal classifies a std stream in three tiers. A console on the
// requested handle is authoritative. Failing that, a console on any other
// std handle means we are running in a real console host where redirection
// is visible, so the negative can be trusted. Only when neither check is
// conclusive do we fall back to the pseudo-terminal name heuristic:
// msys/cygwin terminals are named pipes, not consoles, and would otherwise
// always classify as non-interactive.
func isTerminal(s Stream) bool {
	h := windows.Handle(streamFile(s).Fd())
	if consoleOnAny(h) {
		return true
	}

	var others [2]Stream
	switch s {
	case Stdout:
		others = [2]Stream{Stdin, Stderr}
	case Stderr:
		others = [2]Stream{Stdin, Stdout}
	default:
		others = [2]Stream{Stdout, Stderr}
	}
	if consoleOnAny(windows.Handle(streamFile(others[0]).Fd()), windows.Handle(streamFile(others[1]).Fd())) {
		return false
	}

	return isPTYHandle(h)
}

func isTerminalFd(fd uintptr) bool {
	h := windows.Handle(fd)
	return consoleOnAny(h) || isPTYHandle(h)
}

// consoleOnAny reports whether any of the handles has an associated
// console. GetConsoleMode only succeeds on console handles.
func consoleOnAny(handles ...windows.Handle) bool {
	for _, h := range handles {
		var mode uint32
		if windows.GetConsoleMode(h, &mode) == nil {
			return true
		}
	}
	return false
}

// isPTYHandle reports whether h looks like an msys/cygwin pseudo-terminal
// pipe. Query failures classify as "not a terminal".
func isPTYHandle(h windows.Handle) bool {
	name, err := handleFileName(h)
	if err != nil {
		return false
	}
	return isPTYName(name)
}

// fileNameInfoClass is the FileNameInfo FILE_INFO_BY_HANDLE_CLASS value.
const fileNameInfoClass = 2

// handleFileName returns the canonical name of the file behind h, queried
// via GetFileInformationByHandleEx. The buffer layout is a DWORD length
// followed by that many bytes of UTF-16 name.
func handleFileName(h windows.Handle) (string, error) {
	buf := make([]byte, 4+windows.MAX_PATH*2)
	if err := windows.GetFileInformationByHandleEx(h, fileNameInfoClass, &buf[0], uint32(len(buf))); err != nil {
		return "", err
	}

	n := int(binary.LittleEndian.Uint32(buf[:4]))
	if n > len(buf)-4 {
		n = len(buf) - 4
	}
	name := make([]uint16, 0, n/2)
	for i := 4; i+1 < 4+n; i += 2 {
		name = append(name, binary.LittleEndian.Uint16(buf[i:]))
	}
	return string(utf16.Decode(name)), nil
}

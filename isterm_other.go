//go:build !unix && !windows

package passterm

// No terminal concept on this platform.
func isTerminal(Stream) bool {
	return false
}

func isTerminalFd(uintptr) bool {
	return false
}

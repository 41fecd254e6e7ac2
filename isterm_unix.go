//go:build unix

package passterm

import "golang.org/x/term"

// isTerminal asks the kernel directly. No fallback heuristics are needed
// on Unix and a false positive is not possible.
func isTerminal(s Stream) bool {
	return isTerminalFd(streamFile(s).Fd())
}

func isTerminalFd(fd uintptr) bool {
	return term.IsTerminal(int(fd))
}

package passterm

// console abstracts a terminal's mode operations for testability and
// cross-platform compatibility.
//
// The platform backends operate on entirely different state (a termios
// struct on Unix, a console mode word on Windows), so each is selected at
// build time behind this interface rather than branched on at runtime.
//
// Implementations:
//   - termiosConsole: Unix termios flags via golang.org/x/sys/unix
//   - conConsole: Windows console mode via golang.org/x/sys/windows
//   - mockConsole: deterministic in-memory mode for testing
type console interface {
	suppressEcho() error // Capture the current mode, then disable character echo
	restoreMode() error  // Reapply the captured mode exactly
}

// hiddenInput scopes echo suppression over a console. openHiddenInput
// captures the mode and applies the hidden one; restore puts the captured
// mode back and is expected to run on every exit path, normally via defer.
//
// Scopes are not reentrant per stream: a second acquisition on the same
// underlying stream before the first is released captures the
// already-suppressed mode as its snapshot. Releasing in reverse order
// still lands on the original mode, but callers performing concurrent
// secret reads on one stream must serialize externally.
type hiddenInput struct {
	c console
}

func openHiddenInput(c console) (*hiddenInput, error) {
	if err := c.suppressEcho(); err != nil {
		return nil, err
	}
	return &hiddenInput{c: c}, nil
}

// restore is best-effort. A restore failure would otherwise mask the
// read's own result, and a terminal left without echo is already the
// worst case.
func (h *hiddenInput) restore() {
	_ = h.c.restoreMode()
}

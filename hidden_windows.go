//go:build windows

package passterm

import "golang.org/x/sys/windows"

// A Windows console does not echo the newline while echo input is off,
// so the orchestrator prints one after the read.
const echoesNewline = false

// conConsole controls echo through the console input mode of a handle.
type conConsole struct {
	handle windows.Handle
	orig   uint32
}

func newConsole(fd uintptr) console {
	return &conConsole{handle: windows.Handle(fd)}
}

func (c *conConsole) suppressEcho() error {
	if err := windows.GetConsoleMode(c.handle, &c.orig); err != nil {
		return err
	}

	// Keep line buffering and key processing so Backspace still works;
	// leaving ENABLE_ECHO_INPUT out of the mode is what hides the input.
	mode := uint32(windows.ENABLE_LINE_INPUT | windows.ENABLE_PROCESSED_INPUT)
	return windows.SetConsoleMode(c.handle, mode)
}

func (c *conConsole) restoreMode() error {
	return windows.SetConsoleMode(c.handle, c.orig)
}

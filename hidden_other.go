//go:build !unix && !windows

package passterm

const echoesNewline = true

// unsupportedConsole fails acquisition so the hidden-input path is never
// entered on platforms without a terminal concept. IsTerminal always
// reports false there, so ReadSecret takes the transparent path anyway;
// this only guards direct use.
type unsupportedConsole struct{}

func newConsole(uintptr) console {
	return unsupportedConsole{}
}

func (unsupportedConsole) suppressEcho() error {
	return ErrUnsupported
}

func (unsupportedConsole) restoreMode() error {
	return nil
}

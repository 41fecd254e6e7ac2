//go:build !unix && !windows

package passterm

import (
	"io"
	"os"
)

func openTTY() (*os.File, error) {
	return nil, ErrUnsupported
}

func ttyPromptWriter(*os.File) io.Writer {
	return os.Stdout
}

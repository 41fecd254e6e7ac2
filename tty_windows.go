//go:build windows

package passterm

import (
	"io"
	"os"

	"github.com/mattn/go-colorable"
)

// openTTY opens the console input buffer directly, giving a true
// hidden-input channel even when stdin has been redirected.
func openTTY() (*os.File, error) {
	return os.OpenFile("CONIN$", os.O_RDWR, 0)
}

// CONIN$ only carries input; prompts go to the console's output side.
func ttyPromptWriter(*os.File) io.Writer {
	return colorable.NewColorableStdout()
}

package passterm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
)

// Common errors
var (
	// ErrInterrupted is returned by ReadSecretMasked when the user presses Ctrl+C.
	ErrInterrupted = errors.New("interrupted")
	// ErrUnsupported is returned when the platform has no controllable terminal.
	ErrUnsupported = errors.New("terminal input is not supported on this platform")
)

// stdinReader is the process-wide buffered view of stdin. A fresh
// bufio.Reader per call would read ahead past the first line and drop the
// surplus when discarded, losing the second of two piped lines. All stdin
// reads share this one reader, lazily bound on first use and guarded by
// the same external serialization the terminal mode already requires.
var stdinReader *bufio.Reader

func stdinSource() *bufio.Reader {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}
	return stdinReader
}

// ReadSecret reads one line from stdin with echo suppressed.
//
// If stdin is an interactive terminal, character echo is disabled for the
// duration of the read and the previous terminal mode is restored before
// ReadSecret returns, on success and on failure alike. If stdin is a pipe
// or a redirected file, the line is read transparently: suppressing echo
// on a non-interactive stream is meaningless, and issuing terminal-mode
// syscalls against a non-terminal descriptor would itself fail.
//
// Consecutive calls share one buffered reader over stdin, so piped input
// carrying several lines is handed out line by line, in order.
func ReadSecret() (string, error) {
	if !IsTerminal(Stdin) {
		return ReadSecretFrom(stdinSource())
	}
	return readSecretLine(stdinSource(), newConsole(os.Stdin.Fd()), defaultConsoleWriter())
}

// ReadSecretFromTTY reads one line with echo suppressed from the
// controlling terminal device (/dev/tty on Unix, CONIN$ on Windows),
// bypassing whatever stdin currently points at. Use it when stdin carries
// piped data but the secret must still come from the user.
func ReadSecretFromTTY() (string, error) {
	tty, err := openTTY()
	if err != nil {
		return "", fmt.Errorf("open controlling terminal: %w", err)
	}
	defer tty.Close()

	return readSecretLine(bufio.NewReader(tty), newConsole(tty.Fd()), ttyPromptWriter(tty))
}

// ReadSecretFrom reads one line from r and strips the trailing line
// ending. No stream classification and no terminal-mode changes happen;
// this is the path for tests and for sources that are known not to be
// terminals.
func ReadSecretFrom(r LineReader) (string, error) {
	return ReadLine(r)
}

// PromptSecret writes prompt to the console and then reads a secret from
// stdin via ReadSecret. The prompt is written as-is, with no trailing
// newline.
func PromptSecret(prompt string) (string, error) {
	if err := writePrompt(defaultConsoleWriter(), prompt); err != nil {
		return "", err
	}
	return ReadSecret()
}

// PromptSecretFrom writes prompt verbatim to w, flushes it if it buffers,
// then reads one line from r and strips the trailing line ending. Like
// ReadSecretFrom it performs no terminal-mode changes, which makes it
// suitable for tests with in-memory sources and sinks.
func PromptSecretFrom(r LineReader, w io.Writer, prompt string) (string, error) {
	if err := writePrompt(w, prompt); err != nil {
		return "", err
	}
	return ReadSecretFrom(r)
}

// readSecretLine reads one line from r while c has echo suppressed.
//
// The mode is restored on every exit path. Restoration is best-effort: a
// failure to restore must not mask the read's own result, and there is
// nothing useful a caller could do with it anyway.
//
// On platforms whose terminals do not echo the newline themselves, one is
// written to echoOut after a successful read so the cursor still advances
// when the user hits Enter.
func readSecretLine(r LineReader, c console, echoOut io.Writer) (string, error) {
	hidden, err := openHiddenInput(c)
	if err != nil {
		return "", err
	}
	defer hidden.restore()

	line, err := readRawLine(r)
	if err != nil {
		return "", err
	}
	if !echoesNewline && echoOut != nil {
		fmt.Fprintln(echoOut)
	}
	return fixLineEnding(line), nil
}

// defaultConsoleWriter returns the writer prompts and the post-read
// newline go to. Windows consoles need go-colorable to process escape
// sequences; everywhere else plain stdout is fine.
func defaultConsoleWriter() io.Writer {
	if runtime.GOOS == "windows" {
		return colorable.NewColorableStdout()
	}
	return os.Stdout
}

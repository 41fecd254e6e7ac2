package passterm

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader is the buffered source consumed by the read functions. Both
// *bufio.Reader and *bytes.Buffer satisfy it. ReadBytes must return the
// bytes up to and including the first occurrence of delim, or the
// remaining bytes together with io.EOF when the source runs out first.
type LineReader interface {
	ReadBytes(delim byte) ([]byte, error)
}

// ReadLine reads one line from r and strips the trailing line ending.
//
// End of input with no data is not an error: the result is simply the
// empty string. Any other failure of the underlying source is returned
// unchanged.
func ReadLine(r LineReader) (string, error) {
	line, err := readRawLine(r)
	if err != nil {
		return "", err
	}
	return fixLineEnding(line), nil
}

// PromptLine writes prompt verbatim to w, flushes it if it buffers, then
// reads one line from r. No echo suppression happens on this path; it is
// meant for non-secret input.
//
// The prompt is written without a trailing newline. On an interactive
// terminal the user's Enter key provides the visual separation.
func PromptLine(r LineReader, w io.Writer, prompt string) (string, error) {
	if err := writePrompt(w, prompt); err != nil {
		return "", err
	}
	return ReadLine(r)
}

// PromptLineTTY writes prompt on the controlling terminal and reads the
// reply from it, bypassing whatever stdin currently points at. Useful when
// stdin carries piped data but the tool still needs to ask the user
// something.
func PromptLineTTY(prompt string) (string, error) {
	tty, err := openTTY()
	if err != nil {
		return "", err
	}
	defer tty.Close()

	if err := writePrompt(ttyPromptWriter(tty), prompt); err != nil {
		return "", err
	}
	return ReadLine(bufio.NewReader(tty))
}

// readRawLine reads up to and including the first '\n' from r. Reaching
// end of input is not an error; whatever was read before it (possibly
// nothing) is returned. The intermediate buffer is wiped because it may
// have held a secret.
func readRawLine(r LineReader) (string, error) {
	raw, err := r.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line := string(raw)
	wipe(raw)
	return line, nil
}

// fixLineEnding strips one trailing '\n' and, if it was preceded by a
// '\r', that too. The input's line-ending flavor may differ from the
// host's: POSIX-style input shows up on Windows via redirection and vice
// versa. Idempotent.
func fixLineEnding(line string) string {
	if strings.HasSuffix(line, "\n") {
		line = line[:len(line)-1]
		line = strings.TrimSuffix(line, "\r")
	}
	return line
}

// writePrompt writes prompt verbatim and flushes sinks that buffer.
func writePrompt(w io.Writer, prompt string) error {
	if _, err := io.WriteString(w, prompt); err != nil {
		return err
	}
	if f, ok := w.(interface{ Flush() error }); ok {
		return f.Flush()
	}
	return nil
}

// wipe clears a buffer that held secret bytes. The string copies handed to
// callers are immutable by the language; this only shortens how long the
// intermediates linger in memory.
func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

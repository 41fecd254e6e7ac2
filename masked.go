package passterm

import (
	"fmt"
	"io"

	"github.com/mattn/go-tty"
)

// ReadSecretMasked writes prompt on the controlling terminal and reads a
// secret while echoing an asterisk for each typed character, so the user
// can see how much they have typed without revealing it.
//
// The terminal is put in raw mode by go-tty for the duration of the read
// and restored on every exit path. Editing keys:
//
//   - Enter submits the input
//   - Backspace deletes the last character
//   - Ctrl+U clears the whole line
//   - Ctrl+C aborts with ErrInterrupted
//   - Ctrl+D on an empty line aborts with io.EOF
//
// ReadSecretMasked requires an interactive terminal; when stdin may be a
// pipe, use ReadSecret instead.
func ReadSecretMasked(prompt string) (string, error) {
	t, err := tty.Open()
	if err != nil {
		return "", fmt.Errorf("open controlling terminal: %w", err)
	}
	defer t.Close()

	out := t.Output()
	if prompt != "" {
		fmt.Fprint(out, prompt)
	}

	var secret []rune
	for {
		r, err := t.ReadRune()
		if err != nil {
			fmt.Fprintln(out)
			return "", err
		}

		switch r {
		case '\r', '\n':
			fmt.Fprintln(out)
			line := string(secret)
			wipeRunes(secret)
			return line, nil
		case '\x03': // Ctrl+C
			fmt.Fprintln(out)
			wipeRunes(secret)
			return "", ErrInterrupted
		case '\x04': // Ctrl+D
			if len(secret) == 0 {
				fmt.Fprintln(out)
				return "", io.EOF
			}
		case '\x7f', '\b':
			if len(secret) > 0 {
				secret[len(secret)-1] = 0
				secret = secret[:len(secret)-1]
				fmt.Fprint(out, "\b \b")
			}
		case '\x15': // Ctrl+U
			for range secret {
				fmt.Fprint(out, "\b \b")
			}
			wipeRunes(secret)
			secret = secret[:0]
		default:
			// Ignore remaining control characters and escape sequences.
			if r >= ' ' {
				secret = append(secret, r)
				fmt.Fprint(out, "*")
			}
		}
	}
}

func wipeRunes(rs []rune) {
	for i := range rs {
		rs[i] = 0
	}
}

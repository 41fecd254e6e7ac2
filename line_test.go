package passterm

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixLineEnding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "unix line ending", in: "abc\n", want: "abc"},
		{name: "windows line ending", in: "abc\r\n", want: "abc"},
		{name: "no line ending", in: "abc", want: "abc"},
		{name: "empty", in: "", want: ""},
		{name: "newline only", in: "\n", want: ""},
		{name: "crlf only", in: "\r\n", want: ""},
		{name: "bare carriage return is kept", in: "abc\r", want: "abc\r"},
		{name: "inner newline is kept", in: "a\nb\n", want: "a\nb"},
		{name: "carriage return inside line", in: "a\rb\n", want: "a\rb"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := fixLineEnding(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, got, fixLineEnding(got), "fixLineEnding must be idempotent")
		})
	}
}

func TestFixLineEndingStripsExactlyOne(t *testing.T) {
	t.Parallel()

	// A raw line read stops at the first newline, so a double terminator
	// never reaches normalization in practice; still, only one may go.
	assert.Equal(t, "abc\n", fixLineEnding("abc\n\n"))
}

func TestReadLine(t *testing.T) {
	t.Parallel()

	t.Run("consecutive lines come back in order", func(t *testing.T) {
		t.Parallel()

		src := bufio.NewReader(strings.NewReader("first\nsecond\n"))

		got, err := ReadLine(src)
		require.NoError(t, err)
		assert.Equal(t, "first", got)

		got, err = ReadLine(src)
		require.NoError(t, err)
		assert.Equal(t, "second", got)
	})

	t.Run("same result for every line ending flavor", func(t *testing.T) {
		t.Parallel()

		for _, input := range []string{"abc\n", "abc\r\n", "abc"} {
			got, err := ReadLine(bytes.NewBufferString(input))
			require.NoError(t, err)
			assert.Equal(t, "abc", got, "input %q", input)
		}
	})

	t.Run("end of input yields empty line, not an error", func(t *testing.T) {
		t.Parallel()

		src := bufio.NewReader(strings.NewReader(""))
		got, err := ReadLine(src)
		require.NoError(t, err)
		assert.Empty(t, got)

		// A source drained by a previous call behaves the same way.
		src = bufio.NewReader(strings.NewReader("only\n"))
		_, err = ReadLine(src)
		require.NoError(t, err)
		got, err = ReadLine(src)
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("underlying read error is surfaced", func(t *testing.T) {
		t.Parallel()

		readErr := errors.New("device gone")
		_, err := ReadLine(errLineReader{err: readErr})
		assert.ErrorIs(t, err, readErr)
	})
}

func TestPromptLine(t *testing.T) {
	t.Parallel()

	t.Run("writes the prompt verbatim and returns the reply", func(t *testing.T) {
		t.Parallel()

		src := bytes.NewBufferString("Alice\r\n")
		var sink bytes.Buffer

		got, err := PromptLine(src, &sink, "Name: ")
		require.NoError(t, err)
		assert.Equal(t, "Alice", got)
		assert.Equal(t, "Name: ", sink.String(), "no trailing newline may be added to the prompt")
	})

	t.Run("flushes buffering sinks before reading", func(t *testing.T) {
		t.Parallel()

		src := bytes.NewBufferString("ok\n")
		var backing bytes.Buffer
		sink := bufio.NewWriter(&backing)

		_, err := PromptLine(src, sink, "> ")
		require.NoError(t, err)
		assert.Equal(t, "> ", backing.String(), "prompt must reach the backing writer before the read blocks")
	})

	t.Run("prompt write error aborts the read", func(t *testing.T) {
		t.Parallel()

		writeErr := errors.New("sink closed")
		src := bytes.NewBufferString("never read\n")

		_, err := PromptLine(src, failWriter{err: writeErr}, "? ")
		assert.ErrorIs(t, err, writeErr)
		assert.Equal(t, "never read\n", src.String(), "source must be untouched when the prompt cannot be written")
	})
}

// errLineReader fails every read with a fixed error.
type errLineReader struct {
	err error
}

func (r errLineReader) ReadBytes(byte) ([]byte, error) {
	return nil, r.err
}

// failWriter fails every write with a fixed error.
type failWriter struct {
	err error
}

func (w failWriter) Write([]byte) (int, error) {
	return 0, w.err
}

// Package passterm provides secure, cross-platform line input for
// command-line tools: reading secrets from a terminal without echoing the
// typed characters, plain prompted input, and detecting whether a standard
// stream is an interactive terminal or a redirected pipe/file.
//
// The package takes care of the platform details that are easy to get
// subtly wrong: saving and restoring the terminal mode on every exit path,
// opening the controlling terminal device when stdin has been redirected,
// recognizing msys/cygwin pseudo-terminals on Windows, and normalizing
// line endings regardless of where the input came from.
//
// Reading a password from stdin:
//
//	password, err := passterm.PromptSecret("Password: ")
//	if err != nil {
//		log.Fatal(err)
//	}
//
// When stdin is a terminal, echo is suppressed for the duration of the
// read and the original terminal mode is restored before the call returns,
// even if the read fails. When stdin is a pipe or a file, the line is read
// transparently with no terminal-mode syscalls at all, so the same binary
// works interactively and in scripts:
//
//	echo "hunter2" | mytool
//
// To read from the user even when stdin is redirected, go through the
// controlling terminal device (/dev/tty on Unix, CONIN$ on Windows):
//
//	password, err := passterm.ReadSecretFromTTY()
//
// Non-secret input follows the same shape without echo suppression:
//
//	name, err := passterm.PromptLineTTY("Your name: ")
//
// For unit tests or embedding, every read has a variant that takes an
// injected source (and sink), where the source is anything with a
// ReadBytes method such as *bufio.Reader or *bytes.Buffer:
//
//	src := bytes.NewBufferString("hunter2\n")
//	var out bytes.Buffer
//	password, err := passterm.PromptSecretFrom(src, &out, "Password: ")
//
// Stream classification is available directly:
//
//	if passterm.IsTerminal(passterm.Stdin) {
//		// interactive session
//	}
//
// Classification never fails; when the platform query is ambiguous the
// stream is reported as not a terminal.
//
// Concurrency:
//
// All reads are blocking and synchronous. The terminal mode of a stream is
// process-global state, so secret reads on the same stream must not run
// concurrently; callers that need that serialize with their own mutex.
// Mode changes are always undone before the call returns.
package passterm

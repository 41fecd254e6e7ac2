package passterm

// fakeTerm is an in-memory stand-in for a terminal's mutable mode word.
// It lets tests verify the scoped suppress/restore discipline, including
// nested scopes on the same underlying terminal, without a real terminal
// or platform syscalls.
type fakeTerm struct {
	mode uint32
}

// Mode bits for fakeTerm. Only echo carries meaning; the others exist so
// restoration of unrelated flags is observable.
const (
	fakeEcho uint32 = 1 << iota
	fakeLineInput
	fakeProcessed
)

func newFakeTerm() *fakeTerm {
	return &fakeTerm{mode: fakeEcho | fakeLineInput | fakeProcessed}
}

// mockConsole implements console against a fakeTerm.
//
// Failures can be injected to exercise the error paths: suppressErr makes
// acquisition fail before any mode change, restoreErr simulates a failing
// best-effort restore. restores counts how many times restoreMode ran.
type mockConsole struct {
	term        *fakeTerm
	saved       uint32
	suppressErr error
	restoreErr  error
	restores    int
}

func (c *mockConsole) suppressEcho() error {
	if c.suppressErr != nil {
		return c.suppressErr
	}
	c.saved = c.term.mode
	c.term.mode &^= fakeEcho
	return nil
}

func (c *mockConsole) restoreMode() error {
	c.restores++
	if c.restoreErr != nil {
		return c.restoreErr
	}
	c.term.mode = c.saved
	return nil
}

package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubExec records which commands the REPL dispatched.
type stubExec struct {
	loggedIn bool
	calls    []string
}

func (s *stubExec) record(name string) error {
	s.calls = append(s.calls, name)
	return nil
}

func (s *stubExec) isLoggedIn() bool                  { return s.loggedIn }
func (s *stubExec) Login(context.Context) error       { return s.record("login") }
func (s *stubExec) Register(context.Context) error    { return s.record("register") }
func (s *stubExec) Logout(context.Context) error      { return s.record("logout") }
func (s *stubExec) Browse(context.Context) error      { return s.record("browse") }
func (s *stubExec) Favorites(context.Context) error   { return s.record("favorites") }
func (s *stubExec) Like(context.Context) error        { return s.record("like") }
func (s *stubExec) MyCards(context.Context) error     { return s.record("mycards") }
func (s *stubExec) AddCard(context.Context) error     { return s.record("addcard") }
func (s *stubExec) EditCard(context.Context) error    { return s.record("editcard") }
func (s *stubExec) DeleteCard(context.Context) error  { return s.record("delcard") }
func (s *stubExec) Profile(context.Context) error     { return s.record("profile") }
func (s *stubExec) EditProfile(context.Context) error { return s.record("editprofile") }

func runScript(t *testing.T, exec *stubExec, script string) []string {
	t.Helper()
	out, restore := stubOutput(t)
	defer restore()
	scanner := bufio.NewScanner(strings.NewReader(script))
	runREPL(context.Background(), exec, func() string { return "" }, scanner)
	return *out
}

func TestRunREPL_DispatchesCommands(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, "browse\nfavs\nlike\nmycards\naddcard\neditcard\ndelcard\nprofile\neditprofile\nlogout\nexit\n")

	assert.Equal(t, []string{
		"browse", "favorites", "like", "mycards", "addcard",
		"editcard", "delcard", "profile", "editprofile", "logout",
	}, exec.calls)
}

func TestRunREPL_ShortBrowseAlias(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, "b\nquit\n")
	assert.Equal(t, []string{"browse"}, exec.calls)
}

func TestRunREPL_ExitPrintsBye(t *testing.T) {
	exec := &stubExec{}
	out := runScript(t, exec, "exit\n")
	assert.Contains(t, out, "Bye!")
	assert.Empty(t, exec.calls)
}

func TestRunREPL_UnknownCommand(t *testing.T) {
	exec := &stubExec{}
	out := runScript(t, exec, "frobnicate\nexit\n")
	assert.Contains(t, out, "Unknown command: frobnicate")
}

func TestRunREPL_EmptyLineIgnored(t *testing.T) {
	exec := &stubExec{}
	runScript(t, exec, "\n   \nexit\n")
	assert.Empty(t, exec.calls)
}

func TestRunREPL_HelpVariesWithSession(t *testing.T) {
	guestOut := runScript(t, &stubExec{loggedIn: false}, "help\nexit\n")
	assert.Contains(t, guestOut, "Available commands: register, login, exit")

	userOut := runScript(t, &stubExec{loggedIn: true}, "help\nexit\n")
	found := false
	for _, line := range userOut {
		if strings.Contains(line, "mycards") && strings.Contains(line, "logout") {
			found = true
		}
	}
	assert.True(t, found, "signed-in help must list member commands")
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	exec := &stubExec{loggedIn: true}
	runScript(t, exec, "browse\n")
	assert.Equal(t, []string{"browse"}, exec.calls)
}

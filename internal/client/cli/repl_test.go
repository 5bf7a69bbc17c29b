package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
}

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Register(ctx context.Context) error { return f.record("register") }
func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login")
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout")
}
func (f *fakeExec) Feed(ctx context.Context) error          { return f.record("feed") }
func (f *fakeExec) NewPost(ctx context.Context) error       { return f.record("post") }
func (f *fakeExec) LikePost(ctx context.Context) error      { return f.record("like") }
func (f *fakeExec) Comment(ctx context.Context) error       { return f.record("comment") }
func (f *fakeExec) EditPost(ctx context.Context) error      { return f.record("edit") }
func (f *fakeExec) DeletePost(ctx context.Context) error    { return f.record("delete") }
func (f *fakeExec) Discover(ctx context.Context) error      { return f.record("discover") }
func (f *fakeExec) Search(ctx context.Context) error        { return f.record("search") }
func (f *fakeExec) ClearFilters(ctx context.Context) error  { return f.record("clear") }
func (f *fakeExec) Bandmates(ctx context.Context) error     { return f.record("bandmates") }
func (f *fakeExec) SentRequests(ctx context.Context) error  { return f.record("sent") }
func (f *fakeExec) Connect(ctx context.Context) error       { return f.record("connect") }
func (f *fakeExec) Accept(ctx context.Context) error        { return f.record("accept") }
func (f *fakeExec) Reject(ctx context.Context) error        { return f.record("reject") }
func (f *fakeExec) Chat(ctx context.Context) error          { return f.record("chat") }
func (f *fakeExec) Profile(ctx context.Context) error       { return f.record("profile") }
func (f *fakeExec) UpdateProfile(ctx context.Context) error { return f.record("update") }

func runWithInput(t *testing.T, exec *fakeExec, lines ...string) {
	t.Helper()
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	exec := &fakeExec{}
	runWithInput(t, exec,
		"help",
		"login",
		"help",
		"feed",
		"post",
		"discover",
		"connect",
		"bandmates",
		"chat",
		"profile",
		"garbage",
		"exit",
	)

	want := []string{"login", "feed", "post", "discover", "connect", "bandmates", "chat", "profile"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %+v, want %+v", exec.calls, want)
	}
	for i := range want {
		if exec.calls[i] != want[i] {
			t.Fatalf("call %d = %q, want %q (all: %+v)", i, exec.calls[i], want[i], exec.calls)
		}
	}
}

func TestRunREPL_Shortcuts(t *testing.T) {
	exec := &fakeExec{loggedIn: true}
	runWithInput(t, exec, "f", "d", "b", "quit")

	want := []string{"feed", "discover", "bandmates"}
	if len(exec.calls) != len(want) {
		t.Fatalf("calls = %+v, want %+v", exec.calls, want)
	}
}

func TestRunREPL_EmptyLinesAndEOF(t *testing.T) {
	exec := &fakeExec{}
	runWithInput(t, exec, "", "   ", "register")

	if len(exec.calls) != 1 || exec.calls[0] != "register" {
		t.Fatalf("calls = %+v", exec.calls)
	}
}

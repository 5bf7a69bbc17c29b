package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to
// operate. The real App type satisfies this interface; tests can provide
// a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error

	Feed(ctx context.Context) error
	NewPost(ctx context.Context) error
	LikePost(ctx context.Context) error
	Comment(ctx context.Context) error
	EditPost(ctx context.Context) error
	DeletePost(ctx context.Context) error

	Discover(ctx context.Context) error
	Search(ctx context.Context) error
	ClearFilters(ctx context.Context) error

	Bandmates(ctx context.Context) error
	SentRequests(ctx context.Context) error
	Connect(ctx context.Context) error
	Accept(ctx context.Context) error
	Reject(ctx context.Context) error

	Chat(ctx context.Context) error

	Profile(ctx context.Context) error
	UpdateProfile(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Bandmate CLI.
//
// It reads a line from the provided scanner, parses the first token as
// the command, and dispatches to methods on 'a'. Unknown commands are
// reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Commands requiring a session check login themselves and print a hint
// when no token is present. Any errors returned by command handlers are
// ignored here; handlers report their own errors inline. This keeps the
// REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("bm %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Screens: feed, post, like, comment, edit, delete")
				printlnFn("         discover, search, clear, connect")
				printlnFn("         bandmates, sent, accept, reject, chat")
				printlnFn("         profile, update, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "f", "feed":
			_ = a.Feed(ctx)

		case "post":
			_ = a.NewPost(ctx)

		case "like":
			_ = a.LikePost(ctx)

		case "comment":
			_ = a.Comment(ctx)

		case "edit":
			_ = a.EditPost(ctx)

		case "delete":
			_ = a.DeletePost(ctx)

		case "d", "discover":
			_ = a.Discover(ctx)

		case "search":
			_ = a.Search(ctx)

		case "clear":
			_ = a.ClearFilters(ctx)

		case "b", "bandmates":
			_ = a.Bandmates(ctx)

		case "sent":
			_ = a.SentRequests(ctx)

		case "connect":
			_ = a.Connect(ctx)

		case "accept":
			_ = a.Accept(ctx)

		case "reject":
			_ = a.Reject(ctx)

		case "chat":
			_ = a.Chat(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "update":
			_ = a.UpdateProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

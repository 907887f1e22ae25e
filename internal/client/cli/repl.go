package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Browse(ctx context.Context) error
	Favorites(ctx context.Context) error
	Like(ctx context.Context) error
	MyCards(ctx context.Context) error
	AddCard(ctx context.Context) error
	EditCard(ctx context.Context) error
	DeleteCard(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

// runREPL starts a simple read-eval-print loop for the card directory CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// The prompt shows the current status (from statusFn). Which commands the
// help lists depends on session state, the way the web client's navigation
// bar shows different links to guests and signed-in users; the commands
// themselves are always dispatched and gate on their own.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("cardhub %s> ", statusFn()))
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
				printlnFn("Available commands: (b)rowse, favorites, like, mycards, addcard, editcard, delcard, profile, editprofile, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "b", "browse":
			_ = a.Browse(ctx)

		case "favorites", "favs":
			_ = a.Favorites(ctx)

		case "like":
			_ = a.Like(ctx)

		case "mycards":
			_ = a.MyCards(ctx)

		case "addcard":
			_ = a.AddCard(ctx)

		case "editcard":
			_ = a.EditCard(ctx)

		case "delcard":
			_ = a.DeleteCard(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "editprofile":
			_ = a.EditProfile(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

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
	ShowJobs(ctx context.Context) error
	Search(ctx context.Context, query string) error
	SetFilter(ctx context.Context, field, value string) error
	ClearFilters(ctx context.Context) error
	Cities(ctx context.Context, query string) error
	ShowJob(ctx context.Context, id string) error
	Post(ctx context.Context) error
	Profile(ctx context.Context) error
	EditProfile(ctx context.Context) error
}

// runREPL starts a read–eval–print loop for the QuickWork CLI.
//
// It reads a line, parses the first token as the command, and dispatches to
// methods on 'a'. Unknown commands are reported back to the user. The loop
// exits on scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print their
// own messages. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("qw %s > ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Comandos: jobs, search <texto>, filter <ubicacion|pago|duracion> [valor], clear, show <id>, cities [texto], post, profile, edit, logout, exit")
			} else {
				printlnFn("Comandos: login, register, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "j", "jobs", "list":
			_ = a.ShowJobs(ctx)

		case "search":
			_ = a.Search(ctx, strings.Join(args, " "))

		case "filter":
			if len(args) == 0 {
				printlnFn("Uso: filter <ubicacion|pago|duracion> [valor]")
				continue
			}
			_ = a.SetFilter(ctx, args[0], strings.Join(args[1:], " "))

		case "clear":
			_ = a.ClearFilters(ctx)

		case "show":
			if len(args) == 0 {
				printlnFn("Uso: show <id>")
				continue
			}
			_ = a.ShowJob(ctx, args[0])

		case "cities":
			_ = a.Cities(ctx, strings.Join(args, " "))

		case "post":
			_ = a.Post(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "edit":
			_ = a.EditProfile(ctx)

		case "exit", "quit":
			printlnFn("¡Hasta pronto!")
			return

		default:
			printlnFn("Comando desconocido:", cmd)
		}
	}
}

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
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	OpenAccount(ctx context.Context) error
	Deposit(ctx context.Context) error
	Withdraw(ctx context.Context) error
	Balance(ctx context.Context) error
	ListAccounts(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the banking terminal.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands while logged out: help, register, login, exit.
// Commands while logged in: help, open, deposit, withdraw, balance,
// accounts, logout, exit.
//
// Any errors returned by command handlers are ignored here; handlers print
// their own user-facing messages. This keeps the REPL loop resilient and
// focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("teller> %s ", statusFn()))
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
				printlnFn("Available commands: open, deposit, withdraw, balance, accounts, logout, exit")
			} else {
				printlnFn("Available commands: register, login, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "open":
			_ = a.OpenAccount(ctx)

		case "deposit":
			_ = a.Deposit(ctx)

		case "withdraw":
			_ = a.Withdraw(ctx)

		case "balance":
			_ = a.Balance(ctx)

		case "accounts", "list":
			_ = a.ListAccounts(ctx)

		case "exit", "quit":
			printlnFn("Thank you for using goteller. Goodbye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}

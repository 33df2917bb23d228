// Package cli implements the interactive banking terminal: a line-based
// REPL that drives the authentication manager and the ledger service.
// Input helpers live in input.go; command handlers are methods on App.
package cli

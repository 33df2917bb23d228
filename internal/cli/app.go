package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/goteller/internal/auth"
	"github.com/dmitrijs2005/goteller/internal/bank"
	"github.com/dmitrijs2005/goteller/internal/config"
	"github.com/dmitrijs2005/goteller/internal/filex"
	"github.com/dmitrijs2005/goteller/internal/linestore"
	"github.com/dmitrijs2005/goteller/internal/logging"
	"github.com/dmitrijs2005/goteller/internal/repositories/accounts"
	"github.com/dmitrijs2005/goteller/internal/repositories/sessions"
	"github.com/dmitrijs2005/goteller/internal/repositories/users"
)

// App owns the wired-up services and the terminal input state.
type App struct {
	config *config.Config
	auth   *auth.Manager
	bank   *bank.Service
	log    logging.Logger
	reader *bufio.Reader

	// userName is the display name of the logged-in user; the manager
	// tracks the authoritative identity.
	userName string
}

// NewApp wires the record store, directories and services from the config.
func NewApp(c *config.Config) *App {
	log := logging.NewZerologLogger(os.Stderr, c.LogLevel)

	dataDir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		log.Warn(context.Background(), "could not prepare data directory", "dir", c.DataDir, "error", err)
		dataDir = c.DataDir
	}

	store := linestore.New(dataDir)
	userRepo := users.NewTextFileRepository(store)
	sessionRepo := sessions.NewTextFileRepository(store)
	accountRepo := accounts.NewTextFileRepository(store)

	return &App{
		config: c,
		auth:   auth.NewManager(userRepo, sessionRepo, c, log),
		bank:   bank.NewService(accountRepo, log),
		log:    log,
		reader: bufio.NewReader(os.Stdin),
	}
}

// Run starts the interactive loop on stdin and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	fmt.Println("Welcome to goteller (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.auth.IsLoggedIn()
}

// status renders the prompt decoration, e.g. "(alice)" when logged in.
func (a *App) status() string {
	if a.auth.IsLoggedIn() && a.userName != "" {
		return fmt.Sprintf("(%s)", a.userName)
	}
	return ""
}

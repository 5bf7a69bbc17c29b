// Package cli is the terminal front of the Bandmate client: a REPL with
// one command set per screen. Commands read from the per-domain stores
// and dispatch their operations; any logic beyond input validation lives
// in the stores or on the server.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/bandmate/internal/client/api"
	"github.com/dmitrijs2005/bandmate/internal/client/config"
	"github.com/dmitrijs2005/bandmate/internal/client/session"
	"github.com/dmitrijs2005/bandmate/internal/client/store"
	"github.com/dmitrijs2005/bandmate/internal/logging"
)

type App struct {
	config *config.Config
	log    logging.Logger

	db        *sql.DB
	apiClient api.Client

	session     *store.Session
	directory   *store.Directory
	connections *store.Connections
	messages    *store.Messages
	posts       *store.Posts
	profile     *store.Profile

	reader *bufio.Reader
}

// NewApp wires the application: local session database, API client, and
// the per-domain stores. A persisted session token is restored here so a
// restart lands the user back in their session.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, repo, err := session.InitDatabase(ctx, c.SessionDBPath)
	if err != nil {
		return nil, fmt.Errorf("initializing session database: %w", err)
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL)

	a := &App{
		config:      c,
		log:         log,
		db:          db,
		apiClient:   apiClient,
		session:     store.NewSession(apiClient, repo),
		directory:   store.NewDirectory(apiClient),
		connections: store.NewConnections(apiClient),
		messages:    store.NewMessages(apiClient),
		posts:       store.NewPosts(apiClient),
		profile:     store.NewProfile(apiClient),
		reader:      bufio.NewReader(os.Stdin),
	}

	if err := a.session.Restore(ctx); err != nil {
		log.Warn(ctx, "session restore failed", "err", err)
	}
	if a.session.LoggedIn() {
		log.Info(ctx, "session restored", "user", a.session.UserID())
	}

	return a, nil
}

// Close is the teardown boundary: releases the API client and the local
// database.
func (a *App) Close(ctx context.Context) error {
	if err := a.apiClient.Close(); err != nil {
		a.log.Warn(ctx, "closing api client", "err", err)
	}
	return a.db.Close()
}

func (a *App) Run(ctx context.Context) {
	fmt.Println("Bandmate CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if !a.session.LoggedIn() {
		return ""
	}
	if acc := a.session.Account(); acc != nil {
		return fmt.Sprintf("(%s)", acc.Name)
	}
	return "(logged in)"
}

func (a *App) isLoggedIn() bool {
	return a.session.LoggedIn()
}

// requireLogin gates authenticated screens.
func (a *App) requireLogin() bool {
	if a.session.LoggedIn() {
		return true
	}
	fmt.Println("Please login first ('login' or 'register').")
	return false
}

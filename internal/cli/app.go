// Package cli is the interactive surface of the PeakHub client: a REPL
// whose prompt, help text and navigation menu follow the session state the
// session.Manager exposes.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/peakhub/peakhub/internal/config"
	"github.com/peakhub/peakhub/internal/credstore"
	"github.com/peakhub/peakhub/internal/localdb"
	"github.com/peakhub/peakhub/internal/logging"
	"github.com/peakhub/peakhub/internal/session"
	"github.com/peakhub/peakhub/internal/sessiontoken"
)

// sessionTokenKey signs the locally persisted identity. It only has to make
// the local record tamper-evident; there is no remote party to hide it from.
var sessionTokenKey = []byte("peakhub-local-session-v1")

type App struct {
	config  *config.Config
	session *session.Manager
	db      *sql.DB
	reader  *bufio.Reader
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := localdb.Open(ctx, cfg.StorePath)
	if err != nil {
		return nil, fmt.Errorf("opening local database: %w", err)
	}

	creds, err := credstore.NewDemoStore()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("building credential store: %w", err)
	}

	mgr := session.NewManager(creds, db, sessiontoken.NewCodec(sessionTokenKey), logger, cfg.LoginLatency)

	return &App{
		config:  cfg,
		session: mgr,
		db:      db,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores any persisted session and hands control to the REPL. It
// returns when the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.db.Close() }()

	a.session.Bootstrap(ctx)
	printlnFn("Welcome to PeakHub (type 'help' for commands)")

	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// status renders the prompt decoration: "(email role)" when signed in.
func (a *App) status() string {
	id := a.session.Current()
	if id == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", id.Email, id.Role)
}

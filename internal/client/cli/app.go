package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/quickworkapp/quickwork-cli/internal/client/api"
	"github.com/quickworkapp/quickwork-cli/internal/client/cities"
	"github.com/quickworkapp/quickwork-cli/internal/client/compose"
	"github.com/quickworkapp/quickwork-cli/internal/client/config"
	"github.com/quickworkapp/quickwork-cli/internal/client/jobs"
	"github.com/quickworkapp/quickwork-cli/internal/client/services"
	"github.com/quickworkapp/quickwork-cli/internal/client/session"
	"github.com/quickworkapp/quickwork-cli/internal/client/storage"
	"github.com/quickworkapp/quickwork-cli/internal/logging"
)

// App wires the QuickWork client together and drives the REPL.
type App struct {
	config  *config.Config
	log     logging.Logger
	db      *sql.DB
	kv      *storage.KV
	session *session.Store

	auth      services.AuthService
	directory *jobs.Directory
	cities    *cities.Directory
	composer  *compose.Composer

	reader *bufio.Reader
	screen Screen

	// prefillEmail carries the email from a fresh registration into the
	// next login prompt.
	prefillEmail string
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	kv, db, err := storage.Open(ctx, cfg.DataFile)
	if err != nil {
		log.Error(ctx, "could not open local store", "error", err)
		return nil, err
	}

	sess := session.NewStore(kv, log)
	apiClient := api.NewHTTPClient(cfg.ServerURL, cfg.RequestTimeout, sess.Token, log)

	cityDir, err := cities.NewDirectory()
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:    cfg,
		log:       log,
		db:        db,
		kv:        kv,
		session:   sess,
		auth:      services.NewAuthService(apiClient, sess, log),
		directory: jobs.NewDirectory(apiClient, log),
		cities:    cityDir,
		composer:  compose.NewComposer(apiClient, log),
		reader:    bufio.NewReader(os.Stdin),
		screen:    ScreenWelcome,
	}

	// The guard re-resolves the current screen on every committed session
	// transition: login lands on the protected home, logout on the login
	// screen.
	sess.OnChange(func(st session.State) {
		a.screen = Resolve(st, a.screen)
	})

	return a, nil
}

// Run resolves the persisted session and enters the REPL. Rendering only
// starts after the session state is known.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.session.Restore(ctx)
	a.screen = Resolve(a.session.State(), a.screen)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

// Close releases the local store.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Authenticated()
}

// Navigate moves to target, subject to the guard.
func (a *App) Navigate(target Screen) Screen {
	if a.session.State() == session.StateUnknown {
		return a.screen
	}
	a.screen = Resolve(a.session.State(), target)
	return a.screen
}

func (a *App) getStatus() string {
	s := string(a.screen)
	if a.isLoggedIn() {
		s += " *"
	}
	return "(" + s + ")"
}

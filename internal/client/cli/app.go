package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/checklist/internal/client/checklist"
	"github.com/dmitrijs2005/checklist/internal/client/client"
	"github.com/dmitrijs2005/checklist/internal/client/config"
	"github.com/dmitrijs2005/checklist/internal/client/services"
	"github.com/dmitrijs2005/checklist/internal/client/session"
	"github.com/dmitrijs2005/checklist/internal/client/view"
	"github.com/dmitrijs2005/checklist/internal/logging"
)

// sessionInfo is what the REPL reads from the login context.
type sessionInfo interface {
	LoggedIn() bool
	Username() string
	IsAdmin() bool
}

type App struct {
	config     *config.Config
	log        logging.Logger
	session    sessionInfo
	auth       services.AuthService
	users      services.UserService
	checklists services.ChecklistService
	router     *view.Router
	reader     *bufio.Reader
}

// NewApp wires the client against db, which must already be migrated.
func NewApp(c *config.Config, db *sql.DB, log logging.Logger) *App {
	sess := session.New(db)
	api := client.NewRESTClient(c.ServerURL, c.RequestTimeout, sess, log)

	return &App{
		config:     c,
		log:        log,
		session:    sess,
		auth:       services.NewAuthService(api, sess, log),
		users:      services.NewUserService(api),
		checklists: services.NewChecklistService(api, checklist.NewEditor(), log),
		router:     view.NewRouter(c.ResetToken),
		reader:     bufio.NewReader(os.Stdin),
	}
}

// Run restores a persisted login, then serves commands until EOF or exit.
func (a *App) Run(ctx context.Context) {
	a.restore(ctx)

	printlnFn("Checklist CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
}

// restore reopens the landing view for a credential left by an earlier
// run. A pending reset link takes precedence.
func (a *App) restore(ctx context.Context) {
	ok, err := a.auth.Restore(ctx)
	if err != nil {
		a.log.Warn(ctx, "restore session", "error", err)
		return
	}
	if !ok || a.router.Current() == view.ResetPassword {
		return
	}
	a.router.SetAdminVisible(a.session.IsAdmin())
	_ = a.router.Show(view.Landing)
}

func (a *App) isLoggedIn() bool {
	return a.session != nil && a.session.LoggedIn()
}

func (a *App) getStatus() string {
	s := ""
	if a.isLoggedIn() {
		if u := a.session.Username(); u != "" {
			s = u + " "
		}
	}
	return fmt.Sprintf("(%s%s)", s, a.router.Current())
}

// navigate switches to id. Leaving the checklist editor for any other
// view drops the open document and its unsaved changes.
func (a *App) navigate(id view.ID) error {
	leaving := a.router.Current() == view.Checklist && id != view.Checklist
	if err := a.router.Show(id); err != nil {
		return err
	}
	if leaving {
		a.checklists.Editor().Discard()
	}
	return nil
}

// show is navigate for callers that only pass known ids.
func (a *App) show(id view.ID) {
	if err := a.navigate(id); err != nil {
		a.log.Error(context.Background(), "show view", "view", id, "error", err)
	}
}

package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/learnhub/internal/client/client"
	"github.com/dmitrijs2005/learnhub/internal/client/config"
	"github.com/dmitrijs2005/learnhub/internal/client/realtime"
	"github.com/dmitrijs2005/learnhub/internal/client/services"
	"github.com/dmitrijs2005/learnhub/internal/client/session"
	"github.com/dmitrijs2005/learnhub/internal/filex"
	"github.com/dmitrijs2005/learnhub/internal/logging"
)

// dialRealtime is a test seam for realtime.Dial.
var dialRealtime = realtime.Dial

type App struct {
	config  *config.Config
	db      *sql.DB
	api     *client.HTTPClient
	session *session.Controller
	router  *Router
	log     logging.Logger
	reader  *bufio.Reader
	out     io.Writer
}

// NewApp opens the local database and wires the gateway, the credential
// store and the session controller together.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	if _, err := filex.EnsureParentDir(c.DatabasePath); err != nil {
		return nil, err
	}
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}
	return newApp(c, db, log, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, db *sql.DB, log logging.Logger, in io.Reader, out io.Writer) *App {
	if log == nil {
		log = logging.Nop()
	}
	store := services.NewCookieCredentialStore(db, log)
	api := client.NewHTTPClient(c.APIBaseURL, store,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)
	router := NewRouter(out)
	ctrl := session.NewController(api.Auth, store, &toastNotifier{out: out}, router, log)
	api.SetUnauthorizedHandler(ctrl.CredentialRejected)

	return &App{
		config:  c,
		db:      db,
		api:     api,
		session: ctrl,
		router:  router,
		log:     log,
		reader:  bufio.NewReader(in),
		out:     out,
	}
}

// Run resolves any persisted session and then serves the REPL until the
// user exits. The database is closed on return.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	unsubscribe := a.session.Subscribe(func(s session.Snapshot) {
		a.log.Debug(ctx, "session changed",
			"state", s.State.String(), "busy", s.Busy, "authenticated", s.IsAuthenticated)
	})
	defer unsubscribe()

	fmt.Fprintln(a.out, "Welcome to LearnHub CLI (type 'help' for commands)")
	a.session.Init(ctx)
	if s := a.session.Snapshot(); s.IsAuthenticated {
		fmt.Fprintf(a.out, "Signed in as %s\n", s.User.Email)
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	s := a.session.Snapshot()
	who := "guest"
	switch {
	case s.Loading:
		who = "loading"
	case s.IsAuthenticated:
		who = s.User.Email
	}
	return fmt.Sprintf("(%s %s)", who, a.router.Current())
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

// fail prints err the way a toast would and returns it.
func (a *App) fail(err error) error {
	a.printf("[error] %s\n", client.MessageFrom(err, err.Error()))
	return err
}

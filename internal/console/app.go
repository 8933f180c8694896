// Package console implements the interactive shell of the registry
// admin console: a command loop whose targets are route paths, each
// gated by the authorization guard before its view renders.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/dserbyn/regconsole/internal/config"
	"github.com/dserbyn/regconsole/internal/logging"
	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/guard"
	"github.com/dserbyn/regconsole/internal/registry/persist"
	"github.com/dserbyn/regconsole/internal/registry/session"
	"github.com/dserbyn/regconsole/internal/registry/store"
)

// App wires the store, the persistence gate, and the shell together.
type App struct {
	cfg    *config.Config
	log    logging.Logger
	gate   *persist.Gate
	tokens *session.Holder
	store  *store.Store

	unsubscribe func()
	reader      *bufio.Reader
	out         io.Writer

	// lastPersonID is the most recently viewed person; next/prev
	// navigation walks the id enumeration relative to it.
	lastPersonID int64
	// searchDelay is the quiet period for debounced search refinement.
	searchDelay time.Duration
}

// NewApp opens the persistence gate, blocks on rehydration, and only
// then builds the store — the shell never renders ahead of the
// rehydrated state.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	gate, err := persist.Open(ctx, cfg.SnapshotPath, log)
	if err != nil {
		return nil, fmt.Errorf("opening persistence gate: %w", err)
	}

	a := &App{
		cfg:         cfg,
		log:         log,
		gate:        gate,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
		searchDelay: 300 * time.Millisecond,
	}
	if err := a.mount(ctx); err != nil {
		gate.Close()
		return nil, err
	}
	return a, nil
}

// mount rehydrates the whitelisted slices and builds a fresh store on
// top of them. Called at startup and again after logout, where it
// plays the role of the full page reload.
func (a *App) mount(ctx context.Context) error {
	snap, err := a.gate.Load(ctx)
	if err != nil {
		return fmt.Errorf("rehydrating state: %w", err)
	}

	a.tokens = session.NewHolder()
	transport := api.NewTransport(a.cfg.BaseURL, a.cfg.RequestTimeout, a.tokens, a.log)
	client := api.New(transport)

	a.store = store.New(client, a.tokens, a.log,
		store.WithSession(snap.Session),
		store.WithDarkTheme(snap.DarkTheme),
		store.WithPeople(snap.People),
	)

	a.lastPersonID = 0

	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.unsubscribe = a.store.Subscribe(func(st store.State) {
		err := a.gate.Save(context.Background(), persist.Snapshot{
			Session:   st.Auth.Session,
			DarkTheme: st.DarkTheme,
			People:    st.People.Items,
		})
		if err != nil {
			a.log.Warn(ctx, "persisting snapshot failed", "err", err)
		}
	})
	return nil
}

// Run starts the shell loop and blocks until the user exits or the
// context is cancelled.
func (a *App) Run(ctx context.Context) {
	a.repl(ctx)
}

// Close releases the persistence gate.
func (a *App) Close() error {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	return a.gate.Close()
}

// navigate runs the guard for a route path and dispatches to render
// when allowed. Redirect outcomes turn into their respective views,
// so a forbidden target behaves exactly like the SPA's redirect.
func (a *App) navigate(ctx context.Context, path string, render func(context.Context)) {
	sess := a.store.Session()
	if a.tokens.Expired() {
		// An expired token is treated like a missing session.
		sess = nil
	}
	switch guard.Resolve(sess, path) {
	case guard.Render:
		render(ctx)
	case guard.RedirectLogin:
		fmt.Fprintln(a.out, "Please log in first.")
		a.loginView(ctx)
	case guard.RedirectForbidden:
		a.forbiddenView()
	default:
		a.notFoundView(path)
	}
}

func (a *App) forbiddenView() {
	fmt.Fprintln(a.out, "403: your role does not allow this page.")
}

func (a *App) notFoundView(path string) {
	fmt.Fprintf(a.out, "No such page: %s\n", path)
}

package session

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/client/client"
	"github.com/dmitrijs2005/learnhub/internal/client/models"
	"github.com/dmitrijs2005/learnhub/internal/client/services"
	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/logging"
)

// User-facing notification texts.
const (
	MsgLoginSuccess  = "Login successful!"
	MsgLoginFailed   = "Login failed"
	MsgSignupSuccess = "Account created successfully!"
	MsgSignupFailed  = "Signup failed"
	MsgGoogleFailed  = "Google login failed"
	MsgLogoutSuccess = "Logged out successfully"
)

// AuthAPI is the part of the gateway the controller drives.
// *client.AuthAPI satisfies it.
type AuthAPI interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Signup(ctx context.Context, data models.SignupData) (*models.AuthResponse, error)
	GoogleAuth(ctx context.Context, profile models.GoogleProfile) (*models.AuthResponse, error)
	Refresh(ctx context.Context, token string) (*models.AuthResponse, error)
	Verify(ctx context.Context, token string) (*models.VerifyResponse, error)
}

// Notifier surfaces short messages to the user.
type Notifier interface {
	Success(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

// Navigator moves the presentation layer to a route.
type Navigator interface {
	Navigate(ctx context.Context, route string)
}

type Controller struct {
	auth   AuthAPI
	creds  client.CredentialStore
	notify Notifier
	nav    Navigator
	log    logging.Logger
	now    func() time.Time

	mu        sync.Mutex
	state     State
	store     Store
	busy      bool
	listeners map[int]func(Snapshot)
	nextID    int
}

func NewController(auth AuthAPI, creds client.CredentialStore, notify Notifier, nav Navigator, log logging.Logger) *Controller {
	if log == nil {
		log = logging.Nop()
	}
	return &Controller{
		auth:      auth,
		creds:     creds,
		notify:    notify,
		nav:       nav,
		log:       log.With("component", "session"),
		now:       time.Now,
		state:     StateUninitialized,
		listeners: make(map[int]func(Snapshot)),
	}
}

// Snapshot returns a copy of the current session.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

func (c *Controller) snapshotLocked() Snapshot {
	s := Snapshot{
		State:           c.state,
		Credential:      c.store.credential,
		Busy:            c.busy,
		Loading:         c.state == StateUninitialized || c.state == StateVerifying,
		IsAuthenticated: c.store.present(),
	}
	if c.store.user != nil {
		u := *c.store.user
		s.User = &u
	}
	return s
}

func (c *Controller) IsAuthenticated() bool {
	return c.Snapshot().IsAuthenticated
}

// Subscribe registers fn to receive a snapshot after every state change.
// The returned func removes it.
func (c *Controller) Subscribe(fn func(Snapshot)) (unsubscribe func()) {
	c.mu.Lock()
	id := c.nextID
	c.nextID++
	c.listeners[id] = fn
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		delete(c.listeners, id)
		c.mu.Unlock()
	}
}

// update applies fn under the lock and then publishes the new snapshot.
func (c *Controller) update(fn func()) {
	c.mu.Lock()
	fn()
	snap := c.snapshotLocked()
	listeners := make([]func(Snapshot), 0, len(c.listeners))
	for _, l := range c.listeners {
		listeners = append(listeners, l)
	}
	c.mu.Unlock()

	for _, l := range listeners {
		l(snap)
	}
}

func (c *Controller) setBusy(v bool) {
	c.update(func() { c.busy = v })
}

// Init resolves the persisted credential, if any, into a session. Only the
// first call does work; Loading reports false once it returns.
func (c *Controller) Init(ctx context.Context) {
	c.mu.Lock()
	if c.state != StateUninitialized {
		c.mu.Unlock()
		return
	}
	c.state = StateVerifying
	c.mu.Unlock()
	c.update(func() {})

	token, ok := c.creds.Credential(ctx)
	if !ok {
		c.finishAnonymous()
		return
	}

	if err := services.CheckTokenExpiry(token, c.now()); err != nil {
		c.log.Info(ctx, "persisted credential expired", "error", err)
		c.discardCredential(ctx)
		c.finishAnonymous()
		return
	}

	resp, err := c.auth.Verify(ctx, token)
	switch {
	case err != nil:
		c.log.Error(ctx, "token verification failed", "error", err)
		c.discardCredential(ctx)
		c.finishAnonymous()
	case !resp.Valid || resp.User == nil:
		c.log.Info(ctx, "persisted credential rejected")
		c.discardCredential(ctx)
		c.finishAnonymous()
	default:
		c.update(func() {
			c.store.set(resp.User, token)
			c.state = StateAuthenticated
		})
		c.log.Info(ctx, "session restored", "user_id", resp.User.ID)
	}
}

func (c *Controller) finishAnonymous() {
	c.update(func() {
		c.store.clear()
		c.state = StateAnonymous
	})
}

func (c *Controller) discardCredential(ctx context.Context) {
	if err := c.creds.ClearCredential(ctx); err != nil {
		c.log.Error(ctx, "discarding credential failed", "error", err)
	}
}

// Login authenticates with email and password. On success the user lands
// on redirect (the dashboard when empty or unsafe). On failure the error is
// surfaced as a notification and returned; the session is left unchanged.
func (c *Controller) Login(ctx context.Context, email, password, redirect string) error {
	err := c.authenticate(ctx, MsgLoginSuccess, MsgLoginFailed, RedirectTarget(redirect), func(ctx context.Context) (*models.AuthResponse, error) {
		return c.auth.Login(ctx, models.Credentials{Email: email, Password: password})
	})
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	return nil
}

// Signup creates an account and signs into it. It always lands on the
// dashboard.
func (c *Controller) Signup(ctx context.Context, data models.SignupData) error {
	err := c.authenticate(ctx, MsgSignupSuccess, MsgSignupFailed, common.RouteDashboard, func(ctx context.Context) (*models.AuthResponse, error) {
		return c.auth.Signup(ctx, data)
	})
	if err != nil {
		return fmt.Errorf("signup: %w", err)
	}
	return nil
}

// LoginWithGoogle follows the Login contract for a federated identity.
func (c *Controller) LoginWithGoogle(ctx context.Context, profile models.GoogleProfile, redirect string) error {
	err := c.authenticate(ctx, MsgLoginSuccess, MsgGoogleFailed, RedirectTarget(redirect), func(ctx context.Context) (*models.AuthResponse, error) {
		return c.auth.GoogleAuth(ctx, profile)
	})
	if err != nil {
		return fmt.Errorf("google login: %w", err)
	}
	return nil
}

func (c *Controller) authenticate(ctx context.Context, okMsg, failMsg, target string, call func(context.Context) (*models.AuthResponse, error)) error {
	c.setBusy(true)
	defer c.setBusy(false)

	resp, err := call(ctx)
	if err == nil && (resp == nil || resp.Token == "" || resp.User == nil) {
		err = ErrMalformedResponse
	}
	if err != nil {
		c.notify.Error(ctx, client.MessageFrom(err, failMsg))
		return err
	}

	if err := c.creds.SetCredential(ctx, resp.Token); err != nil {
		c.notify.Error(ctx, failMsg)
		return fmt.Errorf("persist credential: %w", err)
	}

	c.update(func() {
		c.store.set(resp.User, resp.Token)
		c.state = StateAuthenticated
	})
	c.log.Info(ctx, "signed in", "user_id", resp.User.ID)

	c.notify.Success(ctx, okMsg)
	c.nav.Navigate(ctx, target)
	return nil
}

// Refresh swaps the current credential for a fresh one. Failures leave the
// session as it was, except for a 401 which the gateway policy handles.
func (c *Controller) Refresh(ctx context.Context) error {
	snap := c.Snapshot()
	if !snap.IsAuthenticated {
		return ErrNotAuthenticated
	}

	c.setBusy(true)
	defer c.setBusy(false)

	resp, err := c.auth.Refresh(ctx, snap.Credential)
	if err != nil {
		return fmt.Errorf("refresh: %w", err)
	}
	if resp == nil || resp.Token == "" {
		return fmt.Errorf("refresh: %w", ErrMalformedResponse)
	}
	if err := c.creds.SetCredential(ctx, resp.Token); err != nil {
		return fmt.Errorf("refresh: persist credential: %w", err)
	}

	c.update(func() {
		user := resp.User
		if user == nil {
			user = c.store.user
		}
		c.store.set(user, resp.Token)
		if c.store.present() {
			c.state = StateAuthenticated
		}
	})
	return nil
}

// Logout ends the session unconditionally. Calling it while anonymous is
// harmless.
func (c *Controller) Logout(ctx context.Context) {
	c.update(func() {
		c.store.clear()
		c.state = StateAnonymous
	})
	c.discardCredential(ctx)

	c.notify.Success(ctx, MsgLogoutSuccess)
	c.nav.Navigate(ctx, common.RouteHome)
}

// CredentialRejected is the gateway's unauthorized handler: the server has
// refused the credential, which the gateway already removed from storage.
// The in-memory session follows and the user is sent to the login page.
func (c *Controller) CredentialRejected(ctx context.Context) {
	c.update(func() {
		c.store.clear()
		if c.state == StateAuthenticated {
			c.state = StateAnonymous
		}
	})
	c.nav.Navigate(ctx, common.RouteLogin)
}

// RedirectTarget returns where a successful login should land. Only
// site-relative paths outside /auth/ are honoured; anything else falls back
// to the dashboard.
func RedirectTarget(redirect string) string {
	r := strings.TrimSpace(redirect)
	switch {
	case r == "":
		return common.RouteDashboard
	case !strings.HasPrefix(r, "/") || strings.HasPrefix(r, "//"):
		return common.RouteDashboard
	case r == "/auth" || strings.HasPrefix(r, "/auth/"):
		return common.RouteDashboard
	default:
		return r
	}
}

package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dmitrijs2005/learnhub/internal/client/client"
	"github.com/dmitrijs2005/learnhub/internal/client/config"
	"github.com/dmitrijs2005/learnhub/internal/client/services"
	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ------------ helpers ------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var aliceJSON = map[string]any{
	"id": 1, "email": "a@x.io", "firstName": "Alice", "lastName": "Liddell",
	"totalPoints": 120, "currentStreak": 3, "longestStreak": 5, "role": "student",
}

// newTestApp builds an App against a fake backend with a temp database.
// Interactive answers are read from input.
func newTestApp(t *testing.T, h http.Handler, input string) (*App, *bytes.Buffer) {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "learnhub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = srv.URL

	out := &bytes.Buffer{}
	return newApp(cfg, db, nil, strings.NewReader(input), out), out
}

// stubPassword makes getPassword return the given passwords in order.
func stubPassword(t *testing.T, pws ...string) {
	t.Helper()
	orig := getPassword
	getPassword = func(io.Writer, string) ([]byte, error) {
		require.NotEmpty(t, pws, "unexpected password prompt")
		pw := pws[0]
		pws = pws[1:]
		return []byte(pw), nil
	}
	t.Cleanup(func() { getPassword = orig })
}

// loginMux serves a successful login for alice plus the extra routes.
func loginMux(extra map[string]http.HandlerFunc) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"token": "t1", "user": aliceJSON})
	})
	for pattern, h := range extra {
		mux.HandleFunc(pattern, h)
	}
	return mux
}

func loginAs(t *testing.T, a *App) {
	t.Helper()
	stubPassword(t, "pw")
	a.reader = bufio.NewReader(io.MultiReader(strings.NewReader("a@x.io\n"), a.reader))
	require.NoError(t, a.Login(context.Background(), nil))
}

// ------------ tests ------------

func TestNewApp_CreatesDatabaseDirectory(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(t.TempDir(), "state", "learnhub.db")

	a, err := NewApp(context.Background(), cfg, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.db.Close() })

	_, err = os.Stat(cfg.DatabasePath)
	require.NoError(t, err)
}

func TestNewApp_BadDatabasePath(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.DatabasePath = filepath.Join(blocker, "learnhub.db")

	_, err := NewApp(context.Background(), cfg, nil)
	require.Error(t, err)
}

func TestApp_GetStatus(t *testing.T) {
	a, _ := newTestApp(t, loginMux(nil), "")
	assert.Equal(t, "(loading /)", a.getStatus())

	a.session.Init(context.Background())
	assert.Equal(t, "(guest /)", a.getStatus())

	loginAs(t, a)
	assert.Equal(t, "(a@x.io /dashboard)", a.getStatus())
	assert.True(t, a.isLoggedIn())
}

func TestApp_RunRestoresSessionAndExits(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/verify-token", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer t0", r.Header.Get("Authorization"))
		writeJSON(w, http.StatusOK, map[string]any{"valid": true, "user": aliceJSON})
	})
	a, out := newTestApp(t, mux, "whoami\nexit\n")

	// Seed the cookie jar the way a previous run would have.
	require.NoError(t, services.NewCookieCredentialStore(a.db, nil).SetCredential(context.Background(), "t0"))

	lines := capturePrintln(t)
	a.Run(context.Background())

	assert.Contains(t, out.String(), "Welcome to LearnHub CLI")
	assert.Contains(t, out.String(), "Signed in as a@x.io")
	assert.Contains(t, out.String(), "Alice Liddell <a@x.io>")
	assert.Contains(t, *lines, "Bye!")
}

func TestRouter_RecordsNavigation(t *testing.T) {
	var out bytes.Buffer
	r := NewRouter(&out)
	assert.Equal(t, common.RouteHome, r.Current())

	r.Navigate(context.Background(), "/dashboard")
	r.Navigate(context.Background(), "/auth/login")

	assert.Equal(t, "/auth/login", r.Current())
	assert.Equal(t, []string{"/dashboard", "/auth/login"}, r.History())
	assert.Equal(t, "-> /dashboard\n-> /auth/login\n", out.String())
}

func TestToastNotifier(t *testing.T) {
	var out bytes.Buffer
	n := &toastNotifier{out: &out}
	n.Success(context.Background(), "Login successful!")
	n.Error(context.Background(), "Login failed")
	assert.Equal(t, "[ok] Login successful!\n[error] Login failed\n", out.String())
}

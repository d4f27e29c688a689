package services

import (
	"context"
	"database/sql"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/client/client"
	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "learnhub.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newStore(t *testing.T, clock *time.Time) *CookieCredentialStore {
	t.Helper()
	s := NewCookieCredentialStore(setupDB(t), nil)
	s.now = func() time.Time { return *clock }
	return s
}

// ---- TESTS ----

var _ client.CredentialStore = (*CookieCredentialStore)(nil)

func TestCookieCredentialStore_SetPersistsCookieAttributes(t *testing.T) {
	clock := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	s := newStore(t, &clock)
	ctx := context.Background()

	require.NoError(t, s.SetCredential(ctx, "t1"))

	token, ok := s.Credential(ctx)
	require.True(t, ok)
	assert.Equal(t, "t1", token)

	c, err := s.Cookie(ctx)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, common.CredentialCookieName, c.Name)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.True(t, clock.Add(7*24*time.Hour).Equal(c.Expires), "cookie lives 7 days")
}

func TestCookieCredentialStore_ExpiresAfterSevenDays(t *testing.T) {
	clock := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	s := newStore(t, &clock)
	ctx := context.Background()

	require.NoError(t, s.SetCredential(ctx, "t1"))

	clock = clock.Add(7*24*time.Hour - time.Minute)
	_, ok := s.Credential(ctx)
	assert.True(t, ok, "still valid just before expiry")

	clock = clock.Add(2 * time.Minute)
	_, ok = s.Credential(ctx)
	assert.False(t, ok, "gone after expiry")
}

func TestCookieCredentialStore_SetReplacesPrevious(t *testing.T) {
	clock := time.Date(2026, 10, 17, 9, 0, 0, 0, time.UTC)
	s := newStore(t, &clock)
	ctx := context.Background()

	require.NoError(t, s.SetCredential(ctx, "t1"))
	require.NoError(t, s.SetCredential(ctx, "t2"))

	token, ok := s.Credential(ctx)
	require.True(t, ok)
	assert.Equal(t, "t2", token)
}

func TestCookieCredentialStore_SetRejectsEmptyToken(t *testing.T) {
	clock := time.Now()
	s := newStore(t, &clock)

	err := s.SetCredential(context.Background(), "")
	require.ErrorIs(t, err, common.ErrInvalidToken)
}

func TestCookieCredentialStore_ClearIsIdempotent(t *testing.T) {
	clock := time.Now()
	s := newStore(t, &clock)
	ctx := context.Background()

	require.NoError(t, s.SetCredential(ctx, "t1"))
	require.NoError(t, s.ClearCredential(ctx))
	require.NoError(t, s.ClearCredential(ctx))

	_, ok := s.Credential(ctx)
	assert.False(t, ok)
}

func TestCookieCredentialStore_ReadErrorMeansNoCredential(t *testing.T) {
	db := setupDB(t)
	s := NewCookieCredentialStore(db, nil)
	require.NoError(t, s.SetCredential(context.Background(), "t1"))
	require.NoError(t, db.Close())

	_, ok := s.Credential(context.Background())
	assert.False(t, ok)
}

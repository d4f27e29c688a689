package cookies

import (
	"context"
	"database/sql"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "cookies.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func tokenCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     "token",
		Value:    value,
		Expires:  expires,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}
}

func TestSetAndGet_RoundTripsAttributes(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	exp := now.Add(7 * 24 * time.Hour)
	require.NoError(t, r.Set(ctx, tokenCookie("t1", exp), now))

	c, err := r.Get(ctx, "token", now)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "t1", c.Value)
	assert.Equal(t, "/", c.Path, "empty path defaults to /")
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.True(t, exp.Equal(c.Expires))
}

func TestGet_NotExists_ReturnsNilNil(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))

	c, err := r.Get(context.Background(), "absent", now)
	require.NoError(t, err)
	require.Nil(t, c)
}

func TestGet_ExpiredIsInvisible(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, tokenCookie("old", now.Add(time.Hour)), now))

	c, err := r.Get(ctx, "token", now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Nil(t, c)
}

func TestSet_UpsertOverwritesValue(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, tokenCookie("old", now.Add(time.Hour)), now))
	require.NoError(t, r.Set(ctx, tokenCookie("new", now.Add(2*time.Hour)), now))

	c, err := r.Get(ctx, "token", now)
	require.NoError(t, err)
	require.NotNil(t, c)
	assert.Equal(t, "new", c.Value)
}

func TestSet_RejectsSessionCookie(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.ErrorIs(t, r.Set(ctx, &http.Cookie{Name: "token", Value: "x"}, now), ErrInvalidCookie)
	require.ErrorIs(t, r.Set(ctx, &http.Cookie{Value: "x", Expires: now.Add(time.Hour)}, now), ErrInvalidCookie)
	require.ErrorIs(t, r.Set(ctx, nil, now), ErrInvalidCookie)
}

func TestList_SkipsExpiredAndSortsByName(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, &http.Cookie{Name: "b", Value: "2", Expires: now.Add(time.Hour), SameSite: http.SameSiteLaxMode}, now))
	require.NoError(t, r.Set(ctx, &http.Cookie{Name: "a", Value: "1", Expires: now.Add(time.Hour)}, now))
	require.NoError(t, r.Set(ctx, &http.Cookie{Name: "c", Value: "3", Expires: now.Add(-time.Hour)}, now))

	list, err := r.List(ctx, now)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Name)
	assert.Equal(t, http.SameSiteDefaultMode, list[0].SameSite)
	assert.Equal(t, "b", list[1].Name)
	assert.Equal(t, http.SameSiteLaxMode, list[1].SameSite)
}

func TestPurgeExpired(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, &http.Cookie{Name: "live", Value: "1", Expires: now.Add(time.Hour)}, now))
	require.NoError(t, r.Set(ctx, &http.Cookie{Name: "dead", Value: "2", Expires: now.Add(-time.Hour)}, now))

	n, err := r.PurgeExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	list, err := r.List(ctx, now.Add(-2*time.Hour))
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "live", list[0].Name)
}

func TestDelete_RemovesCookie_AndIsIdempotent(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, tokenCookie("x", now.Add(time.Hour)), now))
	require.NoError(t, r.Delete(ctx, "token"))

	c, err := r.Get(ctx, "token", now)
	require.NoError(t, err)
	require.Nil(t, c)

	require.NoError(t, r.Delete(ctx, "token"))
}

func TestClear_RemovesAll(t *testing.T) {
	r := NewSQLiteRepository(setupDB(t))
	ctx := context.Background()

	require.NoError(t, r.Set(ctx, &http.Cookie{Name: "a", Value: "1", Expires: now.Add(time.Hour)}, now))
	require.NoError(t, r.Set(ctx, &http.Cookie{Name: "b", Value: "2", Expires: now.Add(time.Hour)}, now))
	require.NoError(t, r.Clear(ctx))

	list, err := r.List(ctx, now)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestRepository_DBErrorsWrapped(t *testing.T) {
	db := setupDB(t)
	r := NewSQLiteRepository(db)
	ctx := context.Background()
	require.NoError(t, db.Close())

	_, err := r.Get(ctx, "k", now)
	require.ErrorContains(t, err, "failed to get cookie[k]")

	err = r.Set(ctx, tokenCookie("v", now.Add(time.Hour)), now)
	require.ErrorContains(t, err, "failed to set cookie[token]")

	require.ErrorContains(t, r.Delete(ctx, "k"), "failed to delete cookie[k]")
	require.ErrorContains(t, r.Clear(ctx), "failed to clear cookies")

	_, err = r.List(ctx, now)
	require.ErrorContains(t, err, "failed to list cookies")

	_, err = r.PurgeExpired(ctx, now)
	require.ErrorContains(t, err, "failed to purge cookies")
}

func TestSameSiteMapping(t *testing.T) {
	for _, s := range []http.SameSite{http.SameSiteStrictMode, http.SameSiteLaxMode, http.SameSiteNoneMode, http.SameSiteDefaultMode} {
		assert.Equal(t, s, sameSiteFromString(sameSiteToString(s)))
	}
}

// Package services contains application services for the LearnHub client.
// This file defines the cookie-backed credential store the gateway reads
// the bearer token from.
package services

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/client/repositories/cookies"
	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/dmitrijs2005/learnhub/internal/dbx"
	"github.com/dmitrijs2005/learnhub/internal/logging"
)

// CookieCredentialStore keeps the bearer credential in a persistent cookie
// named common.CredentialCookieName: valid for common.CredentialTTL, Secure,
// SameSite=Strict.
//
// It implements client.CredentialStore.
type CookieCredentialStore struct {
	db  *sql.DB
	now func() time.Time
	log logging.Logger
}

// NewCookieCredentialStore binds the store to a migrated local database.
func NewCookieCredentialStore(db *sql.DB, log logging.Logger) *CookieCredentialStore {
	if log == nil {
		log = logging.Nop()
	}
	return &CookieCredentialStore{db: db, now: time.Now, log: log}
}

func (s *CookieCredentialStore) getCookieRepo(db dbx.DBTX) cookies.Repository {
	return cookies.NewSQLiteRepository(db)
}

// Credential returns the persisted token. Read failures are logged and
// reported as "no credential".
func (s *CookieCredentialStore) Credential(ctx context.Context) (string, bool) {
	c, err := s.Cookie(ctx)
	if err != nil {
		s.log.Error(ctx, "reading credential cookie failed", "error", err)
		return "", false
	}
	if c == nil || c.Value == "" {
		return "", false
	}
	return c.Value, true
}

// Cookie returns the live credential cookie, or nil if there is none.
func (s *CookieCredentialStore) Cookie(ctx context.Context) (*http.Cookie, error) {
	return s.getCookieRepo(s.db).Get(ctx, common.CredentialCookieName, s.now())
}

// SetCredential persists token, replacing any previous one. Expired cookies
// are purged in the same transaction.
func (s *CookieCredentialStore) SetCredential(ctx context.Context, token string) error {
	if token == "" {
		return fmt.Errorf("set credential: %w", common.ErrInvalidToken)
	}
	now := s.now()
	cookie := &http.Cookie{
		Name:     common.CredentialCookieName,
		Value:    token,
		Path:     "/",
		Expires:  now.Add(common.CredentialTTL),
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	}

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.getCookieRepo(tx)
		if _, err := repo.PurgeExpired(ctx, now); err != nil {
			return err
		}
		return repo.Set(ctx, cookie, now)
	})
}

// ClearCredential removes the credential cookie. Removing an absent cookie
// is not an error.
func (s *CookieCredentialStore) ClearCredential(ctx context.Context) error {
	return s.getCookieRepo(s.db).Delete(ctx, common.CredentialCookieName)
}

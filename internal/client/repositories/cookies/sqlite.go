package cookies

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/dbx"
)

var ErrInvalidCookie = errors.New("invalid cookie")

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Get(ctx context.Context, name string, now time.Time) (*http.Cookie, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT name, value, path, expires_at, secure, same_site
		FROM cookies WHERE name = ? AND expires_at > ?
	`, name, now.Unix())

	c, err := scanCookie(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cookie[%s]: %w", name, err)
	}
	return c, nil
}

// Set upserts c. A cookie without a name or expiry is rejected: session
// cookies have no place in a persistent store.
func (r *SQLiteRepository) Set(ctx context.Context, c *http.Cookie, now time.Time) error {
	if c == nil || c.Name == "" || c.Expires.IsZero() {
		return ErrInvalidCookie
	}
	path := c.Path
	if path == "" {
		path = "/"
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cookies (name, value, path, expires_at, secure, same_site, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			value = excluded.value,
			path = excluded.path,
			expires_at = excluded.expires_at,
			secure = excluded.secure,
			same_site = excluded.same_site,
			created_at = excluded.created_at
	`, c.Name, c.Value, path, c.Expires.Unix(), c.Secure, sameSiteToString(c.SameSite), now.Unix())
	if err != nil {
		return fmt.Errorf("failed to set cookie[%s]: %w", c.Name, err)
	}
	return nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, name string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete cookie[%s]: %w", name, err)
	}
	return nil
}

func (r *SQLiteRepository) List(ctx context.Context, now time.Time) ([]*http.Cookie, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT name, value, path, expires_at, secure, same_site
		FROM cookies WHERE expires_at > ? ORDER BY name
	`, now.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to list cookies: %w", err)
	}
	defer rows.Close()

	var result []*http.Cookie
	for rows.Next() {
		c, err := scanCookie(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cookie row: %w", err)
		}
		result = append(result, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate cookie rows: %w", err)
	}
	return result, nil
}

// PurgeExpired deletes cookies whose expiry is at or before now and reports
// how many were removed.
func (r *SQLiteRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cookies WHERE expires_at <= ?`, now.Unix())
	if err != nil {
		return 0, fmt.Errorf("failed to purge cookies: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to purge cookies: %w", err)
	}
	return n, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM cookies`)
	if err != nil {
		return fmt.Errorf("failed to clear cookies: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCookie(s scanner) (*http.Cookie, error) {
	var (
		c        http.Cookie
		expires  int64
		sameSite string
	)
	if err := s.Scan(&c.Name, &c.Value, &c.Path, &expires, &c.Secure, &sameSite); err != nil {
		return nil, err
	}
	c.Expires = time.Unix(expires, 0)
	c.SameSite = sameSiteFromString(sameSite)
	return &c, nil
}

func sameSiteToString(s http.SameSite) string {
	switch s {
	case http.SameSiteStrictMode:
		return "strict"
	case http.SameSiteLaxMode:
		return "lax"
	case http.SameSiteNoneMode:
		return "none"
	default:
		return "default"
	}
}

func sameSiteFromString(s string) http.SameSite {
	switch s {
	case "strict":
		return http.SameSiteStrictMode
	case "lax":
		return http.SameSiteLaxMode
	case "none":
		return http.SameSiteNoneMode
	default:
		return http.SameSiteDefaultMode
	}
}

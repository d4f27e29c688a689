package cookies

import (
	"context"
	"net/http"
	"time"
)

type Repository interface {
	// Get returns the named cookie, or (nil, nil) if it is absent or expired
	// at now.
	Get(ctx context.Context, name string, now time.Time) (*http.Cookie, error)
	Set(ctx context.Context, c *http.Cookie, now time.Time) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context, now time.Time) ([]*http.Cookie, error)
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
	Clear(ctx context.Context) error
}

package services

import (
	"testing"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.Claims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("server-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenExpiry(t *testing.T) {
	exp := time.Date(2026, 10, 24, 0, 0, 0, 0, time.UTC)

	got, ok := TokenExpiry(signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)}))
	require.True(t, ok)
	assert.True(t, exp.Equal(got))

	_, ok = TokenExpiry(signedToken(t, jwt.RegisteredClaims{Subject: "1"}))
	assert.False(t, ok, "no exp claim")

	_, ok = TokenExpiry("opaque-session-token")
	assert.False(t, ok, "not a JWT")
}

func TestCheckTokenExpiry(t *testing.T) {
	now := time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC)

	expired := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Minute))})
	err := CheckTokenExpiry(expired, now)
	require.ErrorIs(t, err, common.ErrTokenExpired)

	live := signedToken(t, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))})
	require.NoError(t, CheckTokenExpiry(live, now))

	require.NoError(t, CheckTokenExpiry("t1", now), "opaque tokens pass")
}

package services

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/learnhub/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenExpiry reads the exp claim of a JWT without verifying its signature;
// the client has no key and only uses it to skip doomed requests. ok is
// false for opaque tokens and JWTs without exp.
func TokenExpiry(token string) (exp time.Time, ok bool) {
	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// CheckTokenExpiry returns common.ErrTokenExpired when token carries an exp
// claim at or before now. Tokens whose lifetime is unknown pass.
func CheckTokenExpiry(token string, now time.Time) error {
	exp, ok := TokenExpiry(token)
	if !ok {
		return nil
	}
	if !now.Before(exp) {
		return fmt.Errorf("%w at %s", common.ErrTokenExpired, exp.UTC().Format(time.RFC3339))
	}
	return nil
}

// Package common contains shared constants and sentinel errors used across
// LearnHub client components.
package common

import "time"

// CredentialCookieName is the name of the cookie that carries the bearer
// credential between runs.
const CredentialCookieName = "token"

// CredentialTTL is how long a persisted credential cookie stays valid.
const CredentialTTL = 7 * 24 * time.Hour

// HTTP header names used on outbound requests.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Navigation targets understood by the presentation layer.
const (
	RouteHome      = "/"
	RouteLogin     = "/auth/login"
	RouteDashboard = "/dashboard"
)

// Package cookies persists client-side cookies in the local SQLite database.
//
// A cookie is keyed by name. Expired cookies are invisible to Get and List
// and can be removed with PurgeExpired. Only the attributes the client cares
// about are stored: value, path, expiry, Secure and SameSite.
package cookies

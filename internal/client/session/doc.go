// Package session owns the client-side authentication lifecycle.
//
// A Controller moves through four states:
//
//	uninitialized → verifying → authenticated | anonymous
//	authenticated → anonymous   (logout, or the server rejecting the credential)
//
// The in-memory Store holds the current user and credential; they are always
// set and cleared together, so IsAuthenticated is true exactly when both are
// present. The credential is also persisted through a client.CredentialStore
// so a later run can resume the session after verifying it with the server.
//
// Remote calls never run under the controller's lock. Overlapping Login,
// Signup or Init calls are not de-duplicated: whichever finishes last wins.
package session

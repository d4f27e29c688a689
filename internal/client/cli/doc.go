// Package cli provides the interactive LearnHub command-line client.
//
// It wires configuration, the local cookie jar, the API gateway and the
// session controller, then runs a REPL. Notifications print as toasts and
// every navigation prints the route a browser would land on.
//
// Key features:
//   - Login / Signup / Google login / Logout with a persisted session
//   - Dashboard, courses, lessons and quizzes
//   - Leaderboards, profile, badges and payment history
//   - Live server push over websocket
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App, Router and runREPL for details.
package cli

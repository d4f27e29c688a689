// Package client is the single point of outbound communication with the
// LearnHub backend.
//
// # Overview
//
// HTTPClient dispatches JSON requests against a base URL with a fixed
// timeout and default headers. Every request carries the current credential
// as "Authorization: Bearer <token>" when the CredentialStore holds one, and
// a fresh X-Request-ID.
//
// Typed operation groups hang off the client:
//
//	c.Auth        login, signup, federated login, refresh, verify, password reset
//	c.Courses     catalog, enrollment, progress, lessons
//	c.Quiz        quizzes, attempts, answers, results
//	c.Leaderboard per course, global, own rank
//	c.Users       profile, password, badges, stats, enrollments
//	c.Payments    orders, verification, history
//	c.Proctoring  proctored session start/end and violations
//
// Each operation only maps arguments to a request shape; none of them knows
// about session state.
//
// # Error Handling
//
// Transport failures and timeouts wrap ErrUnavailable. Responses with
// status >= 400 are returned as *RemoteError carrying the status, the server
// message and the raw body. A 401 from any operation also clears the stored
// credential and fires the unauthorized handler (see WithUnauthorizedHandler);
// the error still reaches the caller and matches ErrUnauthorized.
//
// # Local storage
//
// InitDatabase and RunMigrations bootstrap the SQLite file that persists the
// credential cookie between runs.
package client

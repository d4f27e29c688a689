package session

import "github.com/dmitrijs2005/learnhub/internal/client/models"

type State int

const (
	StateUninitialized State = iota
	StateVerifying
	StateAuthenticated
	StateAnonymous
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateVerifying:
		return "verifying"
	case StateAuthenticated:
		return "authenticated"
	case StateAnonymous:
		return "anonymous"
	default:
		return "unknown"
	}
}

// Store is the in-memory session: a user and the credential that
// authenticates them.
type Store struct {
	user       *models.User
	credential string
}

// set replaces user and credential in one step. A nil user or empty
// credential clears both.
func (s *Store) set(user *models.User, credential string) {
	if user == nil || credential == "" {
		s.clear()
		return
	}
	u := *user
	s.user = &u
	s.credential = credential
}

func (s *Store) clear() {
	s.user = nil
	s.credential = ""
}

func (s *Store) present() bool {
	return s.user != nil && s.credential != ""
}

// Snapshot is a read-only copy of the session as seen by consumers.
type Snapshot struct {
	State      State
	User       *models.User
	Credential string
	// Busy is set while a login, signup or refresh is in flight.
	Busy bool
	// Loading stays true until startup verification has finished.
	Loading         bool
	IsAuthenticated bool
}

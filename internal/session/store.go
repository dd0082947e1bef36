package session

import (
	"sync"

	"github.com/rs/zerolog"

	"etfdash/internal/api"
)

// Bridge keys. The user record is stored separately from the flag so a
// half-written session is detectable.
const (
	keyLoggedIn = "isLoggedIn"
	keyUser     = "user"
)

// State is the tagged session state. LoggedIn is true only when User is
// present and carries a positive id; every load normalizes toward
// logged-out when that does not hold (fail closed).
type State struct {
	LoggedIn bool
	User     *api.User
}

// LoggedOut is the zero session state.
func LoggedOut() State {
	return State{}
}

// LoggedIn builds an authenticated state for a valid user.
func LoggedIn(user *api.User) State {
	if user == nil || user.ID <= 0 {
		return LoggedOut()
	}
	return State{LoggedIn: true, User: user}
}

// Store is the single source of truth for session state. Writes persist
// through the bridge first and then notify subscribers, so independent
// views never have to trust in-memory copies.
type Store struct {
	bridge *Bridge
	log    zerolog.Logger

	mu    sync.Mutex
	state State
	subs  []func(State)
}

// NewStore creates a store and primes it from the bridge.
func NewStore(bridge *Bridge, log zerolog.Logger) *Store {
	s := &Store{
		bridge: bridge,
		log:    log.With().Str("component", "session_store").Logger(),
	}
	s.Load()
	return s
}

// Load re-reads the bridge and returns the normalized state. A true
// flag with a missing or malformed user record is treated as logged
// out.
func (s *Store) Load() State {
	var loggedIn bool
	var user api.User

	hasFlag := s.bridge.Get(keyLoggedIn, &loggedIn)
	hasUser := s.bridge.Get(keyUser, &user)

	state := LoggedOut()
	if hasFlag && loggedIn {
		if hasUser && user.ID > 0 {
			state = State{LoggedIn: true, User: &user}
		} else {
			s.log.Warn().Msg("Login flag set without a valid user record; treating as logged out")
		}
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()
	return state
}

// Current returns the last loaded state without touching the bridge.
func (s *Store) Current() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Login records a successful authentication. A nil user or one without
// a positive id is rejected so the fail-closed invariant holds at the
// write side too.
func (s *Store) Login(user *api.User) {
	if user == nil || user.ID <= 0 {
		s.log.Warn().Msg("Rejecting login with missing or invalid user identity")
		return
	}
	s.bridge.Set(keyLoggedIn, true)
	s.bridge.Set(keyUser, user)

	s.mu.Lock()
	s.state = State{LoggedIn: true, User: user}
	state := s.state
	subs := s.subs
	s.mu.Unlock()

	s.log.Info().Int64("user_id", user.ID).Str("username", user.Username).Msg("Session opened")
	for _, fn := range subs {
		fn(state)
	}
}

// Logout clears the session.
func (s *Store) Logout() {
	s.bridge.Remove(keyLoggedIn)
	s.bridge.Remove(keyUser)

	s.mu.Lock()
	s.state = LoggedOut()
	state := s.state
	subs := s.subs
	s.mu.Unlock()

	s.log.Info().Msg("Session closed")
	for _, fn := range subs {
		fn(state)
	}
}

// Subscribe registers fn to run after every state change.
func (s *Store) Subscribe(fn func(State)) {
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

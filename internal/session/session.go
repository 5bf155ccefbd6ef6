package session

import (
	"errors"
	"sync"

	"washradar/internal/resultset"
)

// Search session states at the presentation boundary.
const (
	StateIdle    = "idle"
	StateLoading = "loading"
	StateReady   = "ready"
	StateError   = "error"
)

var transitions = map[string]map[string]struct{}{
	StateIdle:    {StateLoading: {}},
	StateLoading: {StateLoading: {}, StateReady: {}, StateError: {}},
	StateReady:   {StateLoading: {}, StateIdle: {}},
	StateError:   {StateLoading: {}, StateIdle: {}},
}

// CanTransition returns whether a session may move between two states.
func CanTransition(from, to string) bool {
	if from == to && from != StateLoading {
		return true
	}
	allowed, ok := transitions[from]
	if !ok {
		return false
	}
	_, ok = allowed[to]
	return ok
}

var errInvalidTransition = errors.New("session: invalid state transition")

// Session tracks one interactive search surface. Each Begin hands out a
// monotonically increasing token; only the completion carrying the latest
// token is applied, so a superseded query is discarded instead of
// overwriting a newer one.
type Session struct {
	mu      sync.Mutex
	state   string
	seq     uint64
	current *resultset.ResultSet
	err     error
}

func New() *Session {
	return &Session{state: StateIdle}
}

// Begin moves the session into loading and returns the token the eventual
// completion must present.
func (s *Session) Begin() (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !CanTransition(s.state, StateLoading) {
		return 0, errInvalidTransition
	}
	s.state = StateLoading
	s.seq++
	return s.seq, nil
}

// Complete installs a computed result set. A stale token (a newer query
// has begun since) is ignored and reports false.
func (s *Session) Complete(token uint64, rs *resultset.ResultSet) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq || s.state != StateLoading {
		return false
	}
	s.state = StateReady
	s.current = rs
	s.err = nil
	return true
}

// Fail records a query failure, subject to the same last-query-wins rule.
func (s *Session) Fail(token uint64, err error) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if token != s.seq || s.state != StateLoading {
		return false
	}
	s.state = StateError
	s.current = nil
	s.err = err
	return true
}

// Reset returns the session to idle, dropping any held results.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateIdle
	s.current = nil
	s.err = nil
}

func (s *Session) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns the result set of the last completed query, if any.
func (s *Session) Current() *resultset.ResultSet {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Session) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

package session

import (
	"errors"
	"testing"

	"washradar/internal/models"
	"washradar/internal/resultset"
)

func TestCanTransition(t *testing.T) {
	if !CanTransition(StateIdle, StateLoading) {
		t.Fatal("expected idle -> loading to be allowed")
	}
	if !CanTransition(StateLoading, StateReady) {
		t.Fatal("expected loading -> ready to be allowed")
	}
	if !CanTransition(StateLoading, StateError) {
		t.Fatal("expected loading -> error to be allowed")
	}
	if !CanTransition(StateReady, StateLoading) {
		t.Fatal("expected ready -> loading to be allowed")
	}
	if !CanTransition(StateError, StateLoading) {
		t.Fatal("expected error -> loading to be allowed")
	}
	if CanTransition(StateIdle, StateReady) {
		t.Fatal("unexpected idle -> ready allowed")
	}
	if CanTransition(StateIdle, StateError) {
		t.Fatal("unexpected idle -> error allowed")
	}
}

func TestLifecycle(t *testing.T) {
	s := New()
	if s.State() != StateIdle {
		t.Fatalf("expected idle, got %s", s.State())
	}

	token, err := s.Begin()
	if err != nil {
		t.Fatalf("unexpected begin error: %v", err)
	}
	if s.State() != StateLoading {
		t.Fatalf("expected loading, got %s", s.State())
	}

	rs := resultset.New([]models.SearchResult{{ID: "a"}})
	if !s.Complete(token, rs) {
		t.Fatal("expected completion to apply")
	}
	if s.State() != StateReady || s.Current() != rs {
		t.Fatal("expected ready with installed results")
	}
}

func TestLastQueryWins(t *testing.T) {
	s := New()

	stale, _ := s.Begin()
	fresh, _ := s.Begin() // user typed again before the first resolved

	if s.Complete(stale, resultset.New(nil)) {
		t.Fatal("stale completion must be discarded")
	}
	if s.State() != StateLoading {
		t.Fatalf("stale completion must not change state, got %s", s.State())
	}

	rs := resultset.New([]models.SearchResult{{ID: "b"}})
	if !s.Complete(fresh, rs) {
		t.Fatal("latest completion must apply")
	}
	if got := s.Current(); got != rs {
		t.Fatal("latest results must win")
	}

	// a stale failure after completion changes nothing either
	if s.Fail(stale, errors.New("late timeout")) {
		t.Fatal("stale failure must be discarded")
	}
	if s.State() != StateReady {
		t.Fatalf("expected ready, got %s", s.State())
	}
}

func TestFailAndRetry(t *testing.T) {
	s := New()
	token, _ := s.Begin()

	boom := errors.New("catalog down")
	if !s.Fail(token, boom) {
		t.Fatal("expected failure to apply")
	}
	if s.State() != StateError || !errors.Is(s.Err(), boom) {
		t.Fatalf("expected error state carrying cause, got %s %v", s.State(), s.Err())
	}

	if _, err := s.Begin(); err != nil {
		t.Fatalf("retry from error state must be allowed: %v", err)
	}
}

func TestReset(t *testing.T) {
	s := New()
	token, _ := s.Begin()
	s.Complete(token, resultset.New(nil))

	s.Reset()
	if s.State() != StateIdle || s.Current() != nil || s.Err() != nil {
		t.Fatal("reset must drop held state")
	}
}

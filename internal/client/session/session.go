// Package session holds the client's auth state: the access token and the
// signed-in user, hydrated from and mirrored to a Persister.
package session

import (
	"errors"
	"fmt"
	"sync"

	"tridivya/internal/models"
)

type Status int

const (
	StatusUnknown Status = iota
	StatusAuthenticated
	StatusUnauthenticated
)

func (s Status) String() string {
	switch s {
	case StatusAuthenticated:
		return "authenticated"
	case StatusUnauthenticated:
		return "unauthenticated"
	default:
		return "unknown"
	}
}

var ErrNotInitialized = errors.New("session store not initialized")

// State is what gets persisted.
type State struct {
	Token string       `json:"token"`
	User  *models.User `json:"user,omitempty"`
}

type Persister interface {
	Load() (State, error)
	Save(State) error
	Clear() error
}

type Store struct {
	mu     sync.RWMutex
	p      Persister
	state  State
	status Status

	subs   map[int]func(Status, State)
	nextID int
}

func New(p Persister) *Store {
	return &Store{p: p, subs: make(map[int]func(Status, State))}
}

// Init hydrates the store. A persister error leaves the store
// unauthenticated and is returned.
func (s *Store) Init() error {
	const op = "session.Init"

	st, err := s.p.Load()

	s.mu.Lock()
	if err != nil || st.Token == "" {
		s.state, s.status = State{}, StatusUnauthenticated
	} else {
		s.state, s.status = st, StatusAuthenticated
	}
	status, state := s.status, s.state
	s.mu.Unlock()

	s.notify(status, state)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (s *Store) Login(token string, user *models.User) error {
	const op = "session.Login"

	if token == "" {
		return fmt.Errorf("%s: empty token", op)
	}

	st := State{Token: token, User: user}
	if err := s.p.Save(st); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.mu.Lock()
	s.state, s.status = st, StatusAuthenticated
	s.mu.Unlock()

	s.notify(StatusAuthenticated, st)

	return nil
}

// Logout clears persisted state and notifies subscribers even when
// clearing fails, so the UI never stays signed in.
func (s *Store) Logout() error {
	const op = "session.Logout"

	err := s.p.Clear()

	s.mu.Lock()
	s.state, s.status = State{}, StatusUnauthenticated
	s.mu.Unlock()

	s.notify(StatusUnauthenticated, State{})

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Token is read by the API client on every call.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.Token
}

func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.state.User
}

func (s *Store) Status() Status {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.status
}

func (s *Store) IsAuthenticated() bool {
	return s.Status() == StatusAuthenticated
}

// Subscribe registers fn for status changes and returns its cancel func.
func (s *Store) Subscribe(fn func(Status, State)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Store) notify(status Status, state State) {
	s.mu.RLock()
	subs := make([]func(Status, State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.RUnlock()

	for _, fn := range subs {
		fn(status, state)
	}
}

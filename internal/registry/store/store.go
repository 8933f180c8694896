package store

import (
	"sync"

	"github.com/dserbyn/regconsole/internal/logging"
	"github.com/dserbyn/regconsole/internal/registry/api"
	"github.com/dserbyn/regconsole/internal/registry/models"
	"github.com/dserbyn/regconsole/internal/registry/session"
)

// Store is the single mutable shared resource of the console. All
// mutation passes through dispatch, which applies a reducer under the
// lock and then notifies subscribers with a value snapshot, so a
// subscriber never observes a partially applied transition.
type Store struct {
	mu      sync.RWMutex
	state   State
	subs    map[int]func(State)
	nextSub int
	seqs    map[string]*opSeq

	api    *api.Client
	tokens *session.Holder
	log    logging.Logger
}

// Option seeds parts of the initial state, used by the persistence
// gate to rehydrate the whitelisted slices before the shell mounts.
type Option func(*State)

// WithSession seeds the rehydrated staff session.
func WithSession(sess *models.StaffSession) Option {
	return func(st *State) { st.Auth.Session = sess }
}

// WithDarkTheme seeds the rehydrated theme preference.
func WithDarkTheme(dark bool) Option {
	return func(st *State) { st.DarkTheme = dark }
}

// WithPeople seeds the rehydrated person collection.
func WithPeople(people []models.Person) Option {
	return func(st *State) { st.People.Items = people }
}

// New builds a store over the given API client. tokens is the bearer
// holder shared with the HTTP transport; a rehydrated session is
// pushed into it so the first request after restart is authenticated.
func New(c *api.Client, tokens *session.Holder, log logging.Logger, opts ...Option) *Store {
	st := State{}
	for _, opt := range opts {
		opt(&st)
	}
	if st.Auth.Session != nil {
		if err := tokens.Set(st.Auth.Session); err != nil {
			// A snapshot holding an unparsable token is as good as no
			// session at all.
			st.Auth.Session = nil
		}
	}
	return &Store{
		state:  st,
		subs:   make(map[int]func(State)),
		seqs:   make(map[string]*opSeq),
		api:    c,
		tokens: tokens,
		log:    log,
	}
}

// Snapshot returns a copy of the current state. Collections inside the
// copy share backing arrays with the store, but reducers never write
// into those arrays, so the snapshot is safe to read indefinitely.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Subscribe registers fn to run after every state transition. The
// returned cancel function removes the subscription; it is safe to
// call more than once.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// dispatch applies a reducer atomically and notifies subscribers
// outside the lock, so a subscriber may safely call back into the
// store.
func (s *Store) dispatch(reduce func(*State)) {
	s.mu.Lock()
	reduce(&s.state)
	snap := s.state
	fns := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

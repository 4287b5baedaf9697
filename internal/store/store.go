package store

import "sync"

// Action describes an intended state transition.
type Action interface {
	Type() string
}

// Dispatcher is the dispatch entry point of a store.
type Dispatcher interface {
	Dispatch(Action)
}

// Thunk is an action that runs with access to dispatch and the current state
// instead of reaching the reducer.
type Thunk func(d Dispatcher, getState func() State)

func (Thunk) Type() string { return "@@thunk" }

// Reducer computes the next state. It must not mutate its input.
type Reducer func(State, Action) State

// Store is a single-writer, many-reader state container. Dispatch may be
// called from any goroutine. Every subscriber sees every reduction, in
// order: an action dispatched while subscribers are being notified is queued
// and reduced once the current round of notifications has finished, so no
// subscriber is ever handed a snapshot older than one it already saw.
type Store struct {
	mu        sync.Mutex
	reducer   Reducer
	state     State
	subs      []subscription
	nextID    int
	pending   []Action
	notifying bool
}

type subscription struct {
	id int
	fn func(State)
}

// New returns a store seeded with initial.
func New(reducer Reducer, initial State) *Store {
	return &Store{reducer: reducer, state: initial}
}

// State returns the current snapshot.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch reduces a plain action and notifies every subscriber with the new
// snapshot. Thunks are invoked directly. When called during notification the
// action is queued and Dispatch returns before it is reduced; the goroutine
// already notifying reduces it next.
func (s *Store) Dispatch(a Action) {
	if a == nil {
		return
	}
	if t, ok := a.(Thunk); ok {
		t(s, s.State)
		return
	}

	s.mu.Lock()
	s.pending = append(s.pending, a)
	if s.notifying {
		s.mu.Unlock()
		return
	}
	s.notifying = true
	for len(s.pending) > 0 {
		next := s.pending[0]
		s.pending = s.pending[1:]
		s.state = s.reducer(s.state, next)
		snapshot := s.state
		subs := make([]subscription, len(s.subs))
		copy(subs, s.subs)
		s.mu.Unlock()

		for _, sub := range subs {
			sub.fn(snapshot)
		}
		s.mu.Lock()
	}
	s.notifying = false
	s.mu.Unlock()
}

// Subscribe registers fn for change notifications and returns a function
// that removes it. Calling the returned function twice is a no-op.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i:i], s.subs[i+1:]...)
				return
			}
		}
	}
}

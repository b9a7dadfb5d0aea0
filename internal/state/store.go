package state

import (
	"maps"
	"slices"
	"sync"

	"github.com/five82/metsearch/internal/met"
)

// Snapshot captures the browsing state at a point in time.
type Snapshot struct {
	Query    string
	Results  []met.ObjectID
	Selected met.Object
	Marked   map[met.ObjectID]struct{}

	Pending int    // requests in flight
	Version uint64 // bumped on every mutation
}

// HasSelection reports whether an object has been loaded.
func (s Snapshot) HasSelection() bool {
	return !s.Selected.IsEmpty()
}

// IsMarked reports whether id has been selected at least once.
func (s Snapshot) IsMarked(id met.ObjectID) bool {
	_, ok := s.Marked[id]
	return ok
}

// Listener receives the snapshot produced by a mutation.
type Listener func(Snapshot)

// Store coordinates concurrent updates to the snapshot and fans changes out
// to subscribers.
type Store struct {
	mu        sync.RWMutex
	snapshot  Snapshot
	listeners map[int]Listener
	nextID    int
}

// SetQuery replaces the query text.
func (s *Store) SetQuery(query string) {
	s.mutate(func(snap *Snapshot) {
		snap.Query = query
	})
}

// SetResults replaces the result list wholesale.
func (s *Store) SetResults(ids []met.ObjectID) {
	s.mutate(func(snap *Snapshot) {
		snap.Results = slices.Clone(ids)
	})
}

// SetSelected replaces the selected object wholesale. Fields of the previous
// object never survive.
func (s *Store) SetSelected(obj met.Object) {
	s.mutate(func(snap *Snapshot) {
		snap.Selected = obj.Clone()
	})
}

// Mark adds id to the set of marked entries. Marks are never removed.
func (s *Store) Mark(id met.ObjectID) {
	s.mutate(func(snap *Snapshot) {
		if snap.Marked == nil {
			snap.Marked = make(map[met.ObjectID]struct{})
		}
		snap.Marked[id] = struct{}{}
	})
}

// BeginRequest records a request going out.
func (s *Store) BeginRequest() {
	s.mutate(func(snap *Snapshot) {
		snap.Pending++
	})
}

// EndRequest records a request completing, successfully or not.
func (s *Store) EndRequest() {
	s.mutate(func(snap *Snapshot) {
		if snap.Pending > 0 {
			snap.Pending--
		}
	})
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot.clone()
}

// Subscribe registers fn to run after every mutation. Listeners run on the
// mutating goroutine, outside the lock. The returned func unsubscribes.
func (s *Store) Subscribe(fn Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listeners == nil {
		s.listeners = make(map[int]Listener)
	}
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

func (s *Store) mutate(apply func(*Snapshot)) {
	s.mu.Lock()
	apply(&s.snapshot)
	s.snapshot.Version++
	snap := s.snapshot.clone()
	listeners := make([]Listener, 0, len(s.listeners))
	for _, id := range slices.Sorted(maps.Keys(s.listeners)) {
		listeners = append(listeners, s.listeners[id])
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(snap)
	}
}

func (s Snapshot) clone() Snapshot {
	dup := s
	dup.Results = slices.Clone(s.Results)
	dup.Selected = s.Selected.Clone()
	dup.Marked = maps.Clone(s.Marked)
	return dup
}

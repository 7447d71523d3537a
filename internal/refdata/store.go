// Package refdata holds the reference collections (categories, users) for
// the lifetime of a session.
//
// Each collection is fetched at most once. A failed fetch is logged and
// leaves the collection empty; consumers cannot distinguish "not yet
// loaded" from "loaded empty" and must degrade to rendering raw ids.
// The store is the only writer; consumers receive the collections by
// reference and must not mutate them.
package refdata

import (
	"context"
	"sync"

	"eventdesk/internal/logger"
	"eventdesk/internal/model"
)

// Fetcher is the subset of the API client the store needs.
type Fetcher interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListUsers(ctx context.Context) ([]model.User, error)
}

// Snapshot is a read-only view of the current collections.
type Snapshot struct {
	Categories []model.Category
	Users      []model.User
}

// Store owns the two reference collections and notifies subscribers when
// either transitions to populated. Categories and users load independently
// and may complete in either order.
type Store struct {
	fetcher Fetcher

	mu          sync.RWMutex
	categories  []model.Category
	users       []model.User
	triedCats   bool
	triedUsers  bool
	closed      bool
	nextSubID   int
	subscribers map[int]func()
}

// NewStore creates a store backed by the given fetcher. Collections start
// empty until Load is called.
func NewStore(fetcher Fetcher) *Store {
	return &Store{
		fetcher:     fetcher,
		categories:  []model.Category{},
		users:       []model.User{},
		subscribers: map[int]func(){},
	}
}

// Load fetches each collection that has not been attempted yet. Failures
// are logged, not returned: a missing reference collection degrades the
// display but never blocks the rest of the application. Fetches are not
// retried; a second Load after a failure is a no-op for that collection.
func (s *Store) Load(ctx context.Context) {
	s.mu.Lock()
	loadCats := !s.triedCats && !s.closed
	loadUsers := !s.triedUsers && !s.closed
	s.triedCats = s.triedCats || loadCats
	s.triedUsers = s.triedUsers || loadUsers
	s.mu.Unlock()

	if loadCats {
		categories, err := s.fetcher.ListCategories(ctx)
		if err != nil {
			logger.Warn("reference load failed", logger.Fields{"collection": "categories"}, err)
		} else {
			s.setCategories(categories)
		}
	}

	if loadUsers {
		users, err := s.fetcher.ListUsers(ctx)
		if err != nil {
			logger.Warn("reference load failed", logger.Fields{"collection": "users"}, err)
		} else {
			s.setUsers(users)
		}
	}
}

// Seed installs collections directly, e.g. from an offline snapshot. Seeded
// collections count as loaded.
func (s *Store) Seed(categories []model.Category, users []model.User) {
	s.mu.Lock()
	s.triedCats = true
	s.triedUsers = true
	s.mu.Unlock()
	if categories != nil {
		s.setCategories(categories)
	}
	if users != nil {
		s.setUsers(users)
	}
}

// Snapshot returns the current collections by reference. Callers must not
// mutate them.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{Categories: s.categories, Users: s.users}
}

// Subscribe registers fn to run after either collection is populated.
// Returns an unsubscribe function.
func (s *Store) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

// Close tears the store down. A fetch completing after Close discards its
// result instead of applying it to stale state.
func (s *Store) Close() {
	s.mu.Lock()
	s.closed = true
	s.subscribers = map[int]func(){}
	s.mu.Unlock()
}

func (s *Store) setCategories(categories []model.Category) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.categories = categories
	subs := s.currentSubscribers()
	s.mu.Unlock()
	notify(subs)
}

func (s *Store) setUsers(users []model.User) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.users = users
	subs := s.currentSubscribers()
	s.mu.Unlock()
	notify(subs)
}

// currentSubscribers must be called with the lock held.
func (s *Store) currentSubscribers() []func() {
	subs := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return subs
}

func notify(subs []func()) {
	for _, fn := range subs {
		fn()
	}
}

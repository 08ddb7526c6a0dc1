package store

import (
	"context"
	"sync"

	"github.com/docuvault/authgate-go/internal/types"
)

type MemoryStore struct {
	mu    sync.RWMutex
	docs  map[int64]types.Document
	users map[int64]types.User
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		docs:  make(map[int64]types.Document),
		users: make(map[int64]types.User),
	}
}

// NewSeededStore returns a store loaded with the demo fixtures used by
// the dev server and the end-to-end tests.
func NewSeededStore() *MemoryStore {
	s := NewMemoryStore()
	for _, u := range []types.User{
		{ID: 1, Username: "alice"},
		{ID: 2, Username: "bob"},
		{ID: 99, Username: "sysadmin", IsAdmin: true},
	} {
		s.users[u.ID] = u
	}
	for _, d := range []types.Document{
		{ID: 101, OwnerID: 1, Content: "Alice's private diary"},
		{ID: 102, OwnerID: 2, Content: "Bob's secret recipe"},
		{ID: 103, OwnerID: 99, Content: "Server master passwords"},
	} {
		s.docs[d.ID] = d
	}
	return s
}

func (s *MemoryStore) Get(ctx context.Context, id int64) (types.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	if !ok {
		return types.Document{}, ErrNotFound
	}
	return doc, nil
}

func (s *MemoryStore) Put(ctx context.Context, doc types.Document) error {
	s.mu.Lock()
	s.docs[doc.ID] = doc
	s.mu.Unlock()
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return ErrNotFound
	}
	delete(s.docs, id)
	return nil
}

// Users exposes the user half of the store. Splitting the interfaces
// keeps handlers honest about which records they touch.
func (s *MemoryStore) Users() UserStore { return (*memUsers)(s) }

type memUsers MemoryStore

func (s *memUsers) Get(ctx context.Context, id int64) (types.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return types.User{}, ErrNotFound
	}
	return u, nil
}

func (s *memUsers) Put(ctx context.Context, u types.User) error {
	s.mu.Lock()
	s.users[u.ID] = u
	s.mu.Unlock()
	return nil
}

func (s *memUsers) Update(ctx context.Context, id int64, fn func(types.User) types.User) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return types.User{}, ErrNotFound
	}
	u = fn(u)
	u.ID = id // the closure may not rekey the record
	s.users[id] = u
	return u, nil
}

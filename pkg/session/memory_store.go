package session

import (
	"context"
	"slices"
	"sync"
)

type memoryStore struct {
	mu    sync.RWMutex
	users map[string]UserRecord
}

// NewMemoryStore returns an in-memory UserStore. It deep-copies records on
// the way in and out so callers cannot mutate stored state, and is intended
// for tests and local development.
func NewMemoryStore() UserStore {
	return &memoryStore{users: make(map[string]UserRecord)}
}

func (s *memoryStore) Get(ctx context.Context, userID string) (*UserRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[userID]
	if !ok {
		return nil, ErrUserNotFound
	}

	copied := cloneRecord(user)
	return &copied, nil
}

func (s *memoryStore) Save(ctx context.Context, user *UserRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.users[user.ID] = cloneRecord(*user)
	return nil
}

func cloneRecord(user UserRecord) UserRecord {
	user.Sessions = slices.Clone(user.Sessions)
	for i := range user.Sessions {
		user.Sessions[i].PayAsYouGo.Purchases = slices.Clone(user.Sessions[i].PayAsYouGo.Purchases)
	}
	return user
}

// Package redisstore implements session.UserStore on Redis. The user
// record is serialized to JSON and stored under a single key, keeping the
// same whole-document read/replace semantics as the MongoDB store.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/uboraplatform/ubora/pkg/session"
)

// DefaultKeyPrefix namespaces user record keys.
const DefaultKeyPrefix = "ubora:user:"

// Store is a Redis-backed session.UserStore.
type Store struct {
	client    *redis.Client
	keyPrefix string
}

// Option configures a Store.
type Option func(*Store)

// WithKeyPrefix overrides the key namespace.
func WithKeyPrefix(prefix string) Option {
	return func(s *Store) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// New returns a Store over the given client.
func New(client *redis.Client, opts ...Option) *Store {
	if client == nil {
		panic("redisstore: redis client is required")
	}
	s := &Store{client: client, keyPrefix: DefaultKeyPrefix}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get retrieves the full user record.
func (s *Store) Get(ctx context.Context, userID string) (*session.UserRecord, error) {
	raw, err := s.client.Get(ctx, s.keyPrefix+userID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, session.ErrUserNotFound
		}
		return nil, errors.Join(session.ErrPersistenceFailure, err)
	}

	var user session.UserRecord
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, errors.Join(session.ErrPersistenceFailure, err)
	}
	return &user, nil
}

// Save replaces the whole user record. Records do not expire; session
// history is permanent.
func (s *Store) Save(ctx context.Context, user *session.UserRecord) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return errors.Join(session.ErrPersistenceFailure, err)
	}
	if err := s.client.Set(ctx, s.keyPrefix+user.ID, raw, 0).Err(); err != nil {
		return errors.Join(session.ErrPersistenceFailure, err)
	}
	return nil
}

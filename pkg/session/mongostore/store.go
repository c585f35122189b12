// Package mongostore implements session.UserStore on MongoDB. The user
// record is one document keyed by user id; Save is a single ReplaceOne, so
// the store's per-document atomicity is the only write guarantee.
package mongostore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/uboraplatform/ubora/pkg/session"
)

// DefaultCollection is the collection name used when none is given.
const DefaultCollection = "users"

// Store is a MongoDB-backed session.UserStore.
type Store struct {
	col *mongo.Collection
}

// New returns a Store over the given database. An empty collection name
// falls back to DefaultCollection.
func New(db *mongo.Database, collection string) *Store {
	if db == nil {
		panic("mongostore: database is required")
	}
	if collection == "" {
		collection = DefaultCollection
	}
	return &Store{col: db.Collection(collection)}
}

// Get retrieves the full user record.
func (s *Store) Get(ctx context.Context, userID string) (*session.UserRecord, error) {
	var user session.UserRecord
	err := s.col.FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, session.ErrUserNotFound
		}
		return nil, errors.Join(session.ErrPersistenceFailure, err)
	}
	return &user, nil
}

// Save replaces the whole user record, creating it if absent. The sessions
// array is always written in full; there are no partial array updates.
func (s *Store) Save(ctx context.Context, user *session.UserRecord) error {
	_, err := s.col.ReplaceOne(ctx,
		bson.M{"_id": user.ID},
		user,
		options.Replace().SetUpsert(true),
	)
	if err != nil {
		return errors.Join(session.ErrPersistenceFailure, err)
	}
	return nil
}

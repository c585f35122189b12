package session

import "context"

// UserStore defines the persistence contract for user records. The record
// is one document: Get returns the whole aggregate and Save replaces it,
// sessions array included. No delta writes, no deep merges.
//
// There is no version check between a Get and the following Save, so two
// concurrent writers can race and the later Save wins on stale data. This
// mirrors the platform's document-store usage and is documented rather
// than hidden; see the package documentation.
type UserStore interface {
	// Get retrieves a user record by id.
	// Returns ErrUserNotFound if no record exists.
	Get(ctx context.Context, userID string) (*UserRecord, error)

	// Save creates or replaces a user record, keyed by UserRecord.ID.
	Save(ctx context.Context, user *UserRecord) error
}

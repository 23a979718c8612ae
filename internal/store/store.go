// Package store provides the memory persistence interface and its SQLite
// implementation. The store is the single owner of persisted state; callers
// re-read on every operation and hold no cache.
package store

import (
	"context"
	"errors"

	"github.com/dpratt/recall/internal/model"
)

// ErrNotFound is returned when a memory id does not exist for the user.
var ErrNotFound = errors.New("memory not found")

// PutParams holds parameters for storing a new memory.
type PutParams struct {
	UserID  string
	Content string
	Topics  []string
}

// UpdateParams holds parameters for overwriting an existing memory in place.
type UpdateParams struct {
	ID      string
	UserID  string
	Content string
	Topics  []string
}

// UserCount pairs a user id with the number of memories it owns.
type UserCount struct {
	UserID string `json:"user_id"`
	Count  int    `json:"count"`
}

// Store defines the memory persistence interface.
type Store interface {
	// Put stores a new memory, assigning its id and timestamps.
	Put(ctx context.Context, p PutParams) (*model.Memory, error)

	// Get retrieves a memory by id, scoped to the owning user.
	Get(ctx context.Context, id, userID string) (*model.Memory, error)

	// ListByUser returns all of a user's memories in creation order.
	ListByUser(ctx context.Context, userID string) ([]model.Memory, error)

	// Update overwrites content and topics in place and refreshes the
	// updated_at timestamp. Returns ErrNotFound if the id is missing.
	Update(ctx context.Context, p UpdateParams) (*model.Memory, error)

	// Delete removes a single memory. Returns ErrNotFound if missing.
	Delete(ctx context.Context, id, userID string) error

	// Clear removes all memories for a user, returning the count removed.
	// Clearing a user with no memories succeeds with 0.
	Clear(ctx context.Context, userID string) (int64, error)

	// Users returns every user id with its memory count.
	Users(ctx context.Context) ([]UserCount, error)

	// Close closes the store.
	Close() error
}

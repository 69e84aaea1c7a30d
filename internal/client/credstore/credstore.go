// Package credstore is the durable credential store: a two-key local
// key-value table holding the auth token and the serialized user snapshot,
// surviving process restarts. Backed by SQLite.
package credstore

import "context"

// Keys persisted by the session manager.
const (
	KeyAuthToken = "authToken"
	KeyUserData  = "userData"
)

// Repository is the credential-store contract. Get returns nil for a missing
// key; Clear removes every entry.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

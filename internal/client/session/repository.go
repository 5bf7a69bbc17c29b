// Package session persists the authenticated session token locally so it
// survives client restarts until an explicit logout. The token is the only
// persisted client state; everything else is re-fetched from the server.
package session

import "context"

// KeyToken is the fixed key the bearer token is stored under.
const KeyToken = "token"

// Repository is a small key/value store for session state.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

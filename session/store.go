// Package session keeps the per-visitor key-value state the storefront used
// to hold in browser local storage: the session token, the user profile and
// the guest cart.
package session

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("session key not found")

// Store is a flat key-value store. Keys are already scoped to a visitor.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, keys ...string) error
}

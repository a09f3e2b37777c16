package kvstore

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("key not found")
	ErrQuotaExceeded = errors.New("storage quota exceeded")
)

// Backend is the string-keyed area the Store serializes into.
// Get returns ErrNotFound when the key is absent.
type Backend interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

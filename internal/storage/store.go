// Package storage provides the small key-value store that backs visitor
// state. Values are opaque strings; callers own their encoding.
package storage

import (
	"context"
	"errors"
)

var ErrClosed = errors.New("storage: store is closed")

type Store interface {
	// Get returns the value for key. ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	// Keys lists stored keys that start with prefix.
	Keys(ctx context.Context, prefix string) ([]string, error)
	Close() error
}

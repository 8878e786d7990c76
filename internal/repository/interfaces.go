package repository

import (
	"context"
	"errors"
)

// ErrStorageClosed is returned by backends after Close
var ErrStorageClosed = errors.New("storage closed")

// LocalStorage is a durable string key/value store mirroring browser local storage.
// GetItem reports ok=false when the key is absent.
type LocalStorage interface {
	GetItem(ctx context.Context, key string) (value string, ok bool, err error)
	SetItem(ctx context.Context, key, value string) error
	RemoveItem(ctx context.Context, key string) error
	Close() error
}

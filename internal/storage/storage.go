package storage

import (
	"context"
	"io"
	"time"
)

// KVStore is the small key-value store that holds per-session client state.
// Values are opaque bytes; callers serialize to JSON.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error) // storage.ErrNotFound when missing
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// ImageStore keeps uploaded job and portfolio images.
type ImageStore interface {
	// Put stores the image under name and returns a public URL.
	Put(ctx context.Context, name, contentType string, data io.Reader) (string, error)
	Delete(ctx context.Context, name string) error
}

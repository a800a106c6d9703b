package storage

import "context"

// KV is the device-local key-value storage the document store persists to.
// Get reports ok=false when the key has never been written.
type KV interface {
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

var (
	_ KV = (*SQLiteKV)(nil)
	_ KV = (*FileKV)(nil)
	_ KV = (*MemoryKV)(nil)
)

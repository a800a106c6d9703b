package storage

import (
	"context"
	"fmt"
)

// OpenKV opens the named backend. path is the SQLite file for "sqlite" and
// the directory for "file"; "memory" ignores it.
func OpenKV(ctx context.Context, backend string, path string) (KV, error) {
	switch backend {
	case "sqlite", "":
		return OpenSQLiteKV(ctx, path)
	case "file":
		return NewFileKV(path)
	case "memory":
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}

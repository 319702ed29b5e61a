package records

import (
	"context"
)

// Repository is the host key-value storage: a single flat namespace of string
// keys mapped to opaque values.
//
// Get returns (nil, nil) when the key is absent. Errors are reserved for the
// storage itself failing (closed database, I/O), never for missing data.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}

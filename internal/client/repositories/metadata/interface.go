// Package metadata is the key/value table of the local state database.
package metadata

import (
	"context"

	"github.com/dmitrijs2005/checklist/internal/dbx"
)

// Repository stores small opaque values under string keys.
//
// Get returns (nil, nil) for a missing key. Delete of a missing key is not
// an error.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}

// Factory binds a Repository to a handle, so the same code can run against
// the database or inside a transaction.
type Factory func(db dbx.DBTX) Repository

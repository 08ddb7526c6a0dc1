package store

import (
	"context"
	"errors"

	"github.com/docuvault/authgate-go/internal/types"
)

// ErrNotFound is returned when a key resolves to nothing. It is an
// ordinary outcome, not a fault; handlers translate it to 404.
var ErrNotFound = errors.New("not found")

type DocumentStore interface {
	Get(ctx context.Context, id int64) (types.Document, error)
	Put(ctx context.Context, doc types.Document) error
	Delete(ctx context.Context, id int64) error
}

type UserStore interface {
	Get(ctx context.Context, id int64) (types.User, error)
	Put(ctx context.Context, u types.User) error
	// Update applies fn to the stored record under the write lock,
	// avoiding the read-then-write race of Get followed by Put.
	Update(ctx context.Context, id int64, fn func(types.User) types.User) (types.User, error)
}

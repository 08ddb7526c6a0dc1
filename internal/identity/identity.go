package identity

import (
	"context"
	"errors"
	"net/http"

	"github.com/docuvault/authgate-go/internal/store"
	"github.com/docuvault/authgate-go/internal/types"
)

var ErrUnauthenticated = errors.New("unauthenticated")

// Resolver turns an incoming request into the Subject it runs as. The
// gate itself never constructs a Subject; swapping the resolver changes
// who the caller is, never what they may do.
type Resolver interface {
	Resolve(r *http.Request) (types.Subject, error)
}

// Static always resolves to one stored user. It stands in for real
// token verification in dev and tests, the shape a production verifier
// must produce.
type Static struct {
	Users store.UserStore
	ID    int64
}

func (s *Static) Resolve(r *http.Request) (types.Subject, error) {
	u, err := s.Users.Get(r.Context(), s.ID)
	if err != nil {
		return types.Subject{}, ErrUnauthenticated
	}
	return types.Subject{ID: u.ID, IsAdmin: u.IsAdmin, Name: u.Username}, nil
}

type ctxKey int

const subjectKey ctxKey = 1

func With(ctx context.Context, sub types.Subject) context.Context {
	return context.WithValue(ctx, subjectKey, sub)
}

func From(ctx context.Context) (types.Subject, bool) {
	sub, ok := ctx.Value(subjectKey).(types.Subject)
	return sub, ok
}

package authz

import (
	"context"

	"github.com/docuvault/authgate-go/internal/types"
)

type Decision struct {
	Allowed bool
	Reason  string
}

type Request struct {
	Subject  types.Subject
	Action   types.Action
	Resource types.Document // already resolved; not-found is handled upstream
}

type Authorizer interface {
	Check(ctx context.Context, req Request) (Decision, error)
}

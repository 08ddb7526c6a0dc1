package authz

import (
	"context"

	"github.com/docuvault/authgate-go/internal/types"
)

// Policy is the local object-level decision rule. It is a pure
// predicate over (subject, resource, action): no I/O, no caching, each
// request evaluated on its own. A decision on one document id never
// carries over to another.
type Policy struct {
	Flags types.PolicyFlags
}

func NewPolicy(flags types.PolicyFlags) *Policy {
	return &Policy{Flags: flags}
}

func (p *Policy) Check(ctx context.Context, req Request) (Decision, error) {
	if p.Flags.SkipObjectOwnership {
		// permissive variant: every authenticated subject passes
		return Decision{Allowed: true}, nil
	}

	doc := req.Resource
	sub := req.Subject

	switch req.Action {
	case types.ActionRead:
		if doc.IsPublic || doc.OwnerID == sub.ID || sub.IsAdmin {
			return Decision{Allowed: true}, nil
		}
		return Decision{Reason: "not authorized to access this document"}, nil
	case types.ActionDelete:
		// public visibility grants read only, never deletion
		if doc.OwnerID == sub.ID || sub.IsAdmin {
			return Decision{Allowed: true}, nil
		}
		return Decision{Reason: "not authorized to delete this document"}, nil
	case types.ActionUpdate:
		if doc.OwnerID == sub.ID || sub.IsAdmin {
			return Decision{Allowed: true}, nil
		}
		return Decision{Reason: "not authorized to modify this document"}, nil
	}
	return Decision{Reason: "unknown action"}, nil
}

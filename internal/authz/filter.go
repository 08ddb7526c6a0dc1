package authz

import "github.com/docuvault/authgate-go/internal/types"

// Writable profile fields. The filter works from this allow-list only:
// anything not named here is dropped, so a field added to the model
// later stays unwritable until it is deliberately listed.
const (
	FieldUsername = "username"
	FieldIsAdmin  = "is_admin" // privileged
)

// ProfileFilter reduces a proposed profile change-set to the fields the
// subject may actually write. It never touches the store; the caller
// applies the result.
type ProfileFilter struct {
	Flags types.PolicyFlags
}

func NewProfileFilter(flags types.PolicyFlags) *ProfileFilter {
	return &ProfileFilter{Flags: flags}
}

// Filter returns the allowed subset of proposed. Privileged fields are
// stripped unless the permissive flag is set and the subject already
// holds the privilege; by default they are never writable here,
// admin or not — privilege changes belong to an administrative
// operation, not self-service update.
func (f *ProfileFilter) Filter(sub types.Subject, proposed map[string]any) map[string]any {
	allowed := make(map[string]any, len(proposed))
	for name, value := range proposed {
		switch name {
		case FieldUsername:
			allowed[name] = value
		case FieldIsAdmin:
			if f.Flags.PrivilegedFieldsWritable && sub.IsAdmin {
				allowed[name] = value
			}
		}
		// unknown fields fall through and are dropped, not rejected
	}
	return allowed
}

// Apply writes an allowed change-set onto a stored profile record.
func Apply(u types.User, allowed map[string]any) types.User {
	if v, ok := allowed[FieldUsername].(string); ok {
		u.Username = v
	}
	if v, ok := allowed[FieldIsAdmin].(bool); ok {
		u.IsAdmin = v
	}
	return u
}

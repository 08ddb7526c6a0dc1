package types

// Action names one of the handler entry points that reach the
// authorization gate.
type Action string

const (
	ActionRead   Action = "read"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

// Subject is the authenticated caller for the duration of one request.
// It is produced by an identity.Resolver; the gate never constructs one.
type Subject struct {
	ID      int64  `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	Name    string `json:"username,omitempty"`
}

// Document is the resource under object-level protection. OwnerID must
// reference a stored user; OwnerID and IsPublic together determine
// default read access.
type Document struct {
	ID       int64  `json:"doc_id"`
	OwnerID  int64  `json:"owner_id"`
	Content  string `json:"content"`
	IsPublic bool   `json:"is_public"`
}

// User is the self-service profile record. IsAdmin is a privileged
// field: the profile update path must never let a non-admin set it.
type User struct {
	ID       int64  `json:"user_id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"is_admin"`
}

// PolicyFlags parameterizes the gate. The zero value is the hardened
// configuration; flipping a flag reproduces the corresponding permissive
// behavior so it can be exercised in tests without a second code path.
type PolicyFlags struct {
	// SkipObjectOwnership disables the per-object ownership check and
	// allows any authenticated subject through.
	SkipObjectOwnership bool
	// PrivilegedFieldsWritable lets admin subjects write privileged
	// profile fields through the self-service path. When false those
	// fields are never writable there for anyone.
	PrivilegedFieldsWritable bool
}

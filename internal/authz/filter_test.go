package authz

import (
	"testing"

	"github.com/docuvault/authgate-go/internal/types"
)

func TestFilterStripsPrivilegedField(t *testing.T) {
	f := NewProfileFilter(types.PolicyFlags{})
	sub := types.Subject{ID: 1, IsAdmin: false}

	allowed := f.Filter(sub, map[string]any{
		"username": "mallory",
		"is_admin": true,
	})

	if _, ok := allowed["is_admin"]; ok {
		t.Fatalf("is_admin passed the filter for a non-admin subject")
	}
	if allowed["username"] != "mallory" {
		t.Fatalf("username = %v, want mallory", allowed["username"])
	}

	stored := types.User{ID: 1, Username: "alice", IsAdmin: false}
	after := Apply(stored, allowed)
	if after.IsAdmin {
		t.Fatalf("applying filtered change-set escalated is_admin")
	}
	if after.Username != "mallory" {
		t.Fatalf("username not applied: %q", after.Username)
	}
}

func TestFilterPrivilegedFieldNeverWritableByDefault(t *testing.T) {
	// even an admin cannot self-mutate is_admin on the hardened flags
	f := NewProfileFilter(types.PolicyFlags{})
	sub := types.Subject{ID: 99, IsAdmin: true}

	allowed := f.Filter(sub, map[string]any{"is_admin": false})
	if _, ok := allowed["is_admin"]; ok {
		t.Fatalf("is_admin writable through self-service path")
	}
}

func TestFilterPermissiveFlagStillRequiresPrivilege(t *testing.T) {
	f := NewProfileFilter(types.PolicyFlags{PrivilegedFieldsWritable: true})

	allowed := f.Filter(types.Subject{ID: 1}, map[string]any{"is_admin": true})
	if _, ok := allowed["is_admin"]; ok {
		t.Fatalf("non-admin acquired is_admin via permissive flag")
	}

	allowed = f.Filter(types.Subject{ID: 99, IsAdmin: true}, map[string]any{"is_admin": false})
	if v, ok := allowed["is_admin"].(bool); !ok || v {
		t.Fatalf("admin self-demotion not passed through: %v", allowed)
	}
}

func TestFilterBenignPassthrough(t *testing.T) {
	f := NewProfileFilter(types.PolicyFlags{})

	allowed := f.Filter(types.Subject{ID: 2}, map[string]any{"username": "newname"})
	if len(allowed) != 1 || allowed["username"] != "newname" {
		t.Fatalf("unexpected change-set: %v", allowed)
	}
}

func TestFilterDropsUnknownFields(t *testing.T) {
	f := NewProfileFilter(types.PolicyFlags{})

	allowed := f.Filter(types.Subject{ID: 2}, map[string]any{
		"username":  "x",
		"notAField": "y",
	})
	if len(allowed) != 1 || allowed["username"] != "x" {
		t.Fatalf("unknown field survived the allow-list: %v", allowed)
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/docuvault/authgate-go/internal/audit"
	"github.com/docuvault/authgate-go/internal/authz"
	"github.com/docuvault/authgate-go/internal/httpx"
	"github.com/docuvault/authgate-go/internal/identity"
	"github.com/docuvault/authgate-go/internal/store"
	"github.com/docuvault/authgate-go/internal/types"
)

type ProfileHandler struct {
	Users  store.UserStore
	Filter *authz.ProfileFilter
	Audit  *audit.Log
}

func NewProfileHandler(users store.UserStore, f *authz.ProfileFilter, log *audit.Log) *ProfileHandler {
	return &ProfileHandler{Users: users, Filter: f, Audit: log}
}

// Update handles PUT /api/users/me. The raw body is decoded as-is: it
// may name any field, including privileged ones. The filter decides
// what survives; nothing else reaches the store.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	sub, ok := identity.From(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var proposed map[string]any
	if err := json.NewDecoder(r.Body).Decode(&proposed); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid JSON")
		return
	}

	allowed := h.Filter.Filter(sub, proposed)
	h.Audit.Record(sub, types.ActionUpdate, sub.ID, true, "")

	updated, err := h.Users.Update(r.Context(), sub.ID, func(u types.User) types.User {
		return authz.Apply(u, allowed)
	})
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "store error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, updated)
}

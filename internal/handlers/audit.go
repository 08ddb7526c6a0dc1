package handlers

import (
	"net/http"
	"strconv"

	"github.com/docuvault/authgate-go/internal/audit"
	"github.com/docuvault/authgate-go/internal/httpx"
	"github.com/docuvault/authgate-go/internal/identity"
)

type AuditHandler struct {
	Log *audit.Log
}

func NewAuditHandler(log *audit.Log) *AuditHandler {
	return &AuditHandler{Log: log}
}

// Recent serves GET /admin/audit?n=50. Admin only; the trail names
// subjects and resources, so it is itself a protected resource.
func (h *AuditHandler) Recent(w http.ResponseWriter, r *http.Request) {
	sub, ok := identity.From(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}
	if !sub.IsAdmin {
		httpx.WriteError(w, http.StatusForbidden, "admin only")
		return
	}

	n, _ := strconv.Atoi(r.URL.Query().Get("n"))
	httpx.WriteJSON(w, http.StatusOK, h.Log.Recent(n))
}

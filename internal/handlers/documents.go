package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/docuvault/authgate-go/internal/audit"
	"github.com/docuvault/authgate-go/internal/authz"
	"github.com/docuvault/authgate-go/internal/httpx"
	"github.com/docuvault/authgate-go/internal/identity"
	"github.com/docuvault/authgate-go/internal/store"
	"github.com/docuvault/authgate-go/internal/types"
)

type DocumentHandler struct {
	Docs  store.DocumentStore
	Authz authz.Authorizer
	Audit *audit.Log
}

func NewDocumentHandler(docs store.DocumentStore, az authz.Authorizer, log *audit.Log) *DocumentHandler {
	return &DocumentHandler{Docs: docs, Authz: az, Audit: log}
}

type deleteResponse struct {
	Status    string `json:"status"`
	DeletedID int64  `json:"deleted_id"`
}

func (h *DocumentHandler) Get(w http.ResponseWriter, r *http.Request) {
	sub, ok := identity.From(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "docID"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	doc, err := h.Docs.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "store error")
		return
	}

	// fresh decision per request, per object
	d, err := h.Authz.Check(r.Context(), authz.Request{
		Subject:  sub,
		Action:   types.ActionRead,
		Resource: doc,
	})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "authorization backend unavailable")
		return
	}
	h.Audit.Record(sub, types.ActionRead, doc.ID, d.Allowed, d.Reason)
	if !d.Allowed {
		httpx.WriteError(w, http.StatusForbidden, d.Reason)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, doc)
}

func (h *DocumentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	sub, ok := identity.From(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "docID"), 10, 64)
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid document id")
		return
	}

	doc, err := h.Docs.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		httpx.WriteError(w, http.StatusNotFound, "Document not found")
		return
	}
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "store error")
		return
	}

	d, err := h.Authz.Check(r.Context(), authz.Request{
		Subject:  sub,
		Action:   types.ActionDelete,
		Resource: doc,
	})
	if err != nil {
		httpx.WriteError(w, http.StatusInternalServerError, "authorization backend unavailable")
		return
	}
	h.Audit.Record(sub, types.ActionDelete, doc.ID, d.Allowed, d.Reason)
	if !d.Allowed {
		httpx.WriteError(w, http.StatusForbidden, d.Reason)
		return
	}

	if err := h.Docs.Delete(r.Context(), id); err != nil {
		// raced with another delete
		httpx.WriteError(w, http.StatusNotFound, "Document not found")
		return
	}
	httpx.WriteJSON(w, http.StatusOK, deleteResponse{Status: "success", DeletedID: id})
}

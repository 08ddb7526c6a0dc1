package handlers

import (
	"net/http"

	"github.com/docuvault/authgate-go/internal/httpx"
	"github.com/docuvault/authgate-go/internal/version"
)

func Version(w http.ResponseWriter, r *http.Request) {
	httpx.WriteJSON(w, http.StatusOK, version.Get())
}

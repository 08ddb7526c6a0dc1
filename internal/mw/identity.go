package mw

import (
	"net/http"

	"github.com/docuvault/authgate-go/internal/httpx"
	"github.com/docuvault/authgate-go/internal/identity"
)

// Identity resolves the caller once per request and stashes the Subject
// in the context. Handlers downstream assume it is present.
func Identity(res identity.Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sub, err := res.Resolve(r)
			if err != nil {
				httpx.WriteError(w, http.StatusUnauthorized, "could not validate credentials")
				return
			}
			next.ServeHTTP(w, r.WithContext(identity.With(r.Context(), sub)))
		})
	}
}

package identity

import (
	"net/http"
	"strconv"
	"strings"

	jwtx "github.com/golang-jwt/jwt/v5"

	"github.com/docuvault/authgate-go/internal/store"
	"github.com/docuvault/authgate-go/internal/types"
)

// Bearer verifies an HS256 bearer token and resolves its subject claim
// against the user store. The stored record is authoritative for
// is_admin; the token only names the caller.
type Bearer struct {
	Users  store.UserStore
	Secret []byte
	Issuer string // optional
}

func (b *Bearer) Resolve(r *http.Request) (types.Subject, error) {
	raw, ok := bearerToken(r.Header.Get("Authorization"))
	if !ok {
		return types.Subject{}, ErrUnauthenticated
	}

	opts := []jwtx.ParserOption{jwtx.WithValidMethods([]string{"HS256"})}
	if b.Issuer != "" {
		opts = append(opts, jwtx.WithIssuer(b.Issuer))
	}

	tok, err := jwtx.Parse(raw, func(t *jwtx.Token) (any, error) {
		return b.Secret, nil
	}, opts...)
	if err != nil || !tok.Valid {
		return types.Subject{}, ErrUnauthenticated
	}

	sub, err := tok.Claims.GetSubject()
	if err != nil || sub == "" {
		return types.Subject{}, ErrUnauthenticated
	}
	id, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return types.Subject{}, ErrUnauthenticated
	}

	u, err := b.Users.Get(r.Context(), id)
	if err != nil {
		return types.Subject{}, ErrUnauthenticated
	}
	return types.Subject{ID: u.ID, IsAdmin: u.IsAdmin, Name: u.Username}, nil
}

func bearerToken(authz string) (string, bool) {
	const prefix = "Bearer "
	if authz == "" || !strings.HasPrefix(authz, prefix) {
		return "", false
	}
	return strings.TrimSpace(authz[len(prefix):]), true
}

package identity

import (
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	jwtx "github.com/golang-jwt/jwt/v5"

	"github.com/docuvault/authgate-go/internal/store"
)

var testSecret = []byte("test-secret")

func signToken(t *testing.T, sub string, secret []byte) string {
	t.Helper()
	tok := jwtx.NewWithClaims(jwtx.SigningMethodHS256, jwtx.RegisteredClaims{
		Subject:   sub,
		ExpiresAt: jwtx.NewNumericDate(time.Now().Add(time.Minute)),
	})
	s, err := tok.SignedString(secret)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	return s
}

func TestBearerResolvesStoredUser(t *testing.T) {
	users := store.NewSeededStore().Users()
	b := &Bearer{Users: users, Secret: testSecret}

	r := httptest.NewRequest("GET", "/api/documents/101", nil)
	r.Header.Set("Authorization", "Bearer "+signToken(t, "99", testSecret))

	sub, err := b.Resolve(r)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sub.ID != 99 || !sub.IsAdmin {
		t.Fatalf("subject = %+v, want stored sysadmin", sub)
	}
}

func TestBearerRejectsBadInput(t *testing.T) {
	users := store.NewSeededStore().Users()
	b := &Bearer{Users: users, Secret: testSecret}

	cases := []struct {
		name  string
		authz string
	}{
		{"missing_header", ""},
		{"wrong_scheme", "Basic abc"},
		{"garbage_token", "Bearer not.a.jwt"},
		{"wrong_key", "Bearer " + func() string {
			tok := jwtx.NewWithClaims(jwtx.SigningMethodHS256, jwtx.RegisteredClaims{Subject: "1"})
			s, _ := tok.SignedString([]byte("other-secret"))
			return s
		}()},
		{"unknown_user", "Bearer "}, // filled below
	}
	cases[4].authz = "Bearer " + signToken(t, "12345", testSecret)

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tc.authz != "" {
				r.Header.Set("Authorization", tc.authz)
			}
			if _, err := b.Resolve(r); !errors.Is(err, ErrUnauthenticated) {
				t.Fatalf("Resolve: %v, want ErrUnauthenticated", err)
			}
		})
	}
}

func TestStaticResolvesFixedSubject(t *testing.T) {
	users := store.NewSeededStore().Users()
	s := &Static{Users: users, ID: 1}

	sub, err := s.Resolve(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if sub.ID != 1 || sub.IsAdmin || sub.Name != "alice" {
		t.Fatalf("subject = %+v, want alice", sub)
	}
}

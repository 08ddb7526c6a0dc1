package di

import (
	"os"
	"strconv"

	"github.com/docuvault/authgate-go/internal/authz"
	"github.com/docuvault/authgate-go/internal/identity"
	"github.com/docuvault/authgate-go/internal/store"
	"github.com/docuvault/authgate-go/internal/types"
)

func ProvideFlags() types.PolicyFlags {
	return types.PolicyFlags{
		SkipObjectOwnership:      os.Getenv("AUTHGATE_SKIP_OWNERSHIP") == "1",
		PrivilegedFieldsWritable: os.Getenv("AUTHGATE_PRIV_FIELDS_WRITABLE") == "1",
	}
}

func ProvideAuthorizer(flags types.PolicyFlags) authz.Authorizer {
	switch os.Getenv("AUTHGATE_AUTHZ") {
	case "fga":
		cfg := authz.OpenFGAConfig{
			APIURL:   getenv("FGA_API_URL", "http://localhost:8080"),
			StoreID:  os.Getenv("FGA_STORE_ID"),
			APIToken: os.Getenv("FGA_API_TOKEN"),
			ModelID:  os.Getenv("FGA_MODEL_ID"),
		}
		a, err := authz.NewOpenFGA(cfg)
		if err != nil {
			panic(err)
		}
		return a
	case "mock":
		return &authz.Mock{AlwaysAllow: true}
	case "local":
		fallthrough
	default:
		return authz.NewPolicy(flags)
	}
}

func ProvideResolver(users store.UserStore) identity.Resolver {
	switch os.Getenv("AUTHGATE_IDENTITY") {
	case "jwt":
		return &identity.Bearer{
			Users:  users,
			Secret: []byte(os.Getenv("AUTHGATE_JWT_SECRET")),
			Issuer: os.Getenv("AUTHGATE_JWT_ISSUER"),
		}
	case "static":
		fallthrough
	default:
		// simulated authenticated caller; swap for jwt in prod
		id, err := strconv.ParseInt(getenv("AUTHGATE_STATIC_SUBJECT", "1"), 10, 64)
		if err != nil {
			id = 1
		}
		return &identity.Static{Users: users, ID: id}
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

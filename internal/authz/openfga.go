package authz

import (
	"context"
	"fmt"

	fga "github.com/openfga/go-sdk/client"
)

// OpenFGA delegates the object-level check to an OpenFGA store instead
// of the local Policy predicate. The relation model is expected to
// mirror the local rule (viewer via public/owner/admin, deleter via
// owner/admin); tuples live server-side.
type OpenFGA struct {
	c       *fga.OpenFgaClient
	modelID string
}

type OpenFGAConfig struct {
	APIURL   string
	StoreID  string
	APIToken string // optional
	ModelID  string // optional but recommended in prod
}

func NewOpenFGA(cfg OpenFGAConfig) (*OpenFGA, error) {
	conf := &fga.ClientConfiguration{
		ApiUrl:  cfg.APIURL,
		StoreId: cfg.StoreID,
	}

	// Pin a specific auth model if provided
	if cfg.ModelID != "" {
		conf.AuthorizationModelId = cfg.ModelID
	}

	client, err := fga.NewSdkClient(conf)
	if err != nil {
		return nil, fmt.Errorf("openfga_client_init: %w", err)
	}

	return &OpenFGA{
		c:       client,
		modelID: cfg.ModelID,
	}, nil
}

func (o *OpenFGA) Check(ctx context.Context, req Request) (Decision, error) {
	checkReq := fga.ClientCheckRequest{
		User:     fmt.Sprintf("user:%d", req.Subject.ID),
		Relation: string(req.Action), // "read" | "update" | "delete"
		Object:   fmt.Sprintf("document:%d", req.Resource.ID),
	}

	resp, err := o.c.Check(ctx).Body(checkReq).Execute()
	if err != nil {
		return Decision{}, fmt.Errorf("fga_check_error: %w", err)
	}

	if resp.Allowed != nil && *resp.Allowed {
		return Decision{Allowed: true}, nil
	}
	return Decision{Allowed: false, Reason: "policy_denied"}, nil
}

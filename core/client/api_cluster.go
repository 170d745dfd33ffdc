package client

import (
	"context"
	"net/http"

	"github.com/opensvc/sfclient/core/health"
	"github.com/opensvc/sfclient/core/upgrade"
)

// GetClusterHealth returns the health of the cluster, with the health
// states of the nodes and applications selected by the filters.
func (t *T) GetClusterHealth(ctx context.Context, params *GetClusterHealthParams) (health.ClusterHealth, error) {
	r := newRequest("GetClusterHealth", http.MethodGet, "/$/GetClusterHealth", "6.0")
	if err := r.addClusterHealthParams(params); err != nil {
		return health.ClusterHealth{}, err
	}
	return get(ctx, t, r, health.ClusterHealthCodec)
}

// GetClusterHealthUsingPolicy returns the health of the cluster,
// evaluated with the policies instead of the cluster manifest policies.
func (t *T) GetClusterHealthUsingPolicy(ctx context.Context, params *GetClusterHealthParams, policies health.ClusterHealthPolicies) (health.ClusterHealth, error) {
	r := newRequest("GetClusterHealthUsingPolicy", http.MethodPost, "/$/GetClusterHealth", "6.0")
	if err := r.addClusterHealthParams(params); err != nil {
		return health.ClusterHealth{}, err
	}
	b, err := body(r.operation, policies, health.ClusterHealthPoliciesCodec)
	if err != nil {
		return health.ClusterHealth{}, err
	}
	return get(ctx, t, r.withBody(b), health.ClusterHealthCodec)
}

// StartClusterUpgrade starts upgrading the code or configuration of the
// cluster.
func (t *T) StartClusterUpgrade(ctx context.Context, d upgrade.StartClusterUpgradeDescription) error {
	r := newRequest("StartClusterUpgrade", http.MethodPost, "/$/Upgrade", "6.0")
	b, err := body(r.operation, d, upgrade.StartClusterUpgradeDescriptionCodec)
	if err != nil {
		return err
	}
	return t.send(ctx, r.withBody(b))
}

// GetClusterUpgradeProgress returns the progress of the current cluster
// upgrade.
func (t *T) GetClusterUpgradeProgress(ctx context.Context) (upgrade.ClusterUpgradeProgressObject, error) {
	r := newRequest("GetClusterUpgradeProgress", http.MethodGet, "/$/GetUpgradeProgress", "6.0")
	return get(ctx, t, r, upgrade.ClusterUpgradeProgressObjectCodec)
}

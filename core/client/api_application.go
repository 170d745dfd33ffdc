package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/inventory"
	"github.com/opensvc/sfclient/core/upgrade"
)

func applicationPath(id fabric.ApplicationID, suffix string) string {
	return "/Applications/" + url.PathEscape(string(id)) + suffix
}

// GetApplicationInfoList returns a page of the applications.
func (t *T) GetApplicationInfoList(ctx context.Context, params *GetApplicationInfoListParams) (inventory.PagedApplicationInfoList, error) {
	r := newRequest("GetApplicationInfoList", http.MethodGet, "/Applications", "6.1")
	if params != nil {
		if err := addOptionalQuery(r, "ApplicationTypeName", params.ApplicationTypeName); err != nil {
			return inventory.PagedApplicationInfoList{}, err
		}
		if err := addOptionalQuery(r, "ExcludeApplicationParameters", params.ExcludeApplicationParameters); err != nil {
			return inventory.PagedApplicationInfoList{}, err
		}
		if err := addOptionalQuery(r, "ContinuationToken", params.ContinuationToken); err != nil {
			return inventory.PagedApplicationInfoList{}, err
		}
		if err := addOptionalQuery(r, "MaxResults", params.MaxResults); err != nil {
			return inventory.PagedApplicationInfoList{}, err
		}
	}
	return get(ctx, t, r, inventory.PagedApplicationInfoListCodec)
}

// GetServiceInfoList returns a page of the services of the application.
func (t *T) GetServiceInfoList(ctx context.Context, id fabric.ApplicationID, params *GetServiceInfoListParams) (inventory.PagedServiceInfoList, error) {
	r := newRequest("GetServiceInfoList", http.MethodGet, applicationPath(id, "/$/GetServices"), "6.0")
	if params != nil {
		if err := addOptionalQuery(r, "ServiceTypeName", params.ServiceTypeName); err != nil {
			return inventory.PagedServiceInfoList{}, err
		}
		if err := addOptionalQuery(r, "ContinuationToken", params.ContinuationToken); err != nil {
			return inventory.PagedServiceInfoList{}, err
		}
	}
	return get(ctx, t, r, inventory.PagedServiceInfoListCodec)
}

// GetPartitionInfoList returns a page of the partitions of the service.
func (t *T) GetPartitionInfoList(ctx context.Context, id fabric.ServiceID, params *GetPartitionInfoListParams) (inventory.PagedServicePartitionInfoList, error) {
	path := "/Services/" + url.PathEscape(string(id)) + "/$/GetPartitions"
	r := newRequest("GetPartitionInfoList", http.MethodGet, path, "6.0")
	if params != nil {
		if err := addOptionalQuery(r, "ContinuationToken", params.ContinuationToken); err != nil {
			return inventory.PagedServicePartitionInfoList{}, err
		}
	}
	return get(ctx, t, r, inventory.PagedServicePartitionInfoListCodec)
}

// StartApplicationUpgrade starts upgrading the application to the
// target application type version.
func (t *T) StartApplicationUpgrade(ctx context.Context, id fabric.ApplicationID, d upgrade.ApplicationUpgradeDescription) error {
	r := newRequest("StartApplicationUpgrade", http.MethodPost, applicationPath(id, "/$/Upgrade"), "6.0")
	b, err := body(r.operation, d, upgrade.ApplicationUpgradeDescriptionCodec)
	if err != nil {
		return err
	}
	return t.send(ctx, r.withBody(b))
}

// GetApplicationUpgrade returns the progress of the application upgrade.
func (t *T) GetApplicationUpgrade(ctx context.Context, id fabric.ApplicationID) (upgrade.ApplicationUpgradeProgressInfo, error) {
	r := newRequest("GetApplicationUpgrade", http.MethodGet, applicationPath(id, "/$/GetUpgradeProgress"), "6.0")
	return get(ctx, t, r, upgrade.ApplicationUpgradeProgressInfoCodec)
}

// ResumeApplicationUpgrade starts the upgrade of the next upgrade domain
// of a manual application upgrade.
func (t *T) ResumeApplicationUpgrade(ctx context.Context, id fabric.ApplicationID, d upgrade.ResumeUpgradeDescription) error {
	r := newRequest("ResumeApplicationUpgrade", http.MethodPost, applicationPath(id, "/$/MoveToNextUpgradeDomain"), "6.0")
	b, err := body(r.operation, d, upgrade.ResumeUpgradeDescriptionCodec)
	if err != nil {
		return err
	}
	return t.send(ctx, r.withBody(b))
}

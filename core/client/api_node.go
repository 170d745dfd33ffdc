package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/health"
	"github.com/opensvc/sfclient/core/inventory"
)

func nodePath(name fabric.NodeName, suffix string) string {
	return "/Nodes/" + url.PathEscape(string(name)) + suffix
}

// GetNodeInfoList returns a page of the cluster nodes.
func (t *T) GetNodeInfoList(ctx context.Context, params *GetNodeInfoListParams) (inventory.PagedNodeInfoList, error) {
	version := "6.0"
	if params != nil && params.MaxResults != nil {
		version = "6.3"
	}
	r := newRequest("GetNodeInfoList", http.MethodGet, "/Nodes", version)
	if params != nil {
		if err := addOptionalQuery(r, "NodeStatusFilter", params.NodeStatusFilter); err != nil {
			return inventory.PagedNodeInfoList{}, err
		}
		if err := addOptionalQuery(r, "ContinuationToken", params.ContinuationToken); err != nil {
			return inventory.PagedNodeInfoList{}, err
		}
		if err := addOptionalQuery(r, "MaxResults", params.MaxResults); err != nil {
			return inventory.PagedNodeInfoList{}, err
		}
	}
	return get(ctx, t, r, inventory.PagedNodeInfoListCodec)
}

// GetNodeInfo returns the information of the node.
func (t *T) GetNodeInfo(ctx context.Context, name fabric.NodeName) (inventory.NodeInfo, error) {
	r := newRequest("GetNodeInfo", http.MethodGet, nodePath(name, ""), "6.0")
	return get(ctx, t, r, inventory.NodeInfoCodec)
}

// GetNodeHealth returns the health of the node.
func (t *T) GetNodeHealth(ctx context.Context, name fabric.NodeName, params *GetNodeHealthParams) (health.NodeHealth, error) {
	r := newRequest("GetNodeHealth", http.MethodGet, nodePath(name, "/$/GetHealth"), "6.0")
	if params != nil {
		if err := addOptionalQuery(r, "EventsHealthStateFilter", params.EventsHealthStateFilter); err != nil {
			return health.NodeHealth{}, err
		}
	}
	return get(ctx, t, r, health.NodeHealthCodec)
}

// ReportNodeHealth sends a health report on the node.
func (t *T) ReportNodeHealth(ctx context.Context, name fabric.NodeName, info health.Information, params *ReportHealthParams) error {
	r := newRequest("ReportNodeHealth", http.MethodPost, nodePath(name, "/$/ReportHealth"), "6.0")
	if params != nil {
		if err := addOptionalQuery(r, "Immediate", params.Immediate); err != nil {
			return err
		}
	}
	b, err := body(r.operation, info, health.InformationCodec)
	if err != nil {
		return err
	}
	return t.send(ctx, r.withBody(b))
}

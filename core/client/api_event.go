package client

import (
	"context"
	"net/http"

	"github.com/opensvc/sfclient/core/event"
	"github.com/opensvc/sfclient/core/fabric"
)

// The event store api appeared in the 6.4 api version.
const eventStoreAPIVersion = "6.4"

func (t *T) getEventList(ctx context.Context, operation, path string, params GetEventListParams) (event.Events, error) {
	r := newRequest(operation, http.MethodGet, path, eventStoreAPIVersion)
	if err := r.addEventListParams(params); err != nil {
		return nil, err
	}
	l, err := get(ctx, t, r, event.ListCodec)
	if err != nil {
		return nil, err
	}
	return event.Events(l), nil
}

// GetClusterEventList returns the cluster events of the time range.
func (t *T) GetClusterEventList(ctx context.Context, params GetEventListParams) (event.Events, error) {
	return t.getEventList(ctx, "GetClusterEventList", "/EventsStore/Cluster/Events", params)
}

// GetApplicationEventList returns the events of the application in the
// time range.
func (t *T) GetApplicationEventList(ctx context.Context, id fabric.ApplicationID, params GetEventListParams) (event.Events, error) {
	return t.getEventList(ctx, "GetApplicationEventList", "/EventsStore"+applicationPath(id, "/$/Events"), params)
}

// GetNodeEventList returns the events of the node in the time range.
func (t *T) GetNodeEventList(ctx context.Context, name fabric.NodeName, params GetEventListParams) (event.Events, error) {
	return t.getEventList(ctx, "GetNodeEventList", "/EventsStore"+nodePath(name, "/$/Events"), params)
}

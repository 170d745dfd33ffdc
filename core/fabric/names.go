// Package fabric hosts the identifiers and enumerations shared by the
// cluster entity models.
package fabric

import (
	"strings"

	"github.com/google/uuid"

	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// NodeName is the name of a cluster node.
	NodeName string

	// ApplicationName is the uri of an application, like "fabric:/App1".
	ApplicationName string

	// ApplicationID is the identity of an application, used in the api
	// paths. It is its name without the "fabric:" scheme, and with "/"
	// segment separators replaced by "~".
	ApplicationID string

	// ServiceName is the uri of a service, like "fabric:/App1/Svc1".
	ServiceName string

	// ServiceID is the identity of a service, derived from its name like
	// ApplicationID.
	ServiceID string

	// PartitionID is the unique identifier of a service partition.
	PartitionID uuid.UUID

	// NodeID is the internal identifier of a node.
	NodeID struct {
		ID string
	}
)

const (
	// Scheme is the prefix of application and service names.
	Scheme = "fabric:/"
)

var (
	NodeNameCodec        = jsonfield.StringOf[NodeName]()
	ApplicationNameCodec = jsonfield.StringOf[ApplicationName]()
	ApplicationIDCodec   = jsonfield.StringOf[ApplicationID]()
	ServiceNameCodec     = jsonfield.StringOf[ServiceName]()
	ServiceIDCodec       = jsonfield.StringOf[ServiceID]()
	NodeIDCodec          = jsonfield.Object[NodeID]()

	PartitionIDCodec = jsonfield.Codec[PartitionID]{
		Read: func(r *jsonfield.Reader) PartitionID {
			return PartitionID(jsonfield.UUID.Read(r))
		},
		Write: func(w *jsonfield.Writer, v PartitionID) {
			jsonfield.UUID.Write(w, uuid.UUID(v))
		},
	}
)

func toID(s string) string {
	s = strings.TrimPrefix(s, Scheme)
	return strings.ReplaceAll(s, "/", "~")
}

func (t NodeName) String() string {
	return string(t)
}

func (t ApplicationName) String() string {
	return string(t)
}

// ID returns the application identity used in api paths.
func (t ApplicationName) ID() ApplicationID {
	return ApplicationID(toID(string(t)))
}

// Name returns the application uri.
func (t ApplicationID) Name() ApplicationName {
	return ApplicationName(Scheme + strings.ReplaceAll(string(t), "~", "/"))
}

func (t ServiceName) String() string {
	return string(t)
}

// ID returns the service identity used in api paths.
func (t ServiceName) ID() ServiceID {
	return ServiceID(toID(string(t)))
}

// Name returns the service uri.
func (t ServiceID) Name() ServiceName {
	return ServiceName(Scheme + strings.ReplaceAll(string(t), "~", "/"))
}

// ParsePartitionID returns the partition id of its string representation.
func ParsePartitionID(s string) (PartitionID, error) {
	u, err := uuid.Parse(s)
	return PartitionID(u), err
}

func (t PartitionID) String() string {
	return uuid.UUID(t).String()
}

func (t *NodeID) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Id", &t.ID, jsonfield.String),
	}
}

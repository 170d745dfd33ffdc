package event

import (
	"time"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// NodeScoped is implemented by the node events.
	NodeScoped interface {
		Event
		Node() *NodeEvent
	}

	// NodeEvent is the base record of the node events.
	NodeEvent struct {
		FabricEvent
		NodeName fabric.NodeName
	}

	// NodeMembership hosts the properties of the NodeAdded and NodeRemoved
	// events.
	NodeMembership struct {
		NodeID          string
		NodeInstance    int64
		NodeType        string
		FabricVersion   string
		IPAddressOrFQDN string
		NodeCapacities  string
	}

	NodeAddedEvent struct {
		NodeEvent
		NodeMembership
	}

	NodeRemovedEvent struct {
		NodeEvent
		NodeMembership
	}

	NodeDownEvent struct {
		NodeEvent
		NodeInstance int64
		LastNodeUpAt time.Time
	}

	NodeUpEvent struct {
		NodeEvent
		NodeInstance   int64
		LastNodeDownAt time.Time
	}

	NodeNewHealthReportEvent struct {
		NodeEvent
		NodeInstanceID int64
		HealthReport
	}
)

const (
	KindNodeEvent           Kind = "NodeEvent"
	KindNodeAdded           Kind = "NodeAdded"
	KindNodeRemoved         Kind = "NodeRemoved"
	KindNodeDown            Kind = "NodeDown"
	KindNodeUp              Kind = "NodeUp"
	KindNodeNewHealthReport Kind = "NodeNewHealthReport"
)

// NodeEvents decodes the node events.
var NodeEvents *jsonfield.Union[Kind, NodeScoped]

func registerNodeEvents() {
	scope := KindNodeEvent
	register(KindNodeEvent, scope, func() Event { return &NodeEvent{} })
	register(KindNodeAdded, scope, func() Event { return &NodeAddedEvent{} })
	register(KindNodeRemoved, scope, func() Event { return &NodeRemovedEvent{} })
	register(KindNodeDown, scope, func() Event { return &NodeDownEvent{} })
	register(KindNodeUp, scope, func() Event { return &NodeUpEvent{} })
	register(KindNodeNewHealthReport, scope, func() Event { return &NodeNewHealthReportEvent{} })
}

func (t *NodeEvent) Kind() Kind { return KindNodeEvent }

func (t *NodeEvent) Node() *NodeEvent { return t }

func (t *NodeEvent) JSONFields() jsonfield.Fields {
	return t.FabricEvent.JSONFields().With(
		jsonfield.Required("NodeName", &t.NodeName, fabric.NodeNameCodec),
	)
}

func (t *NodeMembership) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("NodeId", &t.NodeID, jsonfield.String),
		jsonfield.Required("NodeInstance", &t.NodeInstance, jsonfield.Int64),
		jsonfield.Required("NodeType", &t.NodeType, jsonfield.String),
		jsonfield.Required("FabricVersion", &t.FabricVersion, jsonfield.String),
		jsonfield.Required("IpAddressOrFQDN", &t.IPAddressOrFQDN, jsonfield.String),
		jsonfield.Required("NodeCapacities", &t.NodeCapacities, jsonfield.String),
	}
}

func (t *NodeAddedEvent) Kind() Kind { return KindNodeAdded }

func (t *NodeAddedEvent) JSONFields() jsonfield.Fields {
	return t.NodeEvent.JSONFields().With(t.NodeMembership.JSONFields()...)
}

func (t *NodeRemovedEvent) Kind() Kind { return KindNodeRemoved }

func (t *NodeRemovedEvent) JSONFields() jsonfield.Fields {
	return t.NodeEvent.JSONFields().With(t.NodeMembership.JSONFields()...)
}

func (t *NodeDownEvent) Kind() Kind { return KindNodeDown }

func (t *NodeDownEvent) JSONFields() jsonfield.Fields {
	return t.NodeEvent.JSONFields().With(
		jsonfield.Required("NodeInstance", &t.NodeInstance, jsonfield.Int64),
		jsonfield.Required("LastNodeUpAt", &t.LastNodeUpAt, jsonfield.Time),
	)
}

func (t *NodeUpEvent) Kind() Kind { return KindNodeUp }

func (t *NodeUpEvent) JSONFields() jsonfield.Fields {
	return t.NodeEvent.JSONFields().With(
		jsonfield.Required("NodeInstance", &t.NodeInstance, jsonfield.Int64),
		jsonfield.Required("LastNodeDownAt", &t.LastNodeDownAt, jsonfield.Time),
	)
}

func (t *NodeNewHealthReportEvent) Kind() Kind { return KindNodeNewHealthReport }

func (t *NodeNewHealthReportEvent) JSONFields() jsonfield.Fields {
	return t.NodeEvent.JSONFields().With(
		jsonfield.Required("NodeInstanceId", &t.NodeInstanceID, jsonfield.Int64),
	).With(t.HealthReport.JSONFields()...)
}

// Package inventory models the cluster entities listed by the query api:
// nodes, applications, services and partitions.
package inventory

import (
	"time"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	NodeInfo struct {
		Name                  fabric.NodeName
		IPAddressOrFQDN       string
		Type                  string
		CodeVersion           string
		ConfigVersion         string
		NodeStatus            fabric.NodeStatus
		NodeUpTimeInSeconds   *string
		HealthState           fabric.HealthState
		IsSeedNode            bool
		UpgradeDomain         string
		FaultDomain           string
		ID                    *fabric.NodeID
		InstanceID            *string
		IsStopped             *bool
		NodeDownTimeInSeconds *string
		NodeUpAt              *time.Time
		NodeDownAt            *time.Time
	}

	PagedNodeInfoList struct {
		Page[NodeInfo]
	}
)

var (
	NodeInfoCodec          = jsonfield.Object[NodeInfo]()
	PagedNodeInfoListCodec = jsonfield.Object[PagedNodeInfoList]()
)

func (t *NodeInfo) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Name", &t.Name, fabric.NodeNameCodec),
		jsonfield.Required("IpAddressOrFQDN", &t.IPAddressOrFQDN, jsonfield.String),
		jsonfield.Required("Type", &t.Type, jsonfield.String),
		jsonfield.Required("CodeVersion", &t.CodeVersion, jsonfield.String),
		jsonfield.Required("ConfigVersion", &t.ConfigVersion, jsonfield.String),
		jsonfield.Required("NodeStatus", &t.NodeStatus, fabric.NodeStatusCodec),
		jsonfield.Optional("NodeUpTimeInSeconds", &t.NodeUpTimeInSeconds, jsonfield.String),
		jsonfield.Required("HealthState", &t.HealthState, fabric.HealthStateCodec),
		jsonfield.Required("IsSeedNode", &t.IsSeedNode, jsonfield.Bool),
		jsonfield.Required("UpgradeDomain", &t.UpgradeDomain, jsonfield.String),
		jsonfield.Required("FaultDomain", &t.FaultDomain, jsonfield.String),
		jsonfield.Optional("Id", &t.ID, fabric.NodeIDCodec),
		jsonfield.Optional("InstanceId", &t.InstanceID, jsonfield.String),
		jsonfield.Optional("IsStopped", &t.IsStopped, jsonfield.Bool),
		jsonfield.Optional("NodeDownTimeInSeconds", &t.NodeDownTimeInSeconds, jsonfield.String),
		jsonfield.Optional("NodeUpAt", &t.NodeUpAt, jsonfield.Time),
		jsonfield.Optional("NodeDownAt", &t.NodeDownAt, jsonfield.Time),
	}
}

func (t *PagedNodeInfoList) JSONFields() jsonfield.Fields {
	return t.fields(NodeInfoCodec)
}

package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// NodeStatus is the lifecycle status of a node.
type NodeStatus int

// NodeStatusUnrecognized is decoded from literals unknown to this client.
const NodeStatusUnrecognized NodeStatus = -1

const (
	NodeStatusInvalid NodeStatus = iota
	NodeStatusUp
	NodeStatusDown
	NodeStatusEnabling
	NodeStatusDisabling
	NodeStatusDisabled
	NodeStatusUnknown
	NodeStatusRemoved
)

var (
	nodeStatuses = enum.New("NodeStatus", map[NodeStatus]string{
		NodeStatusInvalid:   "Invalid",
		NodeStatusUp:        "Up",
		NodeStatusDown:      "Down",
		NodeStatusEnabling:  "Enabling",
		NodeStatusDisabling: "Disabling",
		NodeStatusDisabled:  "Disabled",
		NodeStatusUnknown:   "Unknown",
		NodeStatusRemoved:   "Removed",
	}).Lenient(NodeStatusUnrecognized)

	NodeStatusCodec = jsonfield.Enum[NodeStatus](nodeStatuses)
)

func (t NodeStatus) String() string {
	return nodeStatuses.String(t)
}

// ParseNodeStatus returns the NodeStatus value of the literal s.
func ParseNodeStatus(s string) (NodeStatus, error) {
	return nodeStatuses.Parse(s)
}

func (t NodeStatus) MarshalText() ([]byte, error) {
	return nodeStatuses.MarshalText(t)
}

func (t *NodeStatus) UnmarshalText(b []byte) error {
	return nodeStatuses.UnmarshalText(t, b)
}

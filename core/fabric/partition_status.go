package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// PartitionStatus is the status of a service partition.
type PartitionStatus int

// PartitionStatusUnrecognized is decoded from literals unknown to this client.
const PartitionStatusUnrecognized PartitionStatus = -1

const (
	PartitionStatusInvalid PartitionStatus = iota
	PartitionStatusReady
	PartitionStatusNotReady
	PartitionStatusInQuorumLoss
	PartitionStatusReconfiguring
	PartitionStatusDeleting
)

var (
	partitionStatuses = enum.New("PartitionStatus", map[PartitionStatus]string{
		PartitionStatusInvalid:       "Invalid",
		PartitionStatusReady:         "Ready",
		PartitionStatusNotReady:      "NotReady",
		PartitionStatusInQuorumLoss:  "InQuorumLoss",
		PartitionStatusReconfiguring: "Reconfiguring",
		PartitionStatusDeleting:      "Deleting",
	}).Lenient(PartitionStatusUnrecognized)

	PartitionStatusCodec = jsonfield.Enum[PartitionStatus](partitionStatuses)
)

func (t PartitionStatus) String() string {
	return partitionStatuses.String(t)
}

// ParsePartitionStatus returns the PartitionStatus value of the literal s.
func ParsePartitionStatus(s string) (PartitionStatus, error) {
	return partitionStatuses.Parse(s)
}

func (t PartitionStatus) MarshalText() ([]byte, error) {
	return partitionStatuses.MarshalText(t)
}

func (t *PartitionStatus) UnmarshalText(b []byte) error {
	return partitionStatuses.UnmarshalText(t, b)
}

package fabric

import (
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

// ServicePartitionKind is the partitioning scheme of a service.
type ServicePartitionKind int

const (
	ServicePartitionKindInvalid ServicePartitionKind = iota
	ServicePartitionKindSingleton
	ServicePartitionKindInt64Range
	ServicePartitionKindNamed
)

var (
	servicePartitionKinds = enum.New("ServicePartitionKind", map[ServicePartitionKind]string{
		ServicePartitionKindInvalid:    "Invalid",
		ServicePartitionKindSingleton:  "Singleton",
		ServicePartitionKindInt64Range: "Int64Range",
		ServicePartitionKindNamed:      "Named",
	})

	ServicePartitionKindCodec = jsonfield.Enum[ServicePartitionKind](servicePartitionKinds)
)

func (t ServicePartitionKind) String() string {
	return servicePartitionKinds.String(t)
}

// ParseServicePartitionKind returns the ServicePartitionKind value of the literal s.
func ParseServicePartitionKind(s string) (ServicePartitionKind, error) {
	return servicePartitionKinds.Parse(s)
}

func (t ServicePartitionKind) MarshalText() ([]byte, error) {
	return servicePartitionKinds.MarshalText(t)
}

func (t *ServicePartitionKind) UnmarshalText(b []byte) error {
	return servicePartitionKinds.UnmarshalText(t, b)
}

package inventory

import (
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// Partitioning is implemented by the partition information records,
	// describing the partitioning scheme and the key range of a
	// partition.
	Partitioning interface {
		jsonfield.Variant[Kind]
		PartitionID() fabric.PartitionID
	}

	// PartitionInformation is the record of the "PartitionInformation"
	// kind, and the base of the other partitioning records.
	PartitionInformation struct {
		ID fabric.PartitionID
	}

	SingletonPartitionInformation struct {
		PartitionInformation
	}

	// Int64RangePartitionInformation owns the keys in [LowKey, HighKey].
	// The bounds are int64 transmitted as strings.
	Int64RangePartitionInformation struct {
		PartitionInformation
		LowKey  string
		HighKey string
	}

	NamedPartitionInformation struct {
		PartitionInformation
		Name string
	}

	// Partition is implemented by the service partition records.
	Partition interface {
		jsonfield.Variant[Kind]
		Info() *ServicePartitionInfo
	}

	ServicePartitionInfo struct {
		HealthState          fabric.HealthState
		PartitionStatus      fabric.PartitionStatus
		PartitionInformation Partitioning
	}

	Epoch struct {
		ConfigurationVersion string
		DataLossVersion      string
	}

	StatefulServicePartitionInfo struct {
		ServicePartitionInfo
		TargetReplicaSetSize   int64
		MinReplicaSetSize      int64
		LastQuorumLossDuration *string
		PrimaryEpoch           *Epoch
	}

	StatelessServicePartitionInfo struct {
		ServicePartitionInfo
		InstanceCount    int64
		MinInstanceCount *int64
	}

	PagedServicePartitionInfoList struct {
		Page[Partition]
	}
)

const (
	// ServicePartitionKindProperty is the discriminator property of the
	// partitioning family.
	ServicePartitionKindProperty = "ServicePartitionKind"

	KindPartitionInformation Kind = "PartitionInformation"
	KindSingleton            Kind = "Singleton"
	KindInt64Range           Kind = "Int64Range"
	KindNamed                Kind = "Named"

	KindServicePartitionInfo Kind = "ServicePartitionInfo"
)

var (
	// Partitionings is the partition information family.
	Partitionings = jsonfield.NewUnion[Kind, Partitioning]("PartitionInformation", ServicePartitionKindProperty)

	// Partitions is the service partition family.
	Partitions = jsonfield.NewUnion[Kind, Partition]("ServicePartitionInfo", ServiceKindProperty)

	PartitioningCodec jsonfield.Codec[Partitioning]
	PartitionCodec    jsonfield.Codec[Partition]

	EpochCodec                         = jsonfield.Object[Epoch]()
	PagedServicePartitionInfoListCodec = jsonfield.Object[PagedServicePartitionInfoList]()
)

func init() {
	Partitionings.Register(KindPartitionInformation, func() Partitioning { return &PartitionInformation{} })
	Partitionings.Register(KindSingleton, func() Partitioning { return &SingletonPartitionInformation{} })
	Partitionings.Register(KindInt64Range, func() Partitioning { return &Int64RangePartitionInformation{} })
	Partitionings.Register(KindNamed, func() Partitioning { return &NamedPartitionInformation{} })
	PartitioningCodec = Partitionings.Codec()

	Partitions.Register(KindServicePartitionInfo, func() Partition { return &ServicePartitionInfo{} })
	Partitions.Register(KindStateful, func() Partition { return &StatefulServicePartitionInfo{} })
	Partitions.Register(KindStateless, func() Partition { return &StatelessServicePartitionInfo{} })
	PartitionCodec = Partitions.Codec()
}

func (t *PartitionInformation) Kind() Kind { return KindPartitionInformation }

func (t *PartitionInformation) PartitionID() fabric.PartitionID { return t.ID }

func (t *PartitionInformation) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Id", &t.ID, fabric.PartitionIDCodec),
	}
}

func (t *SingletonPartitionInformation) Kind() Kind { return KindSingleton }

func (t *Int64RangePartitionInformation) Kind() Kind { return KindInt64Range }

func (t *Int64RangePartitionInformation) JSONFields() jsonfield.Fields {
	return t.PartitionInformation.JSONFields().With(
		jsonfield.Required("LowKey", &t.LowKey, jsonfield.String),
		jsonfield.Required("HighKey", &t.HighKey, jsonfield.String),
	)
}

func (t *NamedPartitionInformation) Kind() Kind { return KindNamed }

func (t *NamedPartitionInformation) JSONFields() jsonfield.Fields {
	return t.PartitionInformation.JSONFields().With(
		jsonfield.Required("Name", &t.Name, jsonfield.String),
	)
}

func (t *ServicePartitionInfo) Kind() Kind { return KindServicePartitionInfo }

func (t *ServicePartitionInfo) Info() *ServicePartitionInfo { return t }

func (t *ServicePartitionInfo) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("HealthState", &t.HealthState, fabric.HealthStateCodec),
		jsonfield.Required("PartitionStatus", &t.PartitionStatus, fabric.PartitionStatusCodec),
		jsonfield.Required("PartitionInformation", &t.PartitionInformation, PartitioningCodec),
	}
}

func (t *Epoch) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("ConfigurationVersion", &t.ConfigurationVersion, jsonfield.String),
		jsonfield.Required("DataLossVersion", &t.DataLossVersion, jsonfield.String),
	}
}

func (t *StatefulServicePartitionInfo) Kind() Kind { return KindStateful }

func (t *StatefulServicePartitionInfo) JSONFields() jsonfield.Fields {
	return t.ServicePartitionInfo.JSONFields().With(
		jsonfield.Required("TargetReplicaSetSize", &t.TargetReplicaSetSize, jsonfield.Int64),
		jsonfield.Required("MinReplicaSetSize", &t.MinReplicaSetSize, jsonfield.Int64),
		jsonfield.Optional("LastQuorumLossDuration", &t.LastQuorumLossDuration, jsonfield.String),
		jsonfield.Optional("PrimaryEpoch", &t.PrimaryEpoch, EpochCodec),
	)
}

func (t *StatelessServicePartitionInfo) Kind() Kind { return KindStateless }

func (t *StatelessServicePartitionInfo) JSONFields() jsonfield.Fields {
	return t.ServicePartitionInfo.JSONFields().With(
		jsonfield.Required("InstanceCount", &t.InstanceCount, jsonfield.Int64),
		jsonfield.Optional("MinInstanceCount", &t.MinInstanceCount, jsonfield.Int64),
	)
}

func (t *PagedServicePartitionInfoList) JSONFields() jsonfield.Fields {
	return t.fields(PartitionCodec)
}

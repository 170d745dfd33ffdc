package event

import (
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// ReplicaScoped is implemented by the replica events.
	ReplicaScoped interface {
		Event
		Replica() *ReplicaEvent
	}

	// ReplicaEvent is the base record of the replica events.
	ReplicaEvent struct {
		FabricEvent
		PartitionID fabric.PartitionID
		ReplicaID   int64
	}

	StatefulReplicaNewHealthReportEvent struct {
		ReplicaEvent
		ReplicaInstanceID int64
		HealthReport
	}
)

const (
	KindReplicaEvent                   Kind = "ReplicaEvent"
	KindStatefulReplicaNewHealthReport Kind = "StatefulReplicaNewHealthReport"
)

// ReplicaEvents decodes the replica events.
var ReplicaEvents *jsonfield.Union[Kind, ReplicaScoped]

func registerReplicaEvents() {
	scope := KindReplicaEvent
	register(KindReplicaEvent, scope, func() Event { return &ReplicaEvent{} })
	register(KindStatefulReplicaNewHealthReport, scope, func() Event { return &StatefulReplicaNewHealthReportEvent{} })
}

func (t *ReplicaEvent) Kind() Kind { return KindReplicaEvent }

func (t *ReplicaEvent) Replica() *ReplicaEvent { return t }

func (t *ReplicaEvent) JSONFields() jsonfield.Fields {
	return t.FabricEvent.JSONFields().With(
		jsonfield.Required("PartitionId", &t.PartitionID, fabric.PartitionIDCodec),
		jsonfield.Required("ReplicaId", &t.ReplicaID, jsonfield.Int64),
	)
}

func (t *StatefulReplicaNewHealthReportEvent) Kind() Kind {
	return KindStatefulReplicaNewHealthReport
}

func (t *StatefulReplicaNewHealthReportEvent) JSONFields() jsonfield.Fields {
	return t.ReplicaEvent.JSONFields().With(
		jsonfield.Required("ReplicaInstanceId", &t.ReplicaInstanceID, jsonfield.Int64),
	).With(t.HealthReport.JSONFields()...)
}

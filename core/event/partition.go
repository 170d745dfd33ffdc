package event

import (
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// PartitionScoped is implemented by the partition events.
	PartitionScoped interface {
		Event
		Partition() *PartitionEvent
	}

	// PartitionEvent is the base record of the partition events.
	PartitionEvent struct {
		FabricEvent
		PartitionID fabric.PartitionID
	}

	PartitionNewHealthReportEvent struct {
		PartitionEvent
		HealthReport
	}

	// PartitionReconfiguredEvent reports a completed reconfiguration of
	// the partition replica set, with the duration of each phase.
	PartitionReconfiguredEvent struct {
		PartitionEvent
		NodeName               fabric.NodeName
		NodeInstanceID         string
		ServiceType            string
		CcEpochDataLossVersion int64
		CcEpochConfigVersion   int64
		ReconfigType           string
		Result                 string
		Phase0DurationMs       float64
		Phase1DurationMs       float64
		Phase2DurationMs       float64
		Phase3DurationMs       float64
		Phase4DurationMs       float64
		TotalDurationMs        float64
	}
)

const (
	KindPartitionEvent           Kind = "PartitionEvent"
	KindPartitionNewHealthReport Kind = "PartitionNewHealthReport"
	KindPartitionReconfigured    Kind = "PartitionReconfigured"
)

// PartitionEvents decodes the partition events.
var PartitionEvents *jsonfield.Union[Kind, PartitionScoped]

func registerPartitionEvents() {
	scope := KindPartitionEvent
	register(KindPartitionEvent, scope, func() Event { return &PartitionEvent{} })
	register(KindPartitionNewHealthReport, scope, func() Event { return &PartitionNewHealthReportEvent{} })
	register(KindPartitionReconfigured, scope, func() Event { return &PartitionReconfiguredEvent{} })
}

func (t *PartitionEvent) Kind() Kind { return KindPartitionEvent }

func (t *PartitionEvent) Partition() *PartitionEvent { return t }

func (t *PartitionEvent) JSONFields() jsonfield.Fields {
	return t.FabricEvent.JSONFields().With(
		jsonfield.Required("PartitionId", &t.PartitionID, fabric.PartitionIDCodec),
	)
}

func (t *PartitionNewHealthReportEvent) Kind() Kind { return KindPartitionNewHealthReport }

func (t *PartitionNewHealthReportEvent) JSONFields() jsonfield.Fields {
	return t.PartitionEvent.JSONFields().With(t.HealthReport.JSONFields()...)
}

func (t *PartitionReconfiguredEvent) Kind() Kind { return KindPartitionReconfigured }

func (t *PartitionReconfiguredEvent) JSONFields() jsonfield.Fields {
	return t.PartitionEvent.JSONFields().With(
		jsonfield.Required("NodeName", &t.NodeName, fabric.NodeNameCodec),
		jsonfield.Required("NodeInstanceId", &t.NodeInstanceID, jsonfield.String),
		jsonfield.Required("ServiceType", &t.ServiceType, jsonfield.String),
		jsonfield.Required("CcEpochDataLossVersion", &t.CcEpochDataLossVersion, jsonfield.Int64),
		jsonfield.Required("CcEpochConfigVersion", &t.CcEpochConfigVersion, jsonfield.Int64),
		jsonfield.Required("ReconfigType", &t.ReconfigType, jsonfield.String),
		jsonfield.Required("Result", &t.Result, jsonfield.String),
		jsonfield.Required("Phase0DurationMs", &t.Phase0DurationMs, jsonfield.Float64),
		jsonfield.Required("Phase1DurationMs", &t.Phase1DurationMs, jsonfield.Float64),
		jsonfield.Required("Phase2DurationMs", &t.Phase2DurationMs, jsonfield.Float64),
		jsonfield.Required("Phase3DurationMs", &t.Phase3DurationMs, jsonfield.Float64),
		jsonfield.Required("Phase4DurationMs", &t.Phase4DurationMs, jsonfield.Float64),
		jsonfield.Required("TotalDurationMs", &t.TotalDurationMs, jsonfield.Float64),
	)
}

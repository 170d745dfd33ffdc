package event

import (
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// ServiceScoped is implemented by the service events.
	ServiceScoped interface {
		Event
		Service() *ServiceEvent
	}

	// ServiceEvent is the base record of the service events.
	ServiceEvent struct {
		FabricEvent
		ServiceID fabric.ServiceID
	}

	// ServiceLifecycle hosts the properties of the ServiceCreated and
	// ServiceDeleted events.
	ServiceLifecycle struct {
		ServiceTypeName       string
		ApplicationName       fabric.ApplicationName
		ApplicationTypeName   string
		ServiceInstance       int64
		IsStateful            bool
		PartitionCount        int32
		TargetReplicaSetSize  int32
		MinReplicaSetSize     int32
		ServicePackageVersion string
		PartitionID           fabric.PartitionID
	}

	ServiceCreatedEvent struct {
		ServiceEvent
		ServiceLifecycle
	}

	ServiceDeletedEvent struct {
		ServiceEvent
		ServiceLifecycle
	}

	ServiceNewHealthReportEvent struct {
		ServiceEvent
		InstanceID int64
		HealthReport
	}
)

const (
	KindServiceEvent           Kind = "ServiceEvent"
	KindServiceCreated         Kind = "ServiceCreated"
	KindServiceDeleted         Kind = "ServiceDeleted"
	KindServiceNewHealthReport Kind = "ServiceNewHealthReport"
)

// ServiceEvents decodes the service events.
var ServiceEvents *jsonfield.Union[Kind, ServiceScoped]

func registerServiceEvents() {
	scope := KindServiceEvent
	register(KindServiceEvent, scope, func() Event { return &ServiceEvent{} })
	register(KindServiceCreated, scope, func() Event { return &ServiceCreatedEvent{} })
	register(KindServiceDeleted, scope, func() Event { return &ServiceDeletedEvent{} })
	register(KindServiceNewHealthReport, scope, func() Event { return &ServiceNewHealthReportEvent{} })
}

func (t *ServiceEvent) Kind() Kind { return KindServiceEvent }

func (t *ServiceEvent) Service() *ServiceEvent { return t }

func (t *ServiceEvent) JSONFields() jsonfield.Fields {
	return t.FabricEvent.JSONFields().With(
		jsonfield.Required("ServiceId", &t.ServiceID, fabric.ServiceIDCodec),
	)
}

func (t *ServiceLifecycle) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("ServiceTypeName", &t.ServiceTypeName, jsonfield.String),
		jsonfield.Required("ApplicationName", &t.ApplicationName, fabric.ApplicationNameCodec),
		jsonfield.Required("ApplicationTypeName", &t.ApplicationTypeName, jsonfield.String),
		jsonfield.Required("ServiceInstance", &t.ServiceInstance, jsonfield.Int64),
		jsonfield.Required("IsStateful", &t.IsStateful, jsonfield.Bool),
		jsonfield.Required("PartitionCount", &t.PartitionCount, jsonfield.Int32),
		jsonfield.Required("TargetReplicaSetSize", &t.TargetReplicaSetSize, jsonfield.Int32),
		jsonfield.Required("MinReplicaSetSize", &t.MinReplicaSetSize, jsonfield.Int32),
		jsonfield.Required("ServicePackageVersion", &t.ServicePackageVersion, jsonfield.String),
		jsonfield.Required("PartitionId", &t.PartitionID, fabric.PartitionIDCodec),
	}
}

func (t *ServiceCreatedEvent) Kind() Kind { return KindServiceCreated }

func (t *ServiceCreatedEvent) JSONFields() jsonfield.Fields {
	return t.ServiceEvent.JSONFields().With(t.ServiceLifecycle.JSONFields()...)
}

func (t *ServiceDeletedEvent) Kind() Kind { return KindServiceDeleted }

func (t *ServiceDeletedEvent) JSONFields() jsonfield.Fields {
	return t.ServiceEvent.JSONFields().With(t.ServiceLifecycle.JSONFields()...)
}

func (t *ServiceNewHealthReportEvent) Kind() Kind { return KindServiceNewHealthReport }

func (t *ServiceNewHealthReportEvent) JSONFields() jsonfield.Fields {
	return t.ServiceEvent.JSONFields().With(
		jsonfield.Required("InstanceId", &t.InstanceID, jsonfield.Int64),
	).With(t.HealthReport.JSONFields()...)
}

package event

import (
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// ClusterScoped is implemented by the cluster events.
	ClusterScoped interface {
		Event
		Cluster() *ClusterEvent
	}

	// ClusterEvent is the base record of the cluster events.
	ClusterEvent struct {
		FabricEvent
	}

	ClusterNewHealthReportEvent struct {
		ClusterEvent
		HealthReport
	}

	ClusterUpgradeStartedEvent struct {
		ClusterEvent
		CurrentClusterVersion string
		TargetClusterVersion  string
		UpgradeType           string
		RollingUpgradeMode    string
		FailureAction         string
	}

	ClusterUpgradeCompletedEvent struct {
		ClusterEvent
		TargetClusterVersion          string
		OverallUpgradeElapsedTimeInMs float64
	}
)

const (
	KindClusterEvent            Kind = "ClusterEvent"
	KindClusterNewHealthReport  Kind = "ClusterNewHealthReport"
	KindClusterUpgradeStarted   Kind = "ClusterUpgradeStarted"
	KindClusterUpgradeCompleted Kind = "ClusterUpgradeCompleted"
)

// ClusterEvents decodes the cluster events.
var ClusterEvents *jsonfield.Union[Kind, ClusterScoped]

func registerClusterEvents() {
	scope := KindClusterEvent
	register(KindClusterEvent, scope, func() Event { return &ClusterEvent{} })
	register(KindClusterNewHealthReport, scope, func() Event { return &ClusterNewHealthReportEvent{} })
	register(KindClusterUpgradeStarted, scope, func() Event { return &ClusterUpgradeStartedEvent{} })
	register(KindClusterUpgradeCompleted, scope, func() Event { return &ClusterUpgradeCompletedEvent{} })
}

func (t *ClusterEvent) Kind() Kind { return KindClusterEvent }

func (t *ClusterEvent) Cluster() *ClusterEvent { return t }

func (t *ClusterNewHealthReportEvent) Kind() Kind { return KindClusterNewHealthReport }

func (t *ClusterNewHealthReportEvent) JSONFields() jsonfield.Fields {
	return t.ClusterEvent.JSONFields().With(t.HealthReport.JSONFields()...)
}

func (t *ClusterUpgradeStartedEvent) Kind() Kind { return KindClusterUpgradeStarted }

func (t *ClusterUpgradeStartedEvent) JSONFields() jsonfield.Fields {
	return t.ClusterEvent.JSONFields().With(
		jsonfield.Required("CurrentClusterVersion", &t.CurrentClusterVersion, jsonfield.String),
		jsonfield.Required("TargetClusterVersion", &t.TargetClusterVersion, jsonfield.String),
		jsonfield.Required("UpgradeType", &t.UpgradeType, jsonfield.String),
		jsonfield.Required("RollingUpgradeMode", &t.RollingUpgradeMode, jsonfield.String),
		jsonfield.Required("FailureAction", &t.FailureAction, jsonfield.String),
	)
}

func (t *ClusterUpgradeCompletedEvent) Kind() Kind { return KindClusterUpgradeCompleted }

func (t *ClusterUpgradeCompletedEvent) JSONFields() jsonfield.Fields {
	return t.ClusterEvent.JSONFields().With(
		jsonfield.Required("TargetClusterVersion", &t.TargetClusterVersion, jsonfield.String),
		jsonfield.Required("OverallUpgradeElapsedTimeInMs", &t.OverallUpgradeElapsedTimeInMs, jsonfield.Float64),
	)
}

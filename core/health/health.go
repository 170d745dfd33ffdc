// Package health models the health reports, health states and health
// policies of the cluster entities.
package health

import (
	"time"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// Information is a health report, as sent to the cluster by a
	// watchdog or a system component.
	Information struct {
		SourceID                 string
		Property                 string
		HealthState              fabric.HealthState
		TimeToLiveInMilliSeconds *string
		Description              *string
		SequenceNumber           *string
		RemoveWhenExpired        *bool
		HealthReportID           *string
	}

	// Event is a health report as stored by the health store, with its
	// state transition timestamps.
	Event struct {
		Information
		IsExpired                bool
		SourceUTCTimestamp       time.Time
		LastModifiedUTCTimestamp time.Time
		LastOkTransitionAt       *time.Time
		LastWarningTransitionAt  *time.Time
		LastErrorTransitionAt    *time.Time
	}

	// StateCount counts the children of an entity per health state.
	StateCount struct {
		OkCount      int64
		WarningCount int64
		ErrorCount   int64
	}

	// EntityKindStateCount is the StateCount of the children of one kind.
	EntityKindStateCount struct {
		EntityKind       string
		HealthStateCount StateCount
	}

	Statistics struct {
		HealthStateCountList []EntityKindStateCount
	}

	NodeHealthState struct {
		AggregatedHealthState fabric.HealthState
		Name                  fabric.NodeName
		ID                    *fabric.NodeID
	}

	ApplicationHealthState struct {
		AggregatedHealthState fabric.HealthState
		Name                  fabric.ApplicationName
	}

	// EntityHealth hosts the properties shared by the health of all the
	// entity types.
	EntityHealth struct {
		AggregatedHealthState fabric.HealthState
		HealthEvents          []Event
		UnhealthyEvaluations  []EvaluationWrapper
		HealthStatistics      *Statistics
	}

	ClusterHealth struct {
		EntityHealth
		NodeHealthStates        []NodeHealthState
		ApplicationHealthStates []ApplicationHealthState
	}

	NodeHealth struct {
		EntityHealth
		Name fabric.NodeName
	}
)

var (
	InformationCodec            = jsonfield.Object[Information]()
	EventCodec                  = jsonfield.Object[Event]()
	StatisticsCodec             = jsonfield.Object[Statistics]()
	NodeHealthStateCodec        = jsonfield.Object[NodeHealthState]()
	ApplicationHealthStateCodec = jsonfield.Object[ApplicationHealthState]()
	ClusterHealthCodec          = jsonfield.Object[ClusterHealth]()
	NodeHealthCodec             = jsonfield.Object[NodeHealth]()
)

func (t *Information) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("SourceId", &t.SourceID, jsonfield.String),
		jsonfield.Required("Property", &t.Property, jsonfield.String),
		jsonfield.Required("HealthState", &t.HealthState, fabric.HealthStateCodec),
		jsonfield.Optional("TimeToLiveInMilliSeconds", &t.TimeToLiveInMilliSeconds, jsonfield.String),
		jsonfield.Optional("Description", &t.Description, jsonfield.String),
		jsonfield.Optional("SequenceNumber", &t.SequenceNumber, jsonfield.String),
		jsonfield.Optional("RemoveWhenExpired", &t.RemoveWhenExpired, jsonfield.Bool),
		jsonfield.Optional("HealthReportId", &t.HealthReportID, jsonfield.String),
	}
}

func (t *Event) JSONFields() jsonfield.Fields {
	return t.Information.JSONFields().With(
		jsonfield.Required("IsExpired", &t.IsExpired, jsonfield.Bool),
		jsonfield.Required("SourceUtcTimestamp", &t.SourceUTCTimestamp, jsonfield.Time),
		jsonfield.Required("LastModifiedUtcTimestamp", &t.LastModifiedUTCTimestamp, jsonfield.Time),
		jsonfield.Optional("LastOkTransitionAt", &t.LastOkTransitionAt, jsonfield.Time),
		jsonfield.Optional("LastWarningTransitionAt", &t.LastWarningTransitionAt, jsonfield.Time),
		jsonfield.Optional("LastErrorTransitionAt", &t.LastErrorTransitionAt, jsonfield.Time),
	)
}

func (t *StateCount) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("OkCount", &t.OkCount, jsonfield.Int64),
		jsonfield.Required("WarningCount", &t.WarningCount, jsonfield.Int64),
		jsonfield.Required("ErrorCount", &t.ErrorCount, jsonfield.Int64),
	}
}

func (t *EntityKindStateCount) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("EntityKind", &t.EntityKind, jsonfield.String),
		jsonfield.Required("HealthStateCount", &t.HealthStateCount, jsonfield.Object[StateCount]()),
	}
}

func (t *Statistics) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.RequiredList("HealthStateCountList", &t.HealthStateCountList, jsonfield.Object[EntityKindStateCount]()),
	}
}

func (t *NodeHealthState) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("AggregatedHealthState", &t.AggregatedHealthState, fabric.HealthStateCodec),
		jsonfield.Required("Name", &t.Name, fabric.NodeNameCodec),
		jsonfield.Optional("Id", &t.ID, fabric.NodeIDCodec),
	}
}

func (t *ApplicationHealthState) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("AggregatedHealthState", &t.AggregatedHealthState, fabric.HealthStateCodec),
		jsonfield.Required("Name", &t.Name, fabric.ApplicationNameCodec),
	}
}

func (t *EntityHealth) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("AggregatedHealthState", &t.AggregatedHealthState, fabric.HealthStateCodec),
		jsonfield.OptionalList("HealthEvents", &t.HealthEvents, EventCodec),
		jsonfield.OptionalList("UnhealthyEvaluations", &t.UnhealthyEvaluations, EvaluationWrapperCodec),
		jsonfield.Optional("HealthStatistics", &t.HealthStatistics, StatisticsCodec),
	}
}

func (t *ClusterHealth) JSONFields() jsonfield.Fields {
	return t.EntityHealth.JSONFields().With(
		jsonfield.OptionalList("NodeHealthStates", &t.NodeHealthStates, NodeHealthStateCodec),
		jsonfield.OptionalList("ApplicationHealthStates", &t.ApplicationHealthStates, ApplicationHealthStateCodec),
	)
}

func (t *NodeHealth) JSONFields() jsonfield.Fields {
	return t.EntityHealth.JSONFields().With(
		jsonfield.Required("Name", &t.Name, fabric.NodeNameCodec),
	)
}

// Unhealthy returns the node health states not Ok.
func (t ClusterHealth) Unhealthy() []NodeHealthState {
	l := make([]NodeHealthState, 0)
	for _, s := range t.NodeHealthStates {
		if s.AggregatedHealthState != fabric.HealthStateOk {
			l = append(l, s)
		}
	}
	return l
}

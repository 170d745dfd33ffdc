package event

import (
	"time"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// ApplicationScoped is implemented by the application events.
	ApplicationScoped interface {
		Event
		Application() *ApplicationEvent
	}

	// ApplicationEvent is the base record of the application events.
	ApplicationEvent struct {
		FabricEvent
		ApplicationID fabric.ApplicationID
	}

	ApplicationCreatedEvent struct {
		ApplicationEvent
		ApplicationTypeName       string
		ApplicationTypeVersion    string
		ApplicationDefinitionKind string
	}

	ApplicationDeletedEvent struct {
		ApplicationEvent
		ApplicationTypeName    string
		ApplicationTypeVersion string
	}

	ApplicationNewHealthReportEvent struct {
		ApplicationEvent
		ApplicationInstanceID int64
		HealthReport
	}

	ApplicationUpgradeStartedEvent struct {
		ApplicationEvent
		ApplicationTypeName           string
		CurrentApplicationTypeVersion string
		ApplicationTypeVersion        string
		UpgradeType                   string
		RollingUpgradeMode            string
		FailureAction                 string
	}

	ApplicationUpgradeCompletedEvent struct {
		ApplicationEvent
		ApplicationTypeName           string
		ApplicationTypeVersion        string
		OverallUpgradeElapsedTimeInMs float64
	}

	ApplicationUpgradeRollbackStartedEvent struct {
		ApplicationEvent
		ApplicationTypeName           string
		CurrentApplicationTypeVersion string
		ApplicationTypeVersion        string
		FailureReason                 string
		OverallUpgradeElapsedTimeInMs float64
	}

	// ApplicationProcessExitedEvent reports the exit of a code package
	// process.
	ApplicationProcessExitedEvent struct {
		ApplicationEvent
		ServiceName                fabric.ServiceName
		ServicePackageName         string
		ServicePackageActivationID string
		IsExclusive                bool
		CodePackageName            string
		EntryPointType             string
		ExeName                    string
		ProcessID                  int64
		HostID                     string
		ExitCode                   int64
		UnexpectedTermination      bool
		StartTime                  time.Time
	}
)

const (
	KindApplicationEvent                  Kind = "ApplicationEvent"
	KindApplicationCreated                Kind = "ApplicationCreated"
	KindApplicationDeleted                Kind = "ApplicationDeleted"
	KindApplicationNewHealthReport        Kind = "ApplicationNewHealthReport"
	KindApplicationUpgradeStarted         Kind = "ApplicationUpgradeStarted"
	KindApplicationUpgradeCompleted       Kind = "ApplicationUpgradeCompleted"
	KindApplicationUpgradeRollbackStarted Kind = "ApplicationUpgradeRollbackStarted"
	KindApplicationProcessExited          Kind = "ApplicationProcessExited"
)

// ApplicationEvents decodes the application events.
var ApplicationEvents *jsonfield.Union[Kind, ApplicationScoped]

func registerApplicationEvents() {
	scope := KindApplicationEvent
	register(KindApplicationEvent, scope, func() Event { return &ApplicationEvent{} })
	register(KindApplicationCreated, scope, func() Event { return &ApplicationCreatedEvent{} })
	register(KindApplicationDeleted, scope, func() Event { return &ApplicationDeletedEvent{} })
	register(KindApplicationNewHealthReport, scope, func() Event { return &ApplicationNewHealthReportEvent{} })
	register(KindApplicationUpgradeStarted, scope, func() Event { return &ApplicationUpgradeStartedEvent{} })
	register(KindApplicationUpgradeCompleted, scope, func() Event { return &ApplicationUpgradeCompletedEvent{} })
	register(KindApplicationUpgradeRollbackStarted, scope, func() Event { return &ApplicationUpgradeRollbackStartedEvent{} })
	register(KindApplicationProcessExited, scope, func() Event { return &ApplicationProcessExitedEvent{} })
}

func (t *ApplicationEvent) Kind() Kind { return KindApplicationEvent }

func (t *ApplicationEvent) Application() *ApplicationEvent { return t }

func (t *ApplicationEvent) JSONFields() jsonfield.Fields {
	return t.FabricEvent.JSONFields().With(
		jsonfield.Required("ApplicationId", &t.ApplicationID, fabric.ApplicationIDCodec),
	)
}

func (t *ApplicationCreatedEvent) Kind() Kind { return KindApplicationCreated }

func (t *ApplicationCreatedEvent) JSONFields() jsonfield.Fields {
	return t.ApplicationEvent.JSONFields().With(
		jsonfield.Required("ApplicationTypeName", &t.ApplicationTypeName, jsonfield.String),
		jsonfield.Required("ApplicationTypeVersion", &t.ApplicationTypeVersion, jsonfield.String),
		jsonfield.Required("ApplicationDefinitionKind", &t.ApplicationDefinitionKind, jsonfield.String),
	)
}

func (t *ApplicationDeletedEvent) Kind() Kind { return KindApplicationDeleted }

func (t *ApplicationDeletedEvent) JSONFields() jsonfield.Fields {
	return t.ApplicationEvent.JSONFields().With(
		jsonfield.Required("ApplicationTypeName", &t.ApplicationTypeName, jsonfield.String),
		jsonfield.Required("ApplicationTypeVersion", &t.ApplicationTypeVersion, jsonfield.String),
	)
}

func (t *ApplicationNewHealthReportEvent) Kind() Kind { return KindApplicationNewHealthReport }

func (t *ApplicationNewHealthReportEvent) JSONFields() jsonfield.Fields {
	return t.ApplicationEvent.JSONFields().With(
		jsonfield.Required("ApplicationInstanceId", &t.ApplicationInstanceID, jsonfield.Int64),
	).With(t.HealthReport.JSONFields()...)
}

func (t *ApplicationUpgradeStartedEvent) Kind() Kind { return KindApplicationUpgradeStarted }

func (t *ApplicationUpgradeStartedEvent) JSONFields() jsonfield.Fields {
	return t.ApplicationEvent.JSONFields().With(
		jsonfield.Required("ApplicationTypeName", &t.ApplicationTypeName, jsonfield.String),
		jsonfield.Required("CurrentApplicationTypeVersion", &t.CurrentApplicationTypeVersion, jsonfield.String),
		jsonfield.Required("ApplicationTypeVersion", &t.ApplicationTypeVersion, jsonfield.String),
		jsonfield.Required("UpgradeType", &t.UpgradeType, jsonfield.String),
		jsonfield.Required("RollingUpgradeMode", &t.RollingUpgradeMode, jsonfield.String),
		jsonfield.Required("FailureAction", &t.FailureAction, jsonfield.String),
	)
}

func (t *ApplicationUpgradeCompletedEvent) Kind() Kind { return KindApplicationUpgradeCompleted }

func (t *ApplicationUpgradeCompletedEvent) JSONFields() jsonfield.Fields {
	return t.ApplicationEvent.JSONFields().With(
		jsonfield.Required("ApplicationTypeName", &t.ApplicationTypeName, jsonfield.String),
		jsonfield.Required("ApplicationTypeVersion", &t.ApplicationTypeVersion, jsonfield.String),
		jsonfield.Required("OverallUpgradeElapsedTimeInMs", &t.OverallUpgradeElapsedTimeInMs, jsonfield.Float64),
	)
}

func (t *ApplicationUpgradeRollbackStartedEvent) Kind() Kind {
	return KindApplicationUpgradeRollbackStarted
}

func (t *ApplicationUpgradeRollbackStartedEvent) JSONFields() jsonfield.Fields {
	return t.ApplicationEvent.JSONFields().With(
		jsonfield.Required("ApplicationTypeName", &t.ApplicationTypeName, jsonfield.String),
		jsonfield.Required("CurrentApplicationTypeVersion", &t.CurrentApplicationTypeVersion, jsonfield.String),
		jsonfield.Required("ApplicationTypeVersion", &t.ApplicationTypeVersion, jsonfield.String),
		jsonfield.Required("FailureReason", &t.FailureReason, jsonfield.String),
		jsonfield.Required("OverallUpgradeElapsedTimeInMs", &t.OverallUpgradeElapsedTimeInMs, jsonfield.Float64),
	)
}

func (t *ApplicationProcessExitedEvent) Kind() Kind { return KindApplicationProcessExited }

func (t *ApplicationProcessExitedEvent) JSONFields() jsonfield.Fields {
	return t.ApplicationEvent.JSONFields().With(
		jsonfield.Required("ServiceName", &t.ServiceName, fabric.ServiceNameCodec),
		jsonfield.Required("ServicePackageName", &t.ServicePackageName, jsonfield.String),
		jsonfield.Required("ServicePackageActivationId", &t.ServicePackageActivationID, jsonfield.String),
		jsonfield.Required("IsExclusive", &t.IsExclusive, jsonfield.Bool),
		jsonfield.Required("CodePackageName", &t.CodePackageName, jsonfield.String),
		jsonfield.Required("EntryPointType", &t.EntryPointType, jsonfield.String),
		jsonfield.Required("ExeName", &t.ExeName, jsonfield.String),
		jsonfield.Required("ProcessId", &t.ProcessID, jsonfield.Int64),
		jsonfield.Required("HostId", &t.HostID, jsonfield.String),
		jsonfield.Required("ExitCode", &t.ExitCode, jsonfield.Int64),
		jsonfield.Required("UnexpectedTermination", &t.UnexpectedTermination, jsonfield.Bool),
		jsonfield.Required("StartTime", &t.StartTime, jsonfield.Time),
	)
}

package upgrade

import (
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/health"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	UpgradeDomainInfo struct {
		Name  string
		State fabric.UpgradeDomainState
	}

	// Progress hosts the properties shared by the application and
	// cluster upgrade progress reports.
	Progress struct {
		UpgradeDomains                      []UpgradeDomainInfo
		UpgradeState                        fabric.UpgradeState
		NextUpgradeDomain                   *string
		RollingUpgradeMode                  *fabric.UpgradeMode
		UpgradeDurationInMilliseconds       *string
		UpgradeDomainDurationInMilliseconds *string
		UnhealthyEvaluations                []health.EvaluationWrapper
		StartTimestampUtc                   *string
		FailureTimestampUtc                 *string
		FailureReason                       *string
	}

	ApplicationUpgradeProgressInfo struct {
		Name                         fabric.ApplicationName
		TypeName                     string
		TargetApplicationTypeVersion string
		Progress
		UpgradeDescription   *ApplicationUpgradeDescription
		UpgradeStatusDetails *string
	}

	ClusterUpgradeProgressObject struct {
		CodeVersion   *string
		ConfigVersion *string
		Progress
		UpgradeDescription *StartClusterUpgradeDescription
		IsNodeByNode       *bool
	}
)

var (
	UpgradeDomainInfoCodec              = jsonfield.Object[UpgradeDomainInfo]()
	ApplicationUpgradeProgressInfoCodec = jsonfield.Object[ApplicationUpgradeProgressInfo]()
	ClusterUpgradeProgressObjectCodec   = jsonfield.Object[ClusterUpgradeProgressObject]()
)

func (t *UpgradeDomainInfo) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Name", &t.Name, jsonfield.String),
		jsonfield.Required("State", &t.State, fabric.UpgradeDomainStateCodec),
	}
}

func (t *Progress) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.OptionalList("UpgradeDomains", &t.UpgradeDomains, UpgradeDomainInfoCodec),
		jsonfield.Required("UpgradeState", &t.UpgradeState, fabric.UpgradeStateCodec),
		jsonfield.Optional("NextUpgradeDomain", &t.NextUpgradeDomain, jsonfield.String),
		jsonfield.Optional("RollingUpgradeMode", &t.RollingUpgradeMode, fabric.UpgradeModeCodec),
		jsonfield.Optional("UpgradeDurationInMilliseconds", &t.UpgradeDurationInMilliseconds, jsonfield.String),
		jsonfield.Optional("UpgradeDomainDurationInMilliseconds", &t.UpgradeDomainDurationInMilliseconds, jsonfield.String),
		jsonfield.OptionalList("UnhealthyEvaluations", &t.UnhealthyEvaluations, health.EvaluationWrapperCodec),
		jsonfield.Optional("StartTimestampUtc", &t.StartTimestampUtc, jsonfield.String),
		jsonfield.Optional("FailureTimestampUtc", &t.FailureTimestampUtc, jsonfield.String),
		jsonfield.Optional("FailureReason", &t.FailureReason, jsonfield.String),
	}
}

func (t *ApplicationUpgradeProgressInfo) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Name", &t.Name, fabric.ApplicationNameCodec),
		jsonfield.Required("TypeName", &t.TypeName, jsonfield.String),
		jsonfield.Required("TargetApplicationTypeVersion", &t.TargetApplicationTypeVersion, jsonfield.String),
	}.With(t.Progress.JSONFields()...).With(
		jsonfield.Optional("UpgradeDescription", &t.UpgradeDescription, ApplicationUpgradeDescriptionCodec),
		jsonfield.Optional("UpgradeStatusDetails", &t.UpgradeStatusDetails, jsonfield.String),
	)
}

func (t *ClusterUpgradeProgressObject) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Optional("CodeVersion", &t.CodeVersion, jsonfield.String),
		jsonfield.Optional("ConfigVersion", &t.ConfigVersion, jsonfield.String),
	}.With(t.Progress.JSONFields()...).With(
		jsonfield.Optional("UpgradeDescription", &t.UpgradeDescription, StartClusterUpgradeDescriptionCodec),
		jsonfield.Optional("IsNodeByNode", &t.IsNodeByNode, jsonfield.Bool),
	)
}

// Completed returns the number of upgrade domains done and the total
// number of upgrade domains.
func (t Progress) Completed() (int, int) {
	n := 0
	for _, ud := range t.UpgradeDomains {
		if ud.State == fabric.UpgradeDomainStateCompleted {
			n++
		}
	}
	return n, len(t.UpgradeDomains)
}

// IsRunning returns true if the upgrade is rolling forward or back.
func (t Progress) IsRunning() bool {
	switch t.UpgradeState {
	case fabric.UpgradeStateRollingForwardPending, fabric.UpgradeStateRollingForwardInProgress, fabric.UpgradeStateRollingBackInProgress:
		return true
	default:
		return false
	}
}

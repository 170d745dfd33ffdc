// Package upgrade models the application and cluster upgrade
// descriptions and progress reports.
package upgrade

import (
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/health"
	"github.com/opensvc/sfclient/util/jsonfield"
)

type (
	// MonitoringPolicyDescription drives a monitored upgrade. Durations
	// are ISO 8601 durations or a number of milliseconds, as strings.
	MonitoringPolicyDescription struct {
		FailureAction                           *fabric.FailureAction
		HealthCheckWaitDurationInMilliseconds   *string
		HealthCheckStableDurationInMilliseconds *string
		HealthCheckRetryTimeoutInMilliseconds   *string
		UpgradeTimeoutInMilliseconds            *string
		UpgradeDomainTimeoutInMilliseconds      *string
	}

	// ApplicationParameter overrides an application manifest parameter.
	ApplicationParameter struct {
		Key   string
		Value string
	}

	// ApplicationUpgradeDescription is the body of an application upgrade
	// request.
	ApplicationUpgradeDescription struct {
		Name                                   fabric.ApplicationName
		TargetApplicationTypeVersion           string
		Parameters                             []ApplicationParameter
		UpgradeKind                            fabric.UpgradeKind
		RollingUpgradeMode                     *fabric.UpgradeMode
		UpgradeReplicaSetCheckTimeoutInSeconds *int64
		ForceRestart                           *bool
		MonitoringPolicy                       *MonitoringPolicyDescription
		ApplicationHealthPolicy                *health.ApplicationHealthPolicy
	}

	// StartClusterUpgradeDescription is the body of a cluster upgrade
	// request.
	StartClusterUpgradeDescription struct {
		CodeVersion                            *string
		ConfigVersion                          *string
		UpgradeKind                            *fabric.UpgradeKind
		RollingUpgradeMode                     *fabric.UpgradeMode
		UpgradeReplicaSetCheckTimeoutInSeconds *int64
		ForceRestart                           *bool
		MonitoringPolicy                       *MonitoringPolicyDescription
		ClusterHealthPolicy                    *health.ClusterHealthPolicy
		EnableDeltaHealthEvaluation            *bool
		ClusterUpgradeHealthPolicy             *health.ClusterUpgradeHealthPolicy
		ApplicationHealthPolicyMap             *health.ApplicationHealthPolicies
	}

	// ResumeUpgradeDescription names the next upgrade domain of a manual
	// upgrade.
	ResumeUpgradeDescription struct {
		UpgradeDomainName string
	}
)

var (
	MonitoringPolicyDescriptionCodec    = jsonfield.Object[MonitoringPolicyDescription]()
	ApplicationParameterCodec           = jsonfield.Object[ApplicationParameter]()
	ApplicationUpgradeDescriptionCodec  = jsonfield.Object[ApplicationUpgradeDescription]()
	StartClusterUpgradeDescriptionCodec = jsonfield.Object[StartClusterUpgradeDescription]()
	ResumeUpgradeDescriptionCodec       = jsonfield.Object[ResumeUpgradeDescription]()
)

func (t *MonitoringPolicyDescription) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Optional("FailureAction", &t.FailureAction, fabric.FailureActionCodec),
		jsonfield.Optional("HealthCheckWaitDurationInMilliseconds", &t.HealthCheckWaitDurationInMilliseconds, jsonfield.String),
		jsonfield.Optional("HealthCheckStableDurationInMilliseconds", &t.HealthCheckStableDurationInMilliseconds, jsonfield.String),
		jsonfield.Optional("HealthCheckRetryTimeoutInMilliseconds", &t.HealthCheckRetryTimeoutInMilliseconds, jsonfield.String),
		jsonfield.Optional("UpgradeTimeoutInMilliseconds", &t.UpgradeTimeoutInMilliseconds, jsonfield.String),
		jsonfield.Optional("UpgradeDomainTimeoutInMilliseconds", &t.UpgradeDomainTimeoutInMilliseconds, jsonfield.String),
	}
}

func (t *ApplicationParameter) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Key", &t.Key, jsonfield.String),
		jsonfield.Required("Value", &t.Value, jsonfield.String),
	}
}

func (t *ApplicationUpgradeDescription) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("Name", &t.Name, fabric.ApplicationNameCodec),
		jsonfield.Required("TargetApplicationTypeVersion", &t.TargetApplicationTypeVersion, jsonfield.String),
		jsonfield.RequiredList("Parameters", &t.Parameters, ApplicationParameterCodec),
		jsonfield.Required("UpgradeKind", &t.UpgradeKind, fabric.UpgradeKindCodec),
		jsonfield.Optional("RollingUpgradeMode", &t.RollingUpgradeMode, fabric.UpgradeModeCodec),
		jsonfield.Optional("UpgradeReplicaSetCheckTimeoutInSeconds", &t.UpgradeReplicaSetCheckTimeoutInSeconds, jsonfield.Int64),
		jsonfield.Optional("ForceRestart", &t.ForceRestart, jsonfield.Bool),
		jsonfield.Optional("MonitoringPolicy", &t.MonitoringPolicy, MonitoringPolicyDescriptionCodec),
		jsonfield.Optional("ApplicationHealthPolicy", &t.ApplicationHealthPolicy, health.ApplicationHealthPolicyCodec),
	}
}

func (t *StartClusterUpgradeDescription) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Optional("CodeVersion", &t.CodeVersion, jsonfield.String),
		jsonfield.Optional("ConfigVersion", &t.ConfigVersion, jsonfield.String),
		jsonfield.Optional("UpgradeKind", &t.UpgradeKind, fabric.UpgradeKindCodec),
		jsonfield.Optional("RollingUpgradeMode", &t.RollingUpgradeMode, fabric.UpgradeModeCodec),
		jsonfield.Optional("UpgradeReplicaSetCheckTimeoutInSeconds", &t.UpgradeReplicaSetCheckTimeoutInSeconds, jsonfield.Int64),
		jsonfield.Optional("ForceRestart", &t.ForceRestart, jsonfield.Bool),
		jsonfield.Optional("MonitoringPolicy", &t.MonitoringPolicy, MonitoringPolicyDescriptionCodec),
		jsonfield.Optional("ClusterHealthPolicy", &t.ClusterHealthPolicy, health.ClusterHealthPolicyCodec),
		jsonfield.Optional("EnableDeltaHealthEvaluation", &t.EnableDeltaHealthEvaluation, jsonfield.Bool),
		jsonfield.Optional("ClusterUpgradeHealthPolicy", &t.ClusterUpgradeHealthPolicy, health.ClusterUpgradeHealthPolicyCodec),
		jsonfield.Optional("ApplicationHealthPolicyMap", &t.ApplicationHealthPolicyMap, health.ApplicationHealthPoliciesCodec),
	}
}

func (t *ResumeUpgradeDescription) JSONFields() jsonfield.Fields {
	return jsonfield.Fields{
		jsonfield.Required("UpgradeDomainName", &t.UpgradeDomainName, jsonfield.String),
	}
}

// Parameter returns the value of the parameter named key.
func (t ApplicationUpgradeDescription) Parameter(key string) (string, bool) {
	for _, p := range t.Parameters {
		if p.Key == key {
			return p.Value, true
		}
	}
	return "", false
}

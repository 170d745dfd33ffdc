package upgrade

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/enum"
	"github.com/opensvc/sfclient/util/jsonfield"
)

func TestApplicationUpgradeDescription(t *testing.T) {
	mode := fabric.UpgradeModeMonitored
	action := fabric.FailureActionRollback
	wait := "PT0H2M0S"
	v := ApplicationUpgradeDescription{
		Name:                         "fabric:/App1",
		TargetApplicationTypeVersion: "2.0.0",
		Parameters: []ApplicationParameter{
			{Key: "Zeta", Value: "1"},
			{Key: "Alpha", Value: "2"},
		},
		UpgradeKind:        fabric.UpgradeKindRolling,
		RollingUpgradeMode: &mode,
		MonitoringPolicy: &MonitoringPolicyDescription{
			FailureAction:                         &action,
			HealthCheckWaitDurationInMilliseconds: &wait,
		},
	}
	want := `{"Name":"fabric:/App1","TargetApplicationTypeVersion":"2.0.0",` +
		`"Parameters":[{"Key":"Zeta","Value":"1"},{"Key":"Alpha","Value":"2"}],` +
		`"UpgradeKind":"Rolling","RollingUpgradeMode":"Monitored",` +
		`"MonitoringPolicy":{"FailureAction":"Rollback","HealthCheckWaitDurationInMilliseconds":"PT0H2M0S"}}`

	b, err := jsonfield.Marshal(&v)
	require.NoError(t, err)
	assert.Equal(t, want, string(b))

	var got ApplicationUpgradeDescription
	require.NoError(t, jsonfield.Unmarshal(b, &got))
	assert.Equal(t, v, got)

	value, ok := got.Parameter("Alpha")
	assert.True(t, ok)
	assert.Equal(t, "2", value)
	_, ok = got.Parameter("alpha")
	assert.False(t, ok)
}

func TestApplicationUpgradeDescriptionRequired(t *testing.T) {
	b, err := jsonfield.Marshal(&ApplicationUpgradeDescription{Name: "fabric:/App1", UpgradeKind: fabric.UpgradeKindRolling})
	require.NoError(t, err)
	assert.Equal(t, `{"Name":"fabric:/App1","TargetApplicationTypeVersion":"","Parameters":[],"UpgradeKind":"Rolling"}`, string(b))

	_, err = jsonfield.Marshal(&ApplicationUpgradeDescription{UpgradeKind: fabric.UpgradeKind(7)})
	assert.ErrorIs(t, err, enum.ErrInvalidValue)
}

func TestStartClusterUpgradeDescription(t *testing.T) {
	s := `{"codeversion":"10.0.1","UpgradeKind":"rolling","ClusterHealthPolicy":{"MaxPercentUnhealthyNodes":10},` +
		`"ApplicationHealthPolicyMap":{"ApplicationHealthPolicyMap":[{"Key":"fabric:/A","Value":{}}]},"SortOrder":"Default"}`
	b, err := jsonfield.Canonical([]byte(s), StartClusterUpgradeDescriptionCodec)
	require.NoError(t, err)
	assert.Equal(t, `{"CodeVersion":"10.0.1","UpgradeKind":"Rolling","ClusterHealthPolicy":{"MaxPercentUnhealthyNodes":10},`+
		`"ApplicationHealthPolicyMap":{"ApplicationHealthPolicyMap":[{"Key":"fabric:/A","Value":{}}]}}`, string(b))
}

func TestApplicationUpgradeProgressInfo(t *testing.T) {
	s := `{
		"Name": "fabric:/App1",
		"TypeName": "App1Type",
		"TargetApplicationTypeVersion": "2.0.0",
		"UpgradeDomains": [
			{"Name": "UD0", "State": "Completed"},
			{"Name": "UD1", "State": "InProgress"},
			{"Name": "UD2", "State": "Pending"}
		],
		"UpgradeState": "RollingForwardInProgress",
		"NextUpgradeDomain": "UD2",
		"RollingUpgradeMode": "UnmonitoredAuto",
		"UpgradeDescription": {
			"Name": "fabric:/App1",
			"TargetApplicationTypeVersion": "2.0.0",
			"Parameters": [],
			"UpgradeKind": "Rolling"
		},
		"CurrentUpgradeDomainProgress": {"DomainName": "UD1", "NodeUpgradeProgressList": []}
	}`
	v, err := jsonfield.UnmarshalValue([]byte(s), ApplicationUpgradeProgressInfoCodec)
	require.NoError(t, err)
	assert.Equal(t, fabric.UpgradeStateRollingForwardInProgress, v.UpgradeState)
	assert.True(t, v.IsRunning())
	done, total := v.Completed()
	assert.Equal(t, 1, done)
	assert.Equal(t, 3, total)
	require.NotNil(t, v.UpgradeDescription)
	assert.Equal(t, []ApplicationParameter{}, v.UpgradeDescription.Parameters)
}

func TestClusterUpgradeProgressObjectLenient(t *testing.T) {
	s := `{"CodeVersion":"10.0","UpgradeState":"RollingForwardSuspended","UpgradeDomains":[{"Name":"1","State":"Paused"}]}`
	v, err := jsonfield.UnmarshalValue([]byte(s), ClusterUpgradeProgressObjectCodec)
	require.NoError(t, err)
	assert.Equal(t, fabric.UpgradeStateUnrecognized, v.UpgradeState)
	assert.Equal(t, fabric.UpgradeDomainStateUnrecognized, v.UpgradeDomains[0].State)
	assert.False(t, v.IsRunning())

	_, err = jsonfield.MarshalValue(v, ClusterUpgradeProgressObjectCodec)
	assert.ErrorIs(t, err, enum.ErrInvalidValue)
}

func TestResumeUpgradeDescription(t *testing.T) {
	b, err := jsonfield.Marshal(&ResumeUpgradeDescription{UpgradeDomainName: "UD1"})
	require.NoError(t, err)
	assert.Equal(t, `{"UpgradeDomainName":"UD1"}`, string(b))
}

package inventory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/util/jsonfield"
)

const partID = "1b4f5e2c-7d9a-4e1b-8c3f-2a6d9e0b4c71"

func TestPagedNodeInfoList(t *testing.T) {
	s := `{"ContinuationToken":"_Node_1","Items":[{
		"Name": "_Node_0",
		"IpAddressOrFQDN": "10.0.0.4",
		"Type": "NodeType0",
		"CodeVersion": "10.0.1949.9590",
		"ConfigVersion": "1",
		"NodeStatus": "Up",
		"NodeUpTimeInSeconds": "1234",
		"HealthState": "Ok",
		"IsSeedNode": true,
		"UpgradeDomain": "0",
		"FaultDomain": "fd:/0",
		"Id": {"Id": "8a8c3b9d1d1f7a0e"},
		"InstanceId": "133",
		"NodeUpAt": "2024-01-02T03:04:05Z",
		"NodeDeactivationInfo": {"NodeDeactivationIntent": "Invalid"}
	}, {
		"Name": "_Node_1",
		"NodeStatus": "Hibernating",
		"HealthState": "Error"
	}]}`

	v, err := jsonfield.UnmarshalValue([]byte(s), PagedNodeInfoListCodec)
	require.NoError(t, err)
	assert.True(t, v.More())
	assert.Equal(t, "_Node_1", v.Next())
	require.Len(t, v.Items, 2)
	assert.Equal(t, fabric.NodeName("_Node_0"), v.Items[0].Name)
	assert.Equal(t, fabric.NodeStatusUp, v.Items[0].NodeStatus)
	assert.True(t, v.Items[0].IsSeedNode)
	assert.Equal(t, "8a8c3b9d1d1f7a0e", v.Items[0].ID.ID)
	require.NotNil(t, v.Items[0].NodeUpAt)
	assert.Nil(t, v.Items[0].NodeDownAt)
	assert.Equal(t, fabric.NodeStatusUnrecognized, v.Items[1].NodeStatus)

	last := PagedNodeInfoList{}
	require.NoError(t, jsonfield.Unmarshal([]byte(`{"ContinuationToken":"","Items":[]}`), &last))
	assert.False(t, last.More())
	assert.Empty(t, last.Items)
}

func TestApplicationInfo(t *testing.T) {
	s := `{"id":"App1","name":"fabric:/App1","typename":"App1Type","typeversion":"1.0.0","status":"Ready",` +
		`"parameters":[{"Key":"b","Value":"2"},{"Key":"a","Value":"1"}],"healthstate":"Ok"}`
	b, err := jsonfield.Canonical([]byte(s), ApplicationInfoCodec)
	require.NoError(t, err)
	assert.Equal(t, `{"Id":"App1","Name":"fabric:/App1","TypeName":"App1Type","TypeVersion":"1.0.0","Status":"Ready",`+
		`"Parameters":[{"Key":"b","Value":"2"},{"Key":"a","Value":"1"}],"HealthState":"Ok"}`, string(b))
}

func TestServices(t *testing.T) {
	cases := map[string]struct {
		input string
		want  Service
	}{
		"stateful": {
			input: `{"ServiceKind":"Stateful","Id":"App1~Svc1","Name":"fabric:/App1/Svc1","TypeName":"Svc1Type",` +
				`"ManifestVersion":"1.0","HealthState":"Ok","ServiceStatus":"Active","HasPersistedState":true}`,
			want: &StatefulServiceInfo{
				ServiceInfo: ServiceInfo{
					ID: "App1~Svc1", Name: "fabric:/App1/Svc1", TypeName: "Svc1Type", ManifestVersion: "1.0",
					HealthState: fabric.HealthStateOk, ServiceStatus: fabric.ServiceStatusActive,
				},
				HasPersistedState: true,
			},
		},
		"stateless": {
			input: `{"servicekind":"stateless","Id":"App1~Svc2","Name":"fabric:/App1/Svc2","HealthState":"Warning","ServiceStatus":"Upgrading","IsServiceGroup":false}`,
			want: &StatelessServiceInfo{
				ServiceInfo: ServiceInfo{
					ID: "App1~Svc2", Name: "fabric:/App1/Svc2",
					HealthState: fabric.HealthStateWarning, ServiceStatus: fabric.ServiceStatusUpgrading,
					IsServiceGroup: new(bool),
				},
			},
		},
		"base": {
			input: `{"ServiceKind":"ServiceInfo","Id":"App1~Svc3","HealthState":"Ok","ServiceStatus":"Active"}`,
			want: &ServiceInfo{
				ID: "App1~Svc3", HealthState: fabric.HealthStateOk, ServiceStatus: fabric.ServiceStatusActive,
			},
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := jsonfield.UnmarshalValue([]byte(tc.input), ServiceCodec)
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)

			b, err := jsonfield.MarshalValue(v, ServiceCodec)
			require.NoError(t, err)
			again, err := jsonfield.UnmarshalValue(b, ServiceCodec)
			require.NoError(t, err)
			assert.Equal(t, v, again)
		})
	}

	t.Run("unknown kind", func(t *testing.T) {
		_, err := jsonfield.UnmarshalValue([]byte(`{"ServiceKind":"Stateish","Id":"x"}`), ServiceCodec)
		assert.ErrorIs(t, err, jsonfield.ErrUnknownKind)
	})
}

func TestPagedServicePartitionInfoList(t *testing.T) {
	s := `{"Items":[
		{"ServiceKind":"Stateful","HealthState":"Ok","PartitionStatus":"Ready",
		 "PartitionInformation":{"ServicePartitionKind":"Int64Range","Id":"` + partID + `","LowKey":"-9223372036854775808","HighKey":"9223372036854775807"},
		 "TargetReplicaSetSize":3,"MinReplicaSetSize":2,"PrimaryEpoch":{"ConfigurationVersion":"4","DataLossVersion":"1"}},
		{"ServiceKind":"Stateless","HealthState":"Ok","PartitionStatus":"Ready",
		 "PartitionInformation":{"ServicePartitionKind":"Singleton","Id":"` + partID + `"},"InstanceCount":-1},
		{"ServiceKind":"Stateless","HealthState":"Ok","PartitionStatus":"Ready",
		 "PartitionInformation":{"ServicePartitionKind":"Named","Id":"` + partID + `","Name":"eu"},"InstanceCount":1}
	]}`

	v, err := jsonfield.UnmarshalValue([]byte(s), PagedServicePartitionInfoListCodec)
	require.NoError(t, err)
	assert.False(t, v.More())
	require.Len(t, v.Items, 3)

	stateful, ok := v.Items[0].(*StatefulServicePartitionInfo)
	require.True(t, ok)
	assert.Equal(t, int64(3), stateful.TargetReplicaSetSize)
	assert.Equal(t, "4", stateful.PrimaryEpoch.ConfigurationVersion)
	r, ok := stateful.PartitionInformation.(*Int64RangePartitionInformation)
	require.True(t, ok)
	assert.Equal(t, "9223372036854775807", r.HighKey)
	assert.Equal(t, fabric.PartitionID(uuid.MustParse(partID)), r.PartitionID())

	assert.IsType(t, &SingletonPartitionInformation{}, v.Items[1].Info().PartitionInformation)
	assert.Equal(t, int64(-1), v.Items[1].(*StatelessServicePartitionInfo).InstanceCount)
	assert.Equal(t, "eu", v.Items[2].Info().PartitionInformation.(*NamedPartitionInformation).Name)

	b, err := jsonfield.MarshalValue(v, PagedServicePartitionInfoListCodec)
	require.NoError(t, err)
	again, err := jsonfield.UnmarshalValue(b, PagedServicePartitionInfoListCodec)
	require.NoError(t, err)
	assert.Equal(t, v, again)
}

func TestPartitioningErrors(t *testing.T) {
	cases := map[string]struct {
		input string
		err   error
	}{
		"unknown kind": {
			input: `{"ServicePartitionKind":"Hashed","Id":"` + partID + `"}`,
			err:   jsonfield.ErrUnknownKind,
		},
		"wrong discriminator": {
			input: `{"ServiceKind":"Singleton","Id":"` + partID + `"}`,
			err:   jsonfield.ErrFormat,
		},
		"missing discriminator": {
			input: `{"Id":"` + partID + `"}`,
			err:   jsonfield.ErrFormat,
		},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := jsonfield.UnmarshalValue([]byte(tc.input), PartitioningCodec)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestSingletonWrite(t *testing.T) {
	p := &SingletonPartitionInformation{PartitionInformation{ID: fabric.PartitionID(uuid.MustParse(partID))}}
	b, err := jsonfield.MarshalValue[Partitioning](p, PartitioningCodec)
	require.NoError(t, err)
	assert.Equal(t, `{"ServicePartitionKind":"Singleton","Id":"`+partID+`"}`, string(b))
}

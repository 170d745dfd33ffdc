package commands

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensvc/sfclient/core/client"
	"github.com/opensvc/sfclient/util/jsonfield"
)

const instanceID = "6bd3b4a8-4f5e-4a4c-9d8a-0b8c4e2d1f00"

func newFakeCluster(t *testing.T, register func(e *echo.Echo)) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	register(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func testGlobal(srv *httptest.Server, format string, out io.Writer) OptsGlobal {
	g := OptsGlobal{Output: format, Color: "no", Out: out}
	if srv != nil {
		g.Server = srv.URL
	}
	return g
}

func TestCmdDecode(t *testing.T) {
	doc := `{"kind":"applicationcreated","applicationTypeVersion":"1.0.0","ApplicationId":"fabric:/App1",` +
		`"EventInstanceId":"` + instanceID + `","TimeStamp":"2024-01-02T03:04:05Z","ApplicationTypeName":"App1Type",` +
		`"ApplicationDefinitionKind":"ServiceFabricApplicationDescription","Unknown":[1,2]}`

	t.Run("canonical event", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := CmdDecode{OptsGlobal: testGlobal(nil, "jsonline", &buf), Type: "event", In: strings.NewReader(doc)}
		require.NoError(t, cmd.Run())
		assert.Equal(t, `{"Kind":"ApplicationCreated","EventInstanceId":"`+instanceID+`","TimeStamp":"2024-01-02T03:04:05Z",`+
			`"ApplicationId":"fabric:/App1","ApplicationTypeName":"App1Type","ApplicationTypeVersion":"1.0.0",`+
			`"ApplicationDefinitionKind":"ServiceFabricApplicationDescription"}`+"\n", buf.String())
	})

	t.Run("wrong scope", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := CmdDecode{OptsGlobal: testGlobal(nil, "jsonline", &buf), Type: "node-event", In: strings.NewReader(doc)}
		assert.Error(t, cmd.Run())
		assert.Empty(t, buf.String())
	})

	t.Run("trailing document", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := CmdDecode{OptsGlobal: testGlobal(nil, "jsonline", &buf), Type: "event", In: strings.NewReader(doc + "\n" + doc)}
		assert.ErrorIs(t, cmd.Run(), jsonfield.ErrFormat)
		assert.Empty(t, buf.String())
	})

	t.Run("unknown model", func(t *testing.T) {
		cmd := CmdDecode{OptsGlobal: testGlobal(nil, "json", io.Discard), Type: "foo", In: strings.NewReader("{}")}
		err := cmd.Run()
		assert.True(t, errors.Is(err, ErrUnknownModel), "got %v", err)
	})

	t.Run("ordered map items", func(t *testing.T) {
		var buf bytes.Buffer
		in := `{"ApplicationHealthPolicyMap":[{"Key":"fabric:/B","Value":{}},{"Key":"fabric:/A","Value":{}}]}`
		cmd := CmdDecode{OptsGlobal: testGlobal(nil, "jsonline", &buf), Type: "application-health-policies", In: strings.NewReader(in)}
		require.NoError(t, cmd.Run())
		assert.Equal(t, in+"\n", buf.String())
	})
}

func TestModels(t *testing.T) {
	l := Models()
	assert.Contains(t, l, "event")
	assert.Contains(t, l, "cluster-health")
	assert.IsIncreasing(t, l)
}

func TestCmdKinds(t *testing.T) {
	t.Run("family", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := CmdKinds{OptsGlobal: testGlobal(nil, "json", &buf), Family: "HealthEvaluation"}
		require.NoError(t, cmd.Run())
		var kinds []string
		require.NoError(t, json.Unmarshal(buf.Bytes(), &kinds))
		assert.Contains(t, kinds, "HealthEvaluation")
		assert.Contains(t, kinds, "Nodes")
	})

	t.Run("all families", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := CmdKinds{OptsGlobal: testGlobal(nil, "human", &buf)}
		require.NoError(t, cmd.Run())
		assert.Contains(t, buf.String(), "partition-information")
		assert.Contains(t, buf.String(), "ServicePartitionKind")
	})

	t.Run("unknown family", func(t *testing.T) {
		cmd := CmdKinds{OptsGlobal: testGlobal(nil, "json", io.Discard), Family: "foo"}
		assert.True(t, errors.Is(cmd.Run(), ErrUnknownFamily))
	})
}

func TestCmdEnums(t *testing.T) {
	var buf bytes.Buffer
	cmd := CmdEnums{OptsGlobal: testGlobal(nil, "human", &buf), Name: "healthstate"}
	require.NoError(t, cmd.Run())
	assert.Contains(t, buf.String(), "HealthState")
	assert.Contains(t, buf.String(), "Warning")
	assert.NotContains(t, buf.String(), "NodeStatus")

	cmd = CmdEnums{OptsGlobal: testGlobal(nil, "human", io.Discard), Name: "foo"}
	assert.True(t, errors.Is(cmd.Run(), ErrUnknownEnum))
}

func TestParseHealthStateFilter(t *testing.T) {
	cases := map[string]struct {
		input   string
		want    *client.HealthStateFilter
		wantErr bool
	}{
		"empty":    {},
		"single":   {input: "error", want: ptr(client.HealthStateFilterError)},
		"combined": {input: "Warning, error", want: ptr(client.HealthStateFilterWarning | client.HealthStateFilterError)},
		"invalid":  {input: "bad", wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			f, err := parseHealthStateFilter(tc.input)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, f)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

func TestCmdNodeLs(t *testing.T) {
	pages := map[string]string{
		"": `{"ContinuationToken":"_Node_0","Items":[{"Name":"_Node_0","IpAddressOrFQDN":"10.0.0.4","Type":"nt0",` +
			`"CodeVersion":"10.0","ConfigVersion":"1","NodeStatus":"Up","HealthState":"Ok","IsSeedNode":true,"UpgradeDomain":"0","FaultDomain":"fd:/0"}]}`,
		"_Node_0": `{"ContinuationToken":"","Items":[{"Name":"_Node_1","IpAddressOrFQDN":"10.0.0.5","Type":"nt0",` +
			`"CodeVersion":"10.0","ConfigVersion":"1","NodeStatus":"Down","HealthState":"Error","IsSeedNode":false,"UpgradeDomain":"1","FaultDomain":"fd:/1"}]}`,
	}
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.GET("/Nodes", func(c echo.Context) error {
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(pages[c.QueryParam("ContinuationToken")]))
		})
	})

	var buf bytes.Buffer
	cmd := CmdNodeLs{OptsGlobal: testGlobal(srv, "human", &buf)}
	require.NoError(t, cmd.Run())
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "_Node_0")
	assert.Contains(t, lines[2], "_Node_1")
	assert.Contains(t, lines[2], "Down")

	buf.Reset()
	cmd = CmdNodeLs{OptsGlobal: testGlobal(srv, "flat", &buf)}
	require.NoError(t, cmd.Run())
	assert.Contains(t, buf.String(), `Items[1].Name = "_Node_1"`)
}

func TestCmdClusterEvents(t *testing.T) {
	saved := now
	now = func() time.Time { return time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC) }
	defer func() { now = saved }()

	var query map[string][]string
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.GET("/EventsStore/Cluster/Events", func(c echo.Context) error {
			query = c.QueryParams()
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(`[
  {"Kind":"NodeDown","EventInstanceId":"`+instanceID+`","TimeStamp":"2024-01-02T11:00:00Z","NodeName":"_Node_1","NodeInstance":3,"LastNodeUpAt":"2024-01-01T00:00:00Z"},
  {"Kind":"ClusterUpgradeCompleted","EventInstanceId":"`+instanceID+`","TimeStamp":"2024-01-02T11:30:00Z","TargetClusterVersion":"10.1","OverallUpgradeElapsedTimeInMs":10}
]`))
		})
	})

	var buf bytes.Buffer
	cmd := CmdClusterEvents{
		OptsGlobal: testGlobal(srv, "human", &buf),
		OptsEvents: OptsEvents{Start: "2h", Kinds: []string{"node*"}},
	}
	require.NoError(t, cmd.Run())
	assert.Equal(t, []string{"2024-01-02T10:00:00Z"}, query["StartTimeUtc"])
	assert.Equal(t, []string{"2024-01-02T12:00:00Z"}, query["EndTimeUtc"])
	assert.Contains(t, buf.String(), "NodeDown")
	assert.Contains(t, buf.String(), "_Node_1")
	assert.NotContains(t, buf.String(), "ClusterUpgradeCompleted")

	cmd = CmdClusterEvents{
		OptsGlobal: testGlobal(srv, "human", io.Discard),
		OptsEvents: OptsEvents{Start: "2024-01-02T13:00:00Z"},
	}
	assert.Error(t, cmd.Run())
}

func TestCmdClusterHealth(t *testing.T) {
	var query map[string][]string
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.GET("/$/GetClusterHealth", func(c echo.Context) error {
			query = c.QueryParams()
			return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, []byte(`{
  "AggregatedHealthState":"Warning",
  "NodeHealthStates":[{"AggregatedHealthState":"Warning","Name":"_Node_1"}],
  "UnhealthyEvaluations":[{"HealthEvaluation":{"Kind":"Nodes","AggregatedHealthState":"Warning",
    "Description":"1 node unhealthy","MaxPercentUnhealthyNodes":0,"TotalCount":2,
    "UnhealthyEvaluations":[{"HealthEvaluation":{"Kind":"Node","AggregatedHealthState":"Warning","NodeName":"_Node_1"}}]}}]
}`))
		})
	})

	var buf bytes.Buffer
	cmd := CmdClusterHealth{OptsGlobal: testGlobal(srv, "human", &buf), NodesFilter: "warning,error"}
	require.NoError(t, cmd.Run())
	assert.Equal(t, []string{"12"}, query["NodesHealthStateFilter"])
	s := buf.String()
	assert.Contains(t, s, "cluster Warning")
	assert.Contains(t, s, "Warning Nodes 1 node unhealthy\n")
	assert.Contains(t, s, "  Warning Node \n")

	cmd = CmdClusterHealth{OptsGlobal: testGlobal(srv, "human", io.Discard), EventsFilter: "bad"}
	assert.Error(t, cmd.Run())
}

func TestCmdAppUpgrade(t *testing.T) {
	var body string
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.POST("/Applications/:id/$/Upgrade", func(c echo.Context) error {
			assert.Equal(t, "App1", c.Param("id"))
			b, _ := io.ReadAll(c.Request().Body)
			body = string(b)
			return c.NoContent(http.StatusOK)
		})
	})

	cmd := CmdAppUpgrade{
		OptsGlobal: testGlobal(srv, "json", io.Discard),
		ID:         "App1",
		Version:    "2.0.0",
		Parameters: []string{"z=1", "a=2"},
		Mode:       "monitored",
	}
	require.NoError(t, cmd.Run())
	assert.Equal(t, `{"Name":"fabric:/App1","TargetApplicationTypeVersion":"2.0.0",`+
		`"Parameters":[{"Key":"z","Value":"1"},{"Key":"a","Value":"2"}],"UpgradeKind":"Rolling","RollingUpgradeMode":"Monitored"}`, body)

	_, err := parseParameters([]string{"novalue"})
	assert.Error(t, err)
}

func TestCmdClusterUpgradeDescription(t *testing.T) {
	cmd := CmdClusterUpgrade{CodeVersion: "10.1"}
	d, err := cmd.description()
	require.NoError(t, err)
	assert.Equal(t, "10.1", *d.CodeVersion)
	assert.Nil(t, d.ConfigVersion)

	_, err = (&CmdClusterUpgrade{}).description()
	assert.Error(t, err)

	_, err = (&CmdClusterUpgrade{ConfigVersion: "2", Mode: "sometimes"}).description()
	assert.Error(t, err)
}

func TestCmdNodeReportHealth(t *testing.T) {
	cmd := CmdNodeReportHealth{Name: "_Node_0", SourceID: "watchdog", Property: "disk", HealthState: "critical"}
	assert.Error(t, cmd.Run())
}

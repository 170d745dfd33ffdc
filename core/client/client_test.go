package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opensvc/sfclient/core/event"
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/health"
	"github.com/opensvc/sfclient/core/upgrade"
)

const (
	clusterHealthDoc = `{
  "AggregatedHealthState": "Warning",
  "NodeHealthStates": [
    {"AggregatedHealthState": "Ok", "Name": "_Node_0", "Id": {"Id": "5d4f"}},
    {"AggregatedHealthState": "Warning", "Name": "_Node_1"}
  ],
  "ApplicationHealthStates": [
    {"AggregatedHealthState": "Ok", "Name": "fabric:/System"}
  ],
  "HealthEvents": []
}`

	nodeNotFoundDoc = `{"Error":{"Code":"FABRIC_E_NODE_NOT_FOUND","Message":"node not found"}}`

	eventListDoc = `[
  {"Kind":"NodeDown","EventInstanceId":"f2a1d9e0-7e39-4c4b-9c57-0e2f1b4b8a11","TimeStamp":"2024-01-02T03:04:05Z",
   "NodeName":"_Node_1","NodeInstance":7,"LastNodeUpAt":"2024-01-01T00:00:00Z"},
  {"Kind":"ClusterUpgradeCompleted","EventInstanceId":"0e4c3a6b-4bd0-4d35-a7fa-2c1f6c7b1e42","TimeStamp":"2024-01-02T03:05:00Z",
   "TargetClusterVersion":"10.0.1","OverallUpgradeElapsedTimeInMs":1200.5}
]`
)

func newFakeCluster(t *testing.T, register func(e *echo.Echo)) *httptest.Server {
	t.Helper()
	e := echo.New()
	e.HideBanner = true
	register(e)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *T {
	t.Helper()
	c, err := New(append([]Option{URL(srv.URL)}, opts...)...)
	require.NoError(t, err)
	return c
}

func jsonBlob(code int, s string) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Blob(code, echo.MIMEApplicationJSON, []byte(s))
	}
}

func TestGetClusterHealth(t *testing.T) {
	var query map[string][]string
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.GET("/$/GetClusterHealth", func(c echo.Context) error {
			query = c.QueryParams()
			return jsonBlob(http.StatusOK, clusterHealthDoc)(c)
		})
	})
	c := newTestClient(t, srv)

	filter := HealthStateFilterError | HealthStateFilterWarning
	h, err := c.GetClusterHealth(context.Background(), &GetClusterHealthParams{
		NodesHealthStateFilter: &filter,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"6.0"}, query["api-version"])
	assert.Equal(t, []string{"12"}, query["NodesHealthStateFilter"])
	assert.NotContains(t, query, "ApplicationsHealthStateFilter")

	assert.Equal(t, fabric.HealthStateWarning, h.AggregatedHealthState)
	require.Len(t, h.NodeHealthStates, 2)
	assert.Equal(t, fabric.NodeName("_Node_1"), h.NodeHealthStates[1].Name)
	assert.Nil(t, h.NodeHealthStates[1].ID)
	require.Len(t, h.ApplicationHealthStates, 1)
	assert.Equal(t, fabric.ApplicationName("fabric:/System"), h.ApplicationHealthStates[0].Name)
}

func TestGetClusterHealthUsingPolicy(t *testing.T) {
	var body string
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.POST("/$/GetClusterHealth", func(c echo.Context) error {
			b, _ := io.ReadAll(c.Request().Body)
			body = string(b)
			return jsonBlob(http.StatusOK, clusterHealthDoc)(c)
		})
	})
	c := newTestClient(t, srv)

	considerWarningAsError := true
	_, err := c.GetClusterHealthUsingPolicy(context.Background(), nil, health.ClusterHealthPolicies{
		ClusterHealthPolicy: &health.ClusterHealthPolicy{ConsiderWarningAsError: &considerWarningAsError},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"ClusterHealthPolicy":{"ConsiderWarningAsError":true}}`, body)
}

func TestGetNodeInfoList(t *testing.T) {
	var query map[string][]string
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.GET("/Nodes", func(c echo.Context) error {
			query = c.QueryParams()
			return jsonBlob(http.StatusOK, `{"ContinuationToken":"_Node_1","Items":[{
  "Name":"_Node_0","IpAddressOrFQDN":"10.0.0.4","Type":"NodeType0","CodeVersion":"10.0.1","ConfigVersion":"1",
  "NodeStatus":"Up","HealthState":"Ok","IsSeedNode":true,"UpgradeDomain":"0","FaultDomain":"fd:/0"}]}`)(c)
		})
	})
	c := newTestClient(t, srv)

	t.Run("first page", func(t *testing.T) {
		l, err := c.GetNodeInfoList(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"6.0"}, query["api-version"])
		assert.True(t, l.More())
		assert.Equal(t, "_Node_1", l.Next())
		require.Len(t, l.Items, 1)
		assert.Equal(t, fabric.NodeStatusUp, l.Items[0].NodeStatus)
		assert.True(t, l.Items[0].IsSeedNode)
	})

	t.Run("max results", func(t *testing.T) {
		token := "_Node_1"
		max := int64(10)
		_, err := c.GetNodeInfoList(context.Background(), &GetNodeInfoListParams{
			ContinuationToken: &token,
			MaxResults:        &max,
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"6.3"}, query["api-version"])
		assert.Equal(t, []string{"_Node_1"}, query["ContinuationToken"])
		assert.Equal(t, []string{"10"}, query["MaxResults"])
	})
}

func TestAPIError(t *testing.T) {
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.GET("/Nodes/:name", jsonBlob(http.StatusNotFound, nodeNotFoundDoc))
		e.GET("/Nodes/:name/$/GetHealth", func(c echo.Context) error {
			return c.String(http.StatusBadGateway, "<html>bad gateway</html>")
		})
	})
	c := newTestClient(t, srv)

	t.Run("fabric error", func(t *testing.T) {
		_, err := c.GetNodeInfo(context.Background(), "_Node_9")
		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, "FABRIC_E_NODE_NOT_FOUND", apiErr.Code())
		assert.Equal(t, http.MethodGet, apiErr.Method)
		assert.Equal(t, "/Nodes/_Node_9", apiErr.Path)
		assert.Contains(t, err.Error(), "node not found")
	})

	t.Run("not a fabric error", func(t *testing.T) {
		_, err := c.GetNodeHealth(context.Background(), "_Node_0", nil)
		require.Error(t, err)
		assert.False(t, IsNotFound(err))
		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
		assert.Nil(t, apiErr.Fabric)
		assert.Empty(t, apiErr.Code())
	})
}

func TestAPIVersionGating(t *testing.T) {
	hits := 0
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.GET("/EventsStore/Cluster/Events", func(c echo.Context) error {
			hits++
			return jsonBlob(http.StatusOK, `[]`)(c)
		})
	})
	params := GetEventListParams{StartTimeUtc: "2024-01-01T00:00:00Z", EndTimeUtc: "2024-01-02T00:00:00Z"}

	t.Run("older cluster", func(t *testing.T) {
		c := newTestClient(t, srv, ClusterAPIVersion("6.3"))
		_, err := c.GetClusterEventList(context.Background(), params)
		assert.True(t, errors.Is(err, ErrUnsupportedAPIVersion), "got %v", err)
		assert.Equal(t, 0, hits)
	})

	t.Run("recent cluster", func(t *testing.T) {
		c := newTestClient(t, srv, ClusterAPIVersion("8.2"))
		l, err := c.GetClusterEventList(context.Background(), params)
		require.NoError(t, err)
		assert.Empty(t, l)
		assert.Equal(t, 1, hits)
	})

	t.Run("invalid version", func(t *testing.T) {
		_, err := New(URL(srv.URL), ClusterAPIVersion("latest"))
		assert.Error(t, err)
	})
}

func TestGetNodeEventList(t *testing.T) {
	var query map[string][]string
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.GET("/EventsStore/Nodes/:name/$/Events", func(c echo.Context) error {
			query = c.QueryParams()
			return jsonBlob(http.StatusOK, eventListDoc)(c)
		})
	})
	c := newTestClient(t, srv)

	filter := "NodeDown,ClusterUpgradeCompleted"
	l, err := c.GetNodeEventList(context.Background(), "_Node_1", GetEventListParams{
		StartTimeUtc:      "2024-01-01T00:00:00Z",
		EndTimeUtc:        "2024-01-03T00:00:00Z",
		EventsTypesFilter: &filter,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"6.4"}, query["api-version"])
	assert.Equal(t, []string{"2024-01-01T00:00:00Z"}, query["StartTimeUtc"])
	assert.Equal(t, []string{filter}, query["EventsTypesFilter"])

	require.Len(t, l, 2)
	require.IsType(t, &event.NodeDownEvent{}, l[0])
	assert.Equal(t, fabric.NodeName("_Node_1"), l[0].(*event.NodeDownEvent).NodeName)
	require.IsType(t, &event.ClusterUpgradeCompletedEvent{}, l[1])
	assert.Equal(t, 1200.5, l[1].(*event.ClusterUpgradeCompletedEvent).OverallUpgradeElapsedTimeInMs)
}

func TestReportNodeHealth(t *testing.T) {
	var (
		body  string
		query map[string][]string
	)
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.POST("/Nodes/:name/$/ReportHealth", func(c echo.Context) error {
			b, _ := io.ReadAll(c.Request().Body)
			body = string(b)
			query = c.QueryParams()
			assert.Equal(t, echo.MIMEApplicationJSON, c.Request().Header.Get(echo.HeaderContentType))
			return c.NoContent(http.StatusOK)
		})
	})
	c := newTestClient(t, srv)

	immediate := true
	description := "disk almost full"
	err := c.ReportNodeHealth(context.Background(), "_Node_0", health.Information{
		SourceID:    "watchdog",
		Property:    "disk",
		HealthState: fabric.HealthStateWarning,
		Description: &description,
	}, &ReportHealthParams{Immediate: &immediate})
	require.NoError(t, err)
	assert.Equal(t, []string{"true"}, query["Immediate"])
	assert.Equal(t, `{"SourceId":"watchdog","Property":"disk","HealthState":"Warning","Description":"disk almost full"}`, body)

	t.Run("invalid health state is not sent", func(t *testing.T) {
		body = ""
		err := c.ReportNodeHealth(context.Background(), "_Node_0", health.Information{
			SourceID:    "watchdog",
			Property:    "disk",
			HealthState: fabric.HealthState(42),
		}, nil)
		assert.Error(t, err)
		assert.Empty(t, body)
	})
}

func TestApplicationUpgrade(t *testing.T) {
	var body string
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.POST("/Applications/:id/$/Upgrade", func(c echo.Context) error {
			b, _ := io.ReadAll(c.Request().Body)
			body = string(b)
			return c.NoContent(http.StatusOK)
		})
		e.POST("/Applications/:id/$/MoveToNextUpgradeDomain", func(c echo.Context) error {
			b, _ := io.ReadAll(c.Request().Body)
			body = string(b)
			return c.NoContent(http.StatusOK)
		})
		e.GET("/Applications/:id/$/GetUpgradeProgress", jsonBlob(http.StatusOK, `{
  "Name":"fabric:/App1","TypeName":"App1Type","TargetApplicationTypeVersion":"2.0.0",
  "UpgradeDomains":[{"Name":"UD0","State":"Completed"},{"Name":"UD1","State":"InProgress"}],
  "UpgradeState":"RollingForwardInProgress"}`))
	})
	c := newTestClient(t, srv)
	ctx := context.Background()

	err := c.StartApplicationUpgrade(ctx, "App1", upgrade.ApplicationUpgradeDescription{
		Name:                         "fabric:/App1",
		TargetApplicationTypeVersion: "2.0.0",
		UpgradeKind:                  fabric.UpgradeKindRolling,
	})
	require.NoError(t, err)
	assert.Equal(t, `{"Name":"fabric:/App1","TargetApplicationTypeVersion":"2.0.0","Parameters":[],"UpgradeKind":"Rolling"}`, body)

	p, err := c.GetApplicationUpgrade(ctx, "App1")
	require.NoError(t, err)
	done, total := p.Progress.Completed()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, total)
	assert.True(t, p.Progress.IsRunning())

	require.NoError(t, c.ResumeApplicationUpgrade(ctx, "App1", upgrade.ResumeUpgradeDescription{UpgradeDomainName: "UD1"}))
	assert.Equal(t, `{"UpgradeDomainName":"UD1"}`, body)
}

func TestMetrics(t *testing.T) {
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.GET("/$/GetClusterHealth", jsonBlob(http.StatusOK, clusterHealthDoc))
		e.GET("/Nodes/:name", jsonBlob(http.StatusNotFound, nodeNotFoundDoc))
	})
	reg := prometheus.NewRegistry()
	c := newTestClient(t, srv, WithMetrics(reg))
	ctx := context.Background()

	_, err := c.GetClusterHealth(ctx, nil)
	require.NoError(t, err)
	_, err = c.GetClusterHealth(ctx, nil)
	require.NoError(t, err)
	_, err = c.GetNodeInfo(ctx, "_Node_9")
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.metrics.requests.WithLabelValues("GetClusterHealth", http.MethodGet, "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.metrics.requests.WithLabelValues("GetNodeInfo", http.MethodGet, "404")))

	t.Run("registered twice", func(t *testing.T) {
		other := newTestClient(t, srv, WithMetrics(reg))
		assert.Same(t, c.metrics.requests, other.metrics.requests)
	})
}

func TestRateLimit(t *testing.T) {
	srv := newFakeCluster(t, func(e *echo.Echo) {
		e.GET("/$/GetClusterHealth", jsonBlob(http.StatusOK, clusterHealthDoc))
	})
	c := newTestClient(t, srv, RateLimit(0.01, 1))

	_, err := c.GetClusterHealth(context.Background(), nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = c.GetClusterHealth(ctx, nil)
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	cases := map[string]struct {
		url     string
		want    string
		wantErr bool
	}{
		"http":           {url: "http://localhost:19080/", want: "http://localhost:19080"},
		"https":          {url: "https://sf.example.com:19080", want: "https://sf.example.com:19080"},
		"tls alias":      {url: "tls://sf.example.com:19080", want: "https://sf.example.com:19080"},
		"unknown scheme": {url: "ftp://sf.example.com", wantErr: true},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			c, err := New(URL(tc.url))
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, c.URL())
		})
	}
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/opensvc/sfclient/core/client"
	"github.com/opensvc/sfclient/core/health"
	"github.com/opensvc/sfclient/core/output"
	"github.com/opensvc/sfclient/core/upgrade"
)

type (
	// CmdClusterHealth shows the health of the cluster.
	CmdClusterHealth struct {
		OptsGlobal
		NodesFilter            string
		ApplicationsFilter     string
		EventsFilter           string
		ConsiderWarningAsError bool
	}

	// CmdClusterUpgradeStatus shows the progress of the cluster upgrade.
	CmdClusterUpgradeStatus struct {
		OptsGlobal
	}
)

var healthStateFilters = map[string]client.HealthStateFilter{
	"default": client.HealthStateFilterDefault,
	"none":    client.HealthStateFilterNone,
	"ok":      client.HealthStateFilterOk,
	"warning": client.HealthStateFilterWarning,
	"error":   client.HealthStateFilterError,
	"all":     client.HealthStateFilterAll,
}

// parseHealthStateFilter parses a comma separated list of health states,
// like "warning,error". An empty string returns nil.
func parseHealthStateFilter(s string) (*client.HealthStateFilter, error) {
	if s == "" {
		return nil, nil
	}
	var f client.HealthStateFilter
	for _, name := range strings.Split(s, ",") {
		v, ok := healthStateFilters[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil, errors.Errorf("invalid health state filter: %s", name)
		}
		f |= v
	}
	return &f, nil
}

func (t *CmdClusterHealth) params() (*client.GetClusterHealthParams, error) {
	var (
		p   client.GetClusterHealthParams
		err error
	)
	if p.NodesHealthStateFilter, err = parseHealthStateFilter(t.NodesFilter); err != nil {
		return nil, err
	}
	if p.ApplicationsHealthStateFilter, err = parseHealthStateFilter(t.ApplicationsFilter); err != nil {
		return nil, err
	}
	if p.EventsHealthStateFilter, err = parseHealthStateFilter(t.EventsFilter); err != nil {
		return nil, err
	}
	return &p, nil
}

func (t *CmdClusterHealth) Run() error {
	c, err := t.newClient()
	if err != nil {
		return err
	}
	params, err := t.params()
	if err != nil {
		return err
	}
	var h health.ClusterHealth
	if t.ConsiderWarningAsError {
		considerWarningAsError := true
		h, err = c.GetClusterHealthUsingPolicy(context.Background(), params, health.ClusterHealthPolicies{
			ClusterHealthPolicy: &health.ClusterHealthPolicy{ConsiderWarningAsError: &considerWarningAsError},
		})
	} else {
		h, err = c.GetClusterHealth(context.Background(), params)
	}
	if err != nil {
		return err
	}
	r := t.renderer(&h, nil)
	r.HumanRenderer = func() string {
		return sprintClusterHealth(r.Colorize, h)
	}
	return r.Fprint(t.out())
}

func sprintClusterHealth(colorize *output.PaletteFunc, h health.ClusterHealth) string {
	var b strings.Builder
	fmt.Fprintf(&b, "cluster %s\n\n", colorize.HealthState(h.AggregatedHealthState.String()))
	tbl := output.Table{Header: []string{"KIND", "NAME", "STATE"}}
	for _, s := range h.NodeHealthStates {
		tbl.AddRow("node", string(s.Name), colorize.HealthState(s.AggregatedHealthState.String()))
	}
	for _, s := range h.ApplicationHealthStates {
		tbl.AddRow("app", string(s.Name), colorize.HealthState(s.AggregatedHealthState.String()))
	}
	b.WriteString(tbl.Render())
	if len(h.HealthEvents) > 0 {
		b.WriteString("\n")
		b.WriteString(sprintHealthEvents(colorize, h.HealthEvents))
	}
	if len(h.UnhealthyEvaluations) > 0 {
		b.WriteString("\nunhealthy evaluations:\n")
		b.WriteString(sprintEvaluations(colorize, h.UnhealthyEvaluations))
	}
	return b.String()
}

func (t *CmdClusterUpgradeStatus) Run() error {
	c, err := t.newClient()
	if err != nil {
		return err
	}
	p, err := c.GetClusterUpgradeProgress(context.Background())
	if err != nil {
		return err
	}
	r := t.renderer(&p, nil)
	r.HumanRenderer = func() string {
		var b strings.Builder
		if p.CodeVersion != nil {
			fmt.Fprintf(&b, "code version:   %s\n", *p.CodeVersion)
		}
		if p.ConfigVersion != nil {
			fmt.Fprintf(&b, "config version: %s\n", *p.ConfigVersion)
		}
		b.WriteString(sprintProgress(r.Colorize, p.Progress))
		return b.String()
	}
	return r.Fprint(t.out())
}

func sprintProgress(colorize *output.PaletteFunc, p upgrade.Progress) string {
	var b strings.Builder
	done, total := p.Completed()
	fmt.Fprintf(&b, "state:          %s\n", colorize.HealthState(p.UpgradeState.String()))
	fmt.Fprintf(&b, "domains:        %d/%d\n", done, total)
	if p.NextUpgradeDomain != nil && *p.NextUpgradeDomain != "" {
		fmt.Fprintf(&b, "next domain:    %s\n", *p.NextUpgradeDomain)
	}
	if p.FailureReason != nil {
		fmt.Fprintf(&b, "failure:        %s\n", colorize.Error(*p.FailureReason))
	}
	if len(p.UpgradeDomains) > 0 {
		b.WriteString("\n")
		tbl := output.Table{Header: []string{"DOMAIN", "STATE"}}
		for _, ud := range p.UpgradeDomains {
			tbl.AddRow(ud.Name, colorize.HealthState(ud.State.String()))
		}
		b.WriteString(tbl.Render())
	}
	if len(p.UnhealthyEvaluations) > 0 {
		b.WriteString("\nunhealthy evaluations:\n")
		b.WriteString(sprintEvaluations(colorize, p.UnhealthyEvaluations))
	}
	return b.String()
}

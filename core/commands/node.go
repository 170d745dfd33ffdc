package commands

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/opensvc/sfclient/core/client"
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/health"
	"github.com/opensvc/sfclient/core/inventory"
	"github.com/opensvc/sfclient/core/output"
)

type (
	// CmdNodeLs lists the cluster nodes, fetching all the pages.
	CmdNodeLs struct {
		OptsGlobal
		Status string
	}

	// CmdNodeHealth shows the health of a node.
	CmdNodeHealth struct {
		OptsGlobal
		Name         string
		EventsFilter string
	}

	// CmdNodeReportHealth sends a health report on a node.
	CmdNodeReportHealth struct {
		OptsGlobal
		Name              string
		SourceID          string
		Property          string
		HealthState       string
		Description       string
		TTL               string
		RemoveWhenExpired bool
		Immediate         bool
	}
)

func (t *CmdNodeLs) Run() error {
	c, err := t.newClient()
	if err != nil {
		return err
	}
	var (
		items  []inventory.NodeInfo
		params client.GetNodeInfoListParams
	)
	if t.Status != "" {
		params.NodeStatusFilter = &t.Status
	}
	for {
		page, err := c.GetNodeInfoList(context.Background(), &params)
		if err != nil {
			return err
		}
		items = append(items, page.Items...)
		if !page.More() {
			break
		}
		token := page.Next()
		params.ContinuationToken = &token
	}
	l := &inventory.PagedNodeInfoList{}
	l.Items = items
	r := t.renderer(l, nil)
	r.HumanRenderer = func() string {
		tbl := output.Table{Header: []string{"NAME", "STATUS", "HEALTH", "TYPE", "ADDRESS", "UD", "FD", "SEED"}}
		for _, n := range items {
			tbl.AddRow(
				string(n.Name),
				r.Colorize.HealthState(n.NodeStatus.String()),
				r.Colorize.HealthState(n.HealthState.String()),
				n.Type,
				n.IPAddressOrFQDN,
				n.UpgradeDomain,
				n.FaultDomain,
				strconv.FormatBool(n.IsSeedNode),
			)
		}
		return tbl.Render()
	}
	return r.Fprint(t.out())
}

func (t *CmdNodeHealth) Run() error {
	c, err := t.newClient()
	if err != nil {
		return err
	}
	var params client.GetNodeHealthParams
	if params.EventsHealthStateFilter, err = parseHealthStateFilter(t.EventsFilter); err != nil {
		return err
	}
	h, err := c.GetNodeHealth(context.Background(), fabric.NodeName(t.Name), &params)
	if err != nil {
		return err
	}
	r := t.renderer(&h, nil)
	r.HumanRenderer = func() string {
		var b strings.Builder
		fmt.Fprintf(&b, "node %s %s\n", h.Name, r.Colorize.HealthState(h.AggregatedHealthState.String()))
		if len(h.HealthEvents) > 0 {
			b.WriteString("\n")
			b.WriteString(sprintHealthEvents(r.Colorize, h.HealthEvents))
		}
		if len(h.UnhealthyEvaluations) > 0 {
			b.WriteString("\nunhealthy evaluations:\n")
			b.WriteString(sprintEvaluations(r.Colorize, h.UnhealthyEvaluations))
		}
		return b.String()
	}
	return r.Fprint(t.out())
}

func (t *CmdNodeReportHealth) information() (health.Information, error) {
	state, err := fabric.ParseHealthState(t.HealthState)
	if err != nil {
		return health.Information{}, err
	}
	info := health.Information{
		SourceID:    t.SourceID,
		Property:    t.Property,
		HealthState: state,
	}
	if t.Description != "" {
		info.Description = &t.Description
	}
	if t.TTL != "" {
		info.TimeToLiveInMilliSeconds = &t.TTL
	}
	if t.RemoveWhenExpired {
		info.RemoveWhenExpired = &t.RemoveWhenExpired
	}
	return info, nil
}

func (t *CmdNodeReportHealth) Run() error {
	info, err := t.information()
	if err != nil {
		return err
	}
	c, err := t.newClient()
	if err != nil {
		return err
	}
	params := client.ReportHealthParams{Immediate: &t.Immediate}
	return c.ReportNodeHealth(context.Background(), fabric.NodeName(t.Name), info, &params)
}

package commands

import (
	"context"
	"strconv"

	"github.com/opensvc/sfclient/core/client"
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/inventory"
	"github.com/opensvc/sfclient/core/output"
)

type (
	// CmdServiceLs lists the services of an application.
	CmdServiceLs struct {
		OptsGlobal
		ApplicationID string
	}

	// CmdPartitionLs lists the partitions of a service.
	CmdPartitionLs struct {
		OptsGlobal
		ServiceID string
	}
)

func (t *CmdServiceLs) Run() error {
	c, err := t.newClient()
	if err != nil {
		return err
	}
	var (
		items  []inventory.Service
		params client.GetServiceInfoListParams
	)
	for {
		page, err := c.GetServiceInfoList(context.Background(), fabric.ApplicationID(t.ApplicationID), &params)
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
	l := &inventory.PagedServiceInfoList{}
	l.Items = items
	r := t.renderer(l, nil)
	r.HumanRenderer = func() string {
		tbl := output.Table{Header: []string{"ID", "NAME", "KIND", "TYPE", "STATUS", "HEALTH"}}
		for _, s := range items {
			info := s.Info()
			tbl.AddRow(
				string(info.ID),
				string(info.Name),
				string(s.Kind()),
				info.TypeName,
				r.Colorize.HealthState(info.ServiceStatus.String()),
				r.Colorize.HealthState(info.HealthState.String()),
			)
		}
		return tbl.Render()
	}
	return r.Fprint(t.out())
}

func partitionKeys(p inventory.Partitioning) string {
	switch v := p.(type) {
	case *inventory.Int64RangePartitionInformation:
		return v.LowKey + ".." + v.HighKey
	case *inventory.NamedPartitionInformation:
		return v.Name
	default:
		return ""
	}
}

func (t *CmdPartitionLs) Run() error {
	c, err := t.newClient()
	if err != nil {
		return err
	}
	var (
		items  []inventory.Partition
		params client.GetPartitionInfoListParams
	)
	for {
		page, err := c.GetPartitionInfoList(context.Background(), fabric.ServiceID(t.ServiceID), &params)
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
	l := &inventory.PagedServicePartitionInfoList{}
	l.Items = items
	r := t.renderer(l, nil)
	r.HumanRenderer = func() string {
		tbl := output.Table{Header: []string{"ID", "KIND", "SCHEME", "KEYS", "SIZE", "STATUS", "HEALTH"}}
		for _, p := range items {
			info := p.Info()
			var id, scheme, keys string
			if pi := info.PartitionInformation; pi != nil {
				id = pi.PartitionID().String()
				scheme = string(pi.Kind())
				keys = partitionKeys(pi)
			}
			var size string
			switch v := p.(type) {
			case *inventory.StatefulServicePartitionInfo:
				size = strconv.FormatInt(v.TargetReplicaSetSize, 10)
			case *inventory.StatelessServicePartitionInfo:
				size = strconv.FormatInt(v.InstanceCount, 10)
			}
			tbl.AddRow(
				id,
				string(p.Kind()),
				scheme,
				keys,
				size,
				r.Colorize.HealthState(info.PartitionStatus.String()),
				r.Colorize.HealthState(info.HealthState.String()),
			)
		}
		return tbl.Render()
	}
	return r.Fprint(t.out())
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/opensvc/sfclient/core/client"
	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/inventory"
	"github.com/opensvc/sfclient/core/output"
	"github.com/opensvc/sfclient/core/upgrade"
)

type (
	// CmdAppLs lists the applications, fetching all the pages.
	CmdAppLs struct {
		OptsGlobal
		TypeName string
	}

	// CmdAppUpgradeStatus shows the progress of an application upgrade.
	CmdAppUpgradeStatus struct {
		OptsGlobal
		ID string
	}

	// CmdAppUpgrade starts an application upgrade.
	CmdAppUpgrade struct {
		OptsGlobal
		ID           string
		Name         string
		Version      string
		Parameters   []string
		Mode         string
		ForceRestart bool
	}

	// CmdAppUpgradeResume starts the upgrade of the next upgrade domain
	// of a manual application upgrade.
	CmdAppUpgradeResume struct {
		OptsGlobal
		ID     string
		Domain string
	}
)

func (t *CmdAppLs) Run() error {
	c, err := t.newClient()
	if err != nil {
		return err
	}
	var (
		items  []inventory.ApplicationInfo
		params client.GetApplicationInfoListParams
	)
	if t.TypeName != "" {
		params.ApplicationTypeName = &t.TypeName
	}
	for {
		page, err := c.GetApplicationInfoList(context.Background(), &params)
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
	l := &inventory.PagedApplicationInfoList{}
	l.Items = items
	r := t.renderer(l, nil)
	r.HumanRenderer = func() string {
		tbl := output.Table{Header: []string{"ID", "NAME", "TYPE", "VERSION", "STATUS", "HEALTH"}}
		for _, a := range items {
			tbl.AddRow(
				string(a.ID),
				string(a.Name),
				a.TypeName,
				a.TypeVersion,
				r.Colorize.HealthState(a.Status.String()),
				r.Colorize.HealthState(a.HealthState.String()),
			)
		}
		return tbl.Render()
	}
	return r.Fprint(t.out())
}

func (t *CmdAppUpgradeStatus) Run() error {
	c, err := t.newClient()
	if err != nil {
		return err
	}
	p, err := c.GetApplicationUpgrade(context.Background(), fabric.ApplicationID(t.ID))
	if err != nil {
		return err
	}
	r := t.renderer(&p, nil)
	r.HumanRenderer = func() string {
		var b strings.Builder
		fmt.Fprintf(&b, "application:    %s\n", p.Name)
		fmt.Fprintf(&b, "type:           %s %s\n", p.TypeName, p.TargetApplicationTypeVersion)
		b.WriteString(sprintProgress(r.Colorize, p.Progress))
		return b.String()
	}
	return r.Fprint(t.out())
}

// parseParameters parses the key=value application parameters, keeping
// their order.
func parseParameters(l []string) ([]upgrade.ApplicationParameter, error) {
	params := make([]upgrade.ApplicationParameter, 0, len(l))
	for _, s := range l {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return nil, errors.Errorf("invalid application parameter %s: use key=value", s)
		}
		params = append(params, upgrade.ApplicationParameter{Key: k, Value: v})
	}
	return params, nil
}

func (t *CmdAppUpgrade) description() (upgrade.ApplicationUpgradeDescription, error) {
	params, err := parseParameters(t.Parameters)
	if err != nil {
		return upgrade.ApplicationUpgradeDescription{}, err
	}
	d := upgrade.ApplicationUpgradeDescription{
		Name:                         fabric.ApplicationName(t.Name),
		TargetApplicationTypeVersion: t.Version,
		Parameters:                   params,
		UpgradeKind:                  fabric.UpgradeKindRolling,
	}
	if d.Name == "" {
		d.Name = fabric.ApplicationID(t.ID).Name()
	}
	if t.Mode != "" {
		mode, err := fabric.ParseUpgradeMode(t.Mode)
		if err != nil {
			return d, err
		}
		d.RollingUpgradeMode = &mode
	}
	if t.ForceRestart {
		d.ForceRestart = &t.ForceRestart
	}
	return d, nil
}

func (t *CmdAppUpgrade) Run() error {
	d, err := t.description()
	if err != nil {
		return err
	}
	c, err := t.newClient()
	if err != nil {
		return err
	}
	return c.StartApplicationUpgrade(context.Background(), fabric.ApplicationID(t.ID), d)
}

func (t *CmdAppUpgradeResume) Run() error {
	c, err := t.newClient()
	if err != nil {
		return err
	}
	d := upgrade.ResumeUpgradeDescription{UpgradeDomainName: t.Domain}
	return c.ResumeApplicationUpgrade(context.Background(), fabric.ApplicationID(t.ID), d)
}

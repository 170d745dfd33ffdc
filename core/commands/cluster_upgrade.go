package commands

import (
	"context"

	"github.com/pkg/errors"

	"github.com/opensvc/sfclient/core/fabric"
	"github.com/opensvc/sfclient/core/upgrade"
)

// CmdClusterUpgrade starts a cluster code or configuration upgrade.
type CmdClusterUpgrade struct {
	OptsGlobal
	CodeVersion   string
	ConfigVersion string
	Mode          string
	ForceRestart  bool
}

func (t *CmdClusterUpgrade) description() (upgrade.StartClusterUpgradeDescription, error) {
	var d upgrade.StartClusterUpgradeDescription
	if t.CodeVersion == "" && t.ConfigVersion == "" {
		return d, errors.New("at least one of the code version and the config version is required")
	}
	if t.CodeVersion != "" {
		d.CodeVersion = &t.CodeVersion
	}
	if t.ConfigVersion != "" {
		d.ConfigVersion = &t.ConfigVersion
	}
	kind := fabric.UpgradeKindRolling
	d.UpgradeKind = &kind
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

func (t *CmdClusterUpgrade) Run() error {
	d, err := t.description()
	if err != nil {
		return err
	}
	c, err := t.newClient()
	if err != nil {
		return err
	}
	return c.StartClusterUpgrade(context.Background(), d)
}

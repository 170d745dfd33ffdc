package sfctl

import (
	"github.com/spf13/cobra"

	"github.com/opensvc/sfclient/core/commands"
)

var (
	cmdCluster = &cobra.Command{
		Use:   "cluster",
		Short: "cluster health, events and upgrades",
	}
)

func init() {
	root.AddCommand(
		cmdCluster,
	)
	cmdCluster.AddCommand(
		newCmdClusterEvents(),
		newCmdClusterHealth(),
		newCmdClusterUpgrade(),
		newCmdClusterUpgradeStatus(),
	)
}

func newCmdClusterHealth() *cobra.Command {
	var options commands.CmdClusterHealth
	cmd := &cobra.Command{
		Use:   "health",
		Short: "show the cluster health",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			options.OptsGlobal = global()
			return options.Run()
		},
	}
	flags := cmd.Flags()
	flagHealthStateFilter(flags, &options.NodesFilter, "nodes", "nodes")
	flagHealthStateFilter(flags, &options.ApplicationsFilter, "apps", "applications")
	flagHealthStateFilter(flags, &options.EventsFilter, "events", "health events")
	flags.BoolVar(&options.ConsiderWarningAsError, "warning-as-error", false, "evaluate the health with a policy considering warnings as errors")
	return cmd
}

func newCmdClusterEvents() *cobra.Command {
	var options commands.CmdClusterEvents
	cmd := &cobra.Command{
		Use:   "events",
		Short: "list the cluster events of a time window",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			options.OptsGlobal = global()
			return options.Run()
		},
	}
	flagsEvents(cmd.Flags(), &options.OptsEvents)
	return cmd
}

func newCmdClusterUpgrade() *cobra.Command {
	var options commands.CmdClusterUpgrade
	cmd := &cobra.Command{
		Use:   "upgrade",
		Short: "start a cluster code or configuration upgrade",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			options.OptsGlobal = global()
			return options.Run()
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&options.CodeVersion, "code-version", "", "the target cluster code version")
	flags.StringVar(&options.ConfigVersion, "config-version", "", "the target cluster configuration version")
	flagUpgradeMode(flags, &options.Mode)
	flagForceRestart(flags, &options.ForceRestart)
	return cmd
}

func newCmdClusterUpgradeStatus() *cobra.Command {
	var options commands.CmdClusterUpgradeStatus
	return &cobra.Command{
		Use:   "upgrade-status",
		Short: "show the progress of the cluster upgrade",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			options.OptsGlobal = global()
			return options.Run()
		},
	}
}

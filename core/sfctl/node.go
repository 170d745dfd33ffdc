package sfctl

import (
	"github.com/spf13/cobra"

	"github.com/opensvc/sfclient/core/commands"
)

var (
	cmdNode = &cobra.Command{
		Use:   "node",
		Short: "cluster nodes",
	}
)

func init() {
	root.AddCommand(
		cmdNode,
	)
	cmdNode.AddCommand(
		newCmdNodeEvents(),
		newCmdNodeHealth(),
		newCmdNodeLs(),
		newCmdNodeReportHealth(),
	)
}

func newCmdNodeLs() *cobra.Command {
	var options commands.CmdNodeLs
	cmd := &cobra.Command{
		Use:     "ls",
		Short:   "list the cluster nodes",
		Aliases: []string{"list"},
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			options.OptsGlobal = global()
			return options.Run()
		},
	}
	cmd.Flags().StringVar(&options.Status, "status", "", "the node status filter: default, all, up, down, enabling, disabling, disabled, unknown, removed")
	return cmd
}

func newCmdNodeHealth() *cobra.Command {
	var options commands.CmdNodeHealth
	cmd := &cobra.Command{
		Use:   "health <name>",
		Short: "show the health of a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			options.Name = args[0]
			return options.Run()
		},
	}
	flagHealthStateFilter(cmd.Flags(), &options.EventsFilter, "events", "health events")
	return cmd
}

func newCmdNodeEvents() *cobra.Command {
	var options commands.CmdNodeEvents
	cmd := &cobra.Command{
		Use:   "events <name>",
		Short: "list the events of a node in a time window",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			options.Name = args[0]
			return options.Run()
		},
	}
	flagsEvents(cmd.Flags(), &options.OptsEvents)
	return cmd
}

func newCmdNodeReportHealth() *cobra.Command {
	var options commands.CmdNodeReportHealth
	cmd := &cobra.Command{
		Use:   "report-health <name>",
		Short: "send a health report on a node",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			options.Name = args[0]
			return options.Run()
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&options.SourceID, "source", "", "the identity of the reporter")
	flags.StringVar(&options.Property, "property", "", "the reported property")
	flags.StringVar(&options.HealthState, "state", "Ok", "the health state: Ok, Warning or Error")
	flags.StringVar(&options.Description, "description", "", "the report description")
	flags.StringVar(&options.TTL, "ttl", "", "the report time to live in milliseconds")
	flags.BoolVar(&options.RemoveWhenExpired, "remove-when-expired", false, "remove the report from the health store when it expires")
	flags.BoolVar(&options.Immediate, "immediate", false, "send the report without batching")
	_ = cmd.MarkFlagRequired("source")
	_ = cmd.MarkFlagRequired("property")
	return cmd
}

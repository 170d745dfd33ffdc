package sfctl

import (
	"github.com/spf13/cobra"

	"github.com/opensvc/sfclient/core/commands"
)

var (
	cmdApp = &cobra.Command{
		Use:     "app",
		Short:   "applications, their services and partitions",
		Aliases: []string{"application"},
	}

	cmdService = &cobra.Command{
		Use:   "service",
		Short: "services of an application",
	}

	cmdPartition = &cobra.Command{
		Use:   "partition",
		Short: "partitions of a service",
	}
)

func init() {
	root.AddCommand(
		cmdApp,
		cmdPartition,
		cmdService,
	)
	cmdApp.AddCommand(
		newCmdAppEvents(),
		newCmdAppLs(),
		newCmdAppUpgrade(),
		newCmdAppUpgradeResume(),
		newCmdAppUpgradeStatus(),
	)
	cmdService.AddCommand(
		newCmdServiceLs(),
	)
	cmdPartition.AddCommand(
		newCmdPartitionLs(),
	)
}

func newCmdAppLs() *cobra.Command {
	var options commands.CmdAppLs
	cmd := &cobra.Command{
		Use:     "ls",
		Short:   "list the applications",
		Aliases: []string{"list"},
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			options.OptsGlobal = global()
			return options.Run()
		},
	}
	cmd.Flags().StringVar(&options.TypeName, "type", "", "list only the applications of this application type")
	return cmd
}

func newCmdAppEvents() *cobra.Command {
	var options commands.CmdAppEvents
	cmd := &cobra.Command{
		Use:   "events <id>",
		Short: "list the events of an application in a time window",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			options.ID = args[0]
			return options.Run()
		},
	}
	flagsEvents(cmd.Flags(), &options.OptsEvents)
	return cmd
}

func newCmdAppUpgrade() *cobra.Command {
	var options commands.CmdAppUpgrade
	cmd := &cobra.Command{
		Use:   "upgrade <id>",
		Short: "start an application upgrade",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			options.ID = args[0]
			return options.Run()
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&options.Name, "name", "", "the application name. Defaults to the name derived from the id")
	flags.StringVar(&options.Version, "version", "", "the target application type version")
	flags.StringArrayVar(&options.Parameters, "param", nil, "an application parameter, as key=value. Can be repeated")
	flagUpgradeMode(flags, &options.Mode)
	flagForceRestart(flags, &options.ForceRestart)
	_ = cmd.MarkFlagRequired("version")
	return cmd
}

func newCmdAppUpgradeResume() *cobra.Command {
	var options commands.CmdAppUpgradeResume
	cmd := &cobra.Command{
		Use:   "upgrade-resume <id>",
		Short: "upgrade the next domain of a manual application upgrade",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			options.ID = args[0]
			return options.Run()
		},
	}
	cmd.Flags().StringVar(&options.Domain, "domain", "", "the name of the upgrade domain to upgrade")
	_ = cmd.MarkFlagRequired("domain")
	return cmd
}

func newCmdAppUpgradeStatus() *cobra.Command {
	var options commands.CmdAppUpgradeStatus
	return &cobra.Command{
		Use:   "upgrade-status <id>",
		Short: "show the progress of an application upgrade",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			options.ID = args[0]
			return options.Run()
		},
	}
}

func newCmdServiceLs() *cobra.Command {
	var options commands.CmdServiceLs
	return &cobra.Command{
		Use:     "ls <application id>",
		Short:   "list the services of an application",
		Aliases: []string{"list"},
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			options.ApplicationID = args[0]
			return options.Run()
		},
	}
}

func newCmdPartitionLs() *cobra.Command {
	var options commands.CmdPartitionLs
	return &cobra.Command{
		Use:     "ls <service id>",
		Short:   "list the partitions of a service",
		Aliases: []string{"list"},
		Args:    cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			options.ServiceID = args[0]
			return options.Run()
		},
	}
}

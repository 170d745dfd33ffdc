package sfctl

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/opensvc/sfclient/core/commands"
	"github.com/opensvc/sfclient/core/fabric"
)

func newCmdDecode() *cobra.Command {
	var options commands.CmdDecode
	cmd := &cobra.Command{
		Use:   "decode [file|-]",
		Short: "decode a json document with a model and print its canonical form",
		Long: "Decode a json document with a model and print its canonical form.\n\n" +
			"Known models: " + strings.Join(commands.Models(), ", "),
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			if len(args) > 0 {
				options.File = args[0]
			}
			options.In = cmd.InOrStdin()
			return options.Run()
		},
	}
	flags := cmd.Flags()
	flags.StringVarP(&options.Type, "type", "t", "event", "the model of the document")
	_ = cmd.RegisterFlagCompletionFunc("type", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return commands.Models(), cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}

func newCmdKinds() *cobra.Command {
	var options commands.CmdKinds
	return &cobra.Command{
		Use:   "kinds [family]",
		Short: "list the kinds of a polymorphic family, or the families",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			var l []string
			for _, f := range commands.Families() {
				l = append(l, f.Name)
			}
			return l, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			if len(args) > 0 {
				options.Family = args[0]
			}
			return options.Run()
		},
	}
}

func newCmdEnums() *cobra.Command {
	var options commands.CmdEnums
	return &cobra.Command{
		Use:   "enums [name]",
		Short: "list the literals of the enumerations",
		Args:  cobra.MaximumNArgs(1),
		ValidArgsFunction: func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
			var l []string
			for _, e := range fabric.Enums() {
				l = append(l, e.Name)
			}
			return l, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(_ *cobra.Command, args []string) error {
			options.OptsGlobal = global()
			if len(args) > 0 {
				options.Name = args[0]
			}
			return options.Run()
		},
	}
}

package sfctl

import (
	"github.com/spf13/cobra"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "generate completion script",
	Long: `To load completions:

Bash:

  $ source <(sfctl completion bash)

  # To load completions for each session, execute once:
  # Linux:
  $ sfctl completion bash > /etc/bash_completion.d/sfctl
  # macOS:
  $ sfctl completion bash > /usr/local/etc/bash_completion.d/sfctl

Zsh:

  $ sfctl completion zsh > "${fpath[1]}/_sfctl"

fish:

  $ sfctl completion fish | source

PowerShell:

  PS> sfctl completion powershell | Out-String | Invoke-Expression
`,
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.ExactValidArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		w := cmd.OutOrStdout()
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(w)
		case "zsh":
			return cmd.Root().GenZshCompletion(w)
		case "fish":
			return cmd.Root().GenFishCompletion(w, true)
		default:
			return cmd.Root().GenPowerShellCompletion(w)
		}
	},
}

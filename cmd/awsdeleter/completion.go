package main

import (
	"fmt"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"os"
)

var completionCmd = &cobra.Command{
	Use:   "completion [bash|zsh|fish|powershell]",
	Short: "Generate completion script",
	Long: dedent.Dedent(`
		To load completions:

		Bash:

		$ source <(awsdeleter completion bash)

		Zsh:

		$ awsdeleter completion zsh > "${fpath[1]}/_awsdeleter"

		Fish:

		$ awsdeleter completion fish | source
	`),
	DisableFlagsInUseLine: true,
	ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return cmd.Root().GenBashCompletion(os.Stdout)
		case "zsh":
			return cmd.Root().GenZshCompletion(os.Stdout)
		case "fish":
			return cmd.Root().GenFishCompletion(os.Stdout, true)
		case "powershell":
			return cmd.Root().GenPowerShellCompletion(os.Stdout)
		default:
			return fmt.Errorf("autocompletion for %s not supported", args[0])
		}
	},
}

func init() {
	rootCmd.AddCommand(completionCmd)
}

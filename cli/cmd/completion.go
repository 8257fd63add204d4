package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tpexpress/create-tpexpress/cli/util"
)

const (
	shellBash = "bash"
	shellZsh  = "zsh"
	shellFish = "fish"
)

var shellSupported = []string{shellBash, shellZsh, shellFish}

func listShells() string {
	return strings.Join(shellSupported, " | ")
}

// NewCompletionCmd creates a new completion command.
func NewCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use: "completion <SHELL_TYPE>",
		Short: "Generate autocomplete for a specified shell. " +
			fmt.Sprintf("Supported shell type: %s", listShells()),
		ValidArgs: shellSupported,
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			err := generateCompletion(cmd.Root(), cmd, args[0])
			util.HandleCmdErr(cmd, err)
		},
		Example: `
# Enable auto-completion in current bash shell.

    $ . <(create-tpexpress completion bash)`,
	}

	return cmd
}

// generateCompletion writes completion script for the shell.
func generateCompletion(root *cobra.Command, cmd *cobra.Command, shell string) error {
	out := cmd.OutOrStdout()
	switch shell {
	case shellBash:
		return root.GenBashCompletionV2(out, true)
	case shellZsh:
		return root.GenZshCompletion(out)
	case shellFish:
		return root.GenFishCompletion(out, true)
	default:
		return fmt.Errorf("specified shell type is not supported. Available: %s", listShells())
	}
}

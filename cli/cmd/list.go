package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tpexpress/create-tpexpress/cli/database"
)

var prettyList bool

// NewListCmd creates a command listing supported databases.
func NewListCmd() *cobra.Command {
	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List supported databases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cmdCtx.CommandName = cmd.Name()
			database.PrintTable(cmd.OutOrStdout(), prettyList)
		},
	}

	listCmd.Flags().BoolVarP(&prettyList, "pretty", "p", false, "Print a table with borders")

	return listCmd
}

package resource

import (
	"awsdeleter/internal/env"
	"awsdeleter/internal/operations"
	"github.com/spf13/cobra"
)

var operationsCmd = &cobra.Command{
	Use:   "operations [flags]",
	Short: "List supported delete operations per resource type",
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := operations.Load(env.Config.OperationsFile)
		if err != nil {
			return err
		}
		operations.Render(cmd.OutOrStdout(), ops)
		return nil
	},
}

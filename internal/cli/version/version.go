package version

import (
	"awsdeleter/internal/env"
	"fmt"
	"github.com/spf13/cobra"
)

var Version = &cobra.Command{
	Use:   "version",
	Short: "Version",
	Run: func(c *cobra.Command, _ []string) {
		versionInfo := env.GetBuildVersion()
		fmt.Fprintf(c.OutOrStdout(), "%s\n%s\n", versionInfo.BuildVersion, versionInfo.Commit)
	},
	SilenceUsage: true,
}

package resource

import (
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var Resource = &cobra.Command{
	Use:   "resource [command] [flags]",
	Short: "Resource operations",
	Run: func(c *cobra.Command, _ []string) {
		if err := c.Help(); err != nil {
			log.Debug().Msgf("ignoring cobra error %q", err.Error())
		}
	},
	SilenceUsage: true,
	Aliases:      []string{"resources"},
}

func init() {
	Resource.AddCommand(deleteCmd)
	Resource.AddCommand(operationsCmd)
}

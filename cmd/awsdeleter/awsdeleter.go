package main

import (
	"awsdeleter/internal/cli/resource"
	"awsdeleter/internal/cli/version"
	"awsdeleter/internal/env"
	strings2 "awsdeleter/internal/lib/strings"
	"context"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"os"
	"strings"
	"unicode"
)

var groups = []string{"resource"}

var rootCmd = &cobra.Command{
	Use:   "awsdeleter [group] [command] [flags]",
	Short: "Delete single AWS resources through their supported delete operation",
	Run: func(c *cobra.Command, _ []string) {
		if err := c.Help(); err != nil {
			log.Debug().Msgf("ignoring cobra error %q", err.Error())
		}
	},
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Debug().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

func Usage(cmd *cobra.Command) error {
	if cmd == nil {
		return fmt.Errorf("nil command")
	}

	usage := []string{fmt.Sprintf("Usage: %s", cmd.UseLine())}
	cmdPath := cmd.CommandPath()

	if cmdPath == "awsdeleter" {
		usage = append(usage, "\nGroups:")
		for _, subCommand := range cmd.Commands() {
			if strings2.OneOf(subCommand.Name(), groups) {
				usage = append(usage, fmt.Sprintf("  %s %-30s  %s", cmd.CommandPath(), subCommand.Name(), subCommand.Short))
			}
		}
	}

	usage = append(usage, "\nCommands:")
	for _, subCommand := range cmd.Commands() {
		if !subCommand.Hidden && !strings2.OneOf(subCommand.Name(), groups) {
			usage = append(usage, fmt.Sprintf("  %s %-30s  %s", cmd.CommandPath(), subCommand.Name(), subCommand.Short))
		}
	}

	if len(cmd.Aliases) > 0 {
		usage = append(usage, "\nAliases: "+cmd.NameAndAliases())
	}

	if flags := cmd.LocalNonPersistentFlags().FlagUsages(); len(flags) != 0 {
		usage = append(usage, "\nFlags:")
		usage = append(usage, strings.TrimRightFunc(flags, unicode.IsSpace))
	}

	usage = append(usage, "\nCommon flags:")
	if len(cmd.PersistentFlags().FlagUsages()) != 0 {
		usage = append(usage, strings.TrimRightFunc(cmd.PersistentFlags().FlagUsages(), unicode.IsSpace))
	}
	if len(cmd.InheritedFlags().FlagUsages()) != 0 {
		usage = append(usage, strings.TrimRightFunc(cmd.InheritedFlags().FlagUsages(), unicode.IsSpace))
	}

	if cmdPath == "awsdeleter" {
		cmdPath += " [group]"
	} else {
		cmdPath += " [command]"
	}
	usage = append(usage, fmt.Sprintf("\nUse '%s --help' for more information about a command.\n", cmdPath))

	cmd.Println(strings.Join(usage, "\n"))

	return nil
}

func init() {
	rootCmd.AddCommand(resource.Resource)
	rootCmd.AddCommand(version.Version)

	rootCmd.PersistentFlags().BoolP("help", "h", false, "help for this command")
	rootCmd.PersistentFlags().StringVarP(&env.Config.Region, "region", "r", "", "AWS region, defaults to the shared config")
	rootCmd.PersistentFlags().StringVarP(&env.Config.Profile, "profile", "p", "", "AWS shared config profile")
	rootCmd.PersistentFlags().StringVarP(&env.Config.OperationsFile, "operations", "o", "", "YAML or JSON supported operations table")
	rootCmd.SetUsageFunc(Usage)
}

func configureLogging() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	} else {
		level, err := zerolog.ParseLevel(logLevel)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid LOG_LEVEL")
		}
		zerolog.SetGlobalLevel(level)
	}
}

func main() {
	configureLogging()
	Execute()
}

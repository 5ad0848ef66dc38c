package resource

import (
	"awsdeleter/internal/aws/kinesis"
	"awsdeleter/internal/cleaner"
	"awsdeleter/internal/connectors"
	"awsdeleter/internal/deleter"
	"awsdeleter/internal/env"
	"awsdeleter/internal/logging"
	"awsdeleter/internal/operations"
	"fmt"
	"github.com/lithammer/dedent"
	"github.com/spf13/cobra"
	"io"
)

var (
	resourceType string
	resourceName string
	streamARN    string
	consumerARN  string
	dryRun       bool
	strict       bool
)

var deleteCmd = &cobra.Command{
	Use:   "delete [flags]",
	Short: "Delete a single resource with its supported delete operation",
	Long: dedent.Dedent(`
		Delete a single resource. The resource type is looked up in the supported
		operations table (--operations, or the built-in table) and the resource is
		deleted only when its delete operation is deregister_stream_consumer.

		Prints "true" when the resource was deleted and "false" otherwise.
	`),
	RunE: func(cmd *cobra.Command, args []string) error {
		ops, err := operations.Load(env.Config.OperationsFile)
		if err != nil {
			logging.UserFailure(err.Error())
			return err
		}

		consumers := kinesis.NewConsumers(connectors.GetAWSSession().Kinesis)
		d := deleter.New(deleter.Request{
			ResourceType: resourceType,
			Region:       env.Config.Region,
			ResourceName: resourceName,
			StreamARN:    streamARN,
			ConsumerARN:  consumerARN,
			Operations:   ops,
		}, consumers)

		if dryRun {
			logging.UserInfo("This is dry run, running delete will remove the following resource:")
		} else {
			logging.UserInfo("Removing the following resource:")
		}

		result, err := cleaner.CleanupResource(cmd.Context(), &cleaner.KinesisConsumer{Deleter: d, Describer: consumers}, dryRun)
		if err != nil {
			logging.UserFailure(err.Error())
			return err
		}
		if result == nil {
			return nil
		}

		return reportResult(cmd.OutOrStdout(), resourceType, resourceName, *result, strict)
	},
}

// reportResult prints the outcome and the status line. Failed deletes are
// swallowed unless strict is set.
func reportResult(w io.Writer, resourceType, resourceName string, result deleter.Result, strict bool) error {
	switch result.Outcome {
	case deleter.Deleted:
		logging.UserSuccess("Resource Type: %s of resourceName: %s is deleted", resourceType, resourceName)
	case deleter.Unsupported:
		logging.UserWarning("%s not supported", result.Operation)
	case deleter.Failed:
		if kinesis.IsNotFound(result.Err) {
			logging.UserWarning("consumer %s was not found", resourceName)
		} else {
			logging.UserFailure(result.Err.Error())
		}
	}
	fmt.Fprintln(w, result.Status())

	if strict && result.Outcome == deleter.Failed {
		return result.Err
	}
	return nil
}

func init() {
	deleteCmd.Flags().StringVarP(&resourceType, "type", "t", operations.KinesisConsumer, "resource type, a key of the supported operations table")
	deleteCmd.Flags().StringVarP(&resourceName, "name", "n", "", "resource name")
	deleteCmd.Flags().StringVar(&streamARN, "stream-arn", "", "ARN of the stream the consumer is registered with")
	deleteCmd.Flags().StringVar(&consumerARN, "consumer-arn", "", "consumer ARN, used instead of name and stream")
	deleteCmd.Flags().BoolVarP(&dryRun, "dry-run", "d", false, "dry run")
	deleteCmd.Flags().BoolVar(&strict, "strict", false, "exit with an error when the delete call fails")
	_ = deleteCmd.MarkFlagRequired("name")
}

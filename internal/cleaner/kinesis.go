package cleaner

import (
	kinesis2 "awsdeleter/internal/aws/kinesis"
	"awsdeleter/internal/deleter"
	"awsdeleter/internal/logging"
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/kinesis"
	"github.com/rs/zerolog/log"
)

type ConsumerDescriber interface {
	DescribeConsumer(ctx context.Context, ref deleter.ConsumerRef) (*kinesis.ConsumerDescription, error)
}

type KinesisConsumer struct {
	Deleter   *deleter.Deleter
	Describer ConsumerDescriber
	Consumer  *kinesis.ConsumerDescription
}

func (k *KinesisConsumer) ref() deleter.ConsumerRef {
	return deleter.ConsumerRef{
		Name:        k.Deleter.ResourceName,
		StreamARN:   k.Deleter.StreamARN,
		ConsumerARN: k.Deleter.ConsumerARN,
	}
}

// Fetch checks the operations table first, then looks the consumer up only
// when the type is deregistrable and the consumer can be addressed: by
// consumer ARN, or by name within a stream ARN.
func (k *KinesisConsumer) Fetch(ctx context.Context) error {
	supported, err := k.Deleter.Supported()
	if err != nil {
		return err
	}

	ref := k.ref()
	if !supported || k.Describer == nil || (ref.ConsumerARN == "" && ref.StreamARN == "") {
		return nil
	}

	consumer, err := k.Describer.DescribeConsumer(ctx, ref)
	if err != nil {
		if kinesis2.IsNotFound(err) {
			log.Debug().Msgf("consumer %s not found", ref.Name)
			return nil
		}
		return err
	}
	k.Consumer = consumer
	return nil
}

func (k *KinesisConsumer) Delete(ctx context.Context) (deleter.Result, error) {
	return k.Deleter.DeleteAction(ctx)
}

func (k *KinesisConsumer) Print() {
	logging.UserInfo("%s:", k.Deleter.ResourceType)
	if k.Consumer != nil {
		logging.UserInfo("\t- %s (%s)", aws.StringValue(k.Consumer.ConsumerName), aws.StringValue(k.Consumer.ConsumerStatus))
		return
	}
	logging.UserInfo("\t- %s", k.Deleter.ResourceName)
}

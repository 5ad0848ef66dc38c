package kinesis

import (
	"awsdeleter/internal/deleter"
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/kinesis"
	"github.com/aws/aws-sdk-go/service/kinesis/kinesisiface"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

type Consumers struct {
	svc kinesisiface.KinesisAPI
}

func NewConsumers(svc kinesisiface.KinesisAPI) *Consumers {
	return &Consumers{svc: svc}
}

// A consumer ARN identifies the consumer on its own; otherwise the name is
// sent along with the stream ARN when one is known.
func deregisterInput(ref deleter.ConsumerRef) *kinesis.DeregisterStreamConsumerInput {
	if ref.ConsumerARN != "" {
		return &kinesis.DeregisterStreamConsumerInput{ConsumerARN: aws.String(ref.ConsumerARN)}
	}
	input := &kinesis.DeregisterStreamConsumerInput{ConsumerName: aws.String(ref.Name)}
	if ref.StreamARN != "" {
		input.StreamARN = aws.String(ref.StreamARN)
	}
	return input
}

func (c *Consumers) DeregisterConsumer(ctx context.Context, ref deleter.ConsumerRef) error {
	_, err := c.svc.DeregisterStreamConsumerWithContext(ctx, deregisterInput(ref))
	if err != nil {
		log.Debug().Msgf("deregistering consumer %s failed: %s", ref.Name, err.Error())
		return err
	}
	log.Debug().Msgf("consumer %s was deregistered successfully", ref.Name)
	return nil
}

func (c *Consumers) DescribeConsumer(ctx context.Context, ref deleter.ConsumerRef) (*kinesis.ConsumerDescription, error) {
	input := &kinesis.DescribeStreamConsumerInput{}
	if ref.ConsumerARN != "" {
		input.ConsumerARN = aws.String(ref.ConsumerARN)
	} else {
		input.ConsumerName = aws.String(ref.Name)
		input.StreamARN = aws.String(ref.StreamARN)
	}
	output, err := c.svc.DescribeStreamConsumerWithContext(ctx, input)
	if err != nil {
		return nil, err
	}
	return output.ConsumerDescription, nil
}

func (c *Consumers) IsNotFound(err error) bool {
	return IsNotFound(err)
}

func IsNotFound(err error) bool {
	if aerr, ok := errors.Cause(err).(awserr.Error); ok {
		return aerr.Code() == kinesis.ErrCodeResourceNotFoundException
	}
	return false
}

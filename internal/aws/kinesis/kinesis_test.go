package kinesis

import (
	"awsdeleter/internal/deleter"
	"context"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/kinesis"
	"github.com/aws/aws-sdk-go/service/kinesis/kinesisiface"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"testing"
)

const streamARN = "arn:aws:kinesis:us-east-1:123456789012:stream/orders"

type mockKinesis struct {
	kinesisiface.KinesisAPI
	mock.Mock
}

func (m *mockKinesis) DeregisterStreamConsumerWithContext(ctx aws.Context, input *kinesis.DeregisterStreamConsumerInput, _ ...request.Option) (*kinesis.DeregisterStreamConsumerOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*kinesis.DeregisterStreamConsumerOutput)
	return output, args.Error(1)
}

func (m *mockKinesis) DescribeStreamConsumerWithContext(ctx aws.Context, input *kinesis.DescribeStreamConsumerInput, _ ...request.Option) (*kinesis.DescribeStreamConsumerOutput, error) {
	args := m.Called(ctx, input)
	output, _ := args.Get(0).(*kinesis.DescribeStreamConsumerOutput)
	return output, args.Error(1)
}

func TestConsumers_DeregisterConsumer(t *testing.T) {
	consumerARN := streamARN + "/consumer/my-consumer:1700000000"

	tests := []struct {
		name      string
		ref       deleter.ConsumerRef
		wantInput *kinesis.DeregisterStreamConsumerInput
		err       error
	}{
		{
			name:      "name only",
			ref:       deleter.ConsumerRef{Name: "my-consumer"},
			wantInput: &kinesis.DeregisterStreamConsumerInput{ConsumerName: aws.String("my-consumer")},
		},
		{
			name: "name and stream",
			ref:  deleter.ConsumerRef{Name: "my-consumer", StreamARN: streamARN},
			wantInput: &kinesis.DeregisterStreamConsumerInput{
				ConsumerName: aws.String("my-consumer"),
				StreamARN:    aws.String(streamARN),
			},
		},
		{
			name:      "consumer arn wins",
			ref:       deleter.ConsumerRef{Name: "my-consumer", StreamARN: streamARN, ConsumerARN: consumerARN},
			wantInput: &kinesis.DeregisterStreamConsumerInput{ConsumerARN: aws.String(consumerARN)},
		},
		{
			name:      "sdk error is returned",
			ref:       deleter.ConsumerRef{Name: "my-consumer"},
			wantInput: &kinesis.DeregisterStreamConsumerInput{ConsumerName: aws.String("my-consumer")},
			err:       awserr.New(kinesis.ErrCodeResourceNotFoundException, "Consumer my-consumer not found", nil),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockKinesis{}
			svc.On("DeregisterStreamConsumerWithContext", mock.Anything, tt.wantInput).
				Return(&kinesis.DeregisterStreamConsumerOutput{}, tt.err).Once()

			err := NewConsumers(svc).DeregisterConsumer(context.Background(), tt.ref)
			assert.Equal(t, tt.err, err)
			svc.AssertExpectations(t)
		})
	}
}

func TestConsumers_DescribeConsumer(t *testing.T) {
	svc := &mockKinesis{}
	svc.On("DescribeStreamConsumerWithContext", mock.Anything, &kinesis.DescribeStreamConsumerInput{
		ConsumerName: aws.String("my-consumer"),
		StreamARN:    aws.String(streamARN),
	}).Return(&kinesis.DescribeStreamConsumerOutput{
		ConsumerDescription: &kinesis.ConsumerDescription{
			ConsumerName:   aws.String("my-consumer"),
			ConsumerStatus: aws.String(kinesis.ConsumerStatusActive),
		},
	}, nil).Once()

	consumer, err := NewConsumers(svc).DescribeConsumer(context.Background(), deleter.ConsumerRef{Name: "my-consumer", StreamARN: streamARN})
	require.NoError(t, err)
	assert.Equal(t, kinesis.ConsumerStatusActive, aws.StringValue(consumer.ConsumerStatus))
	svc.AssertExpectations(t)
}

func TestConsumers_DeleterEndToEnd(t *testing.T) {
	svc := &mockKinesis{}
	svc.On("DeregisterStreamConsumerWithContext", mock.Anything, mock.Anything).
		Return(nil, awserr.New(kinesis.ErrCodeResourceNotFoundException, "Consumer my-consumer not found", nil)).Once()

	d := deleter.New(deleter.Request{
		ResourceType: "kinesis_consumer",
		ResourceName: "my-consumer",
		Operations: deleter.SupportedOperations{
			"kinesis_consumer": {Delete: deleter.Operation(deleter.DeregisterStreamConsumer)},
		},
	}, NewConsumers(svc))

	result, err := d.DeleteAction(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "false", result.Status())
	assert.True(t, IsNotFound(result.Err))
}

func TestIsNotFound(t *testing.T) {
	notFound := awserr.New(kinesis.ErrCodeResourceNotFoundException, "not found", nil)

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(errors.Wrap(notFound, "deregister")))
	assert.False(t, IsNotFound(awserr.New(kinesis.ErrCodeResourceInUseException, "in use", nil)))
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsNotFound(nil))
}

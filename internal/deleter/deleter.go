package deleter

import (
	"context"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

const DeregisterStreamConsumer = "deregister_stream_consumer"

var (
	ErrUnknownResourceType = errors.New("resource type has no supported operations")
	ErrNoDeleteOperation   = errors.New("resource type has no delete operation")
)

type ConsumerRef struct {
	Name        string
	StreamARN   string
	ConsumerARN string
}

type ConsumerDeregisterer interface {
	DeregisterConsumer(ctx context.Context, ref ConsumerRef) error
}

// NotFoundClassifier is implemented by clients that can tell a missing
// consumer apart from other failures. Missing consumers are logged as warnings.
type NotFoundClassifier interface {
	IsNotFound(err error) bool
}

// Request is one deletion target. Region is informational: the client
// handed to New is already bound to its region.
type Request struct {
	ResourceType string
	Region       string
	ResourceName string
	StreamARN    string
	ConsumerARN  string
	Operations   SupportedOperations
}

type Deleter struct {
	Request
	client ConsumerDeregisterer
}

func New(req Request, client ConsumerDeregisterer) *Deleter {
	return &Deleter{Request: req, client: client}
}

func (d *Deleter) deleteOperations() (DeleteOperations, error) {
	spec, ok := d.Operations[d.ResourceType]
	if !ok {
		return DeleteOperations{}, errors.Wrapf(ErrUnknownResourceType, "%q", d.ResourceType)
	}
	if !spec.Delete.IsSet() {
		return DeleteOperations{}, errors.Wrapf(ErrNoDeleteOperation, "%q", d.ResourceType)
	}
	return spec.Delete, nil
}

// Supported reports whether the resource type's delete operations include
// deregister_stream_consumer. Lookup failures are returned as errors.
func (d *Deleter) Supported() (bool, error) {
	ops, err := d.deleteOperations()
	if err != nil {
		return false, err
	}
	return ops.Supports(DeregisterStreamConsumer), nil
}

func (d *Deleter) isNotFound(err error) bool {
	classifier, ok := d.client.(NotFoundClassifier)
	return ok && classifier.IsNotFound(err)
}

// DeleteAction performs one delete attempt. Lookup failures in the
// supported operations table are returned as errors; a rejected remote
// call is reported as a Failed result instead.
func (d *Deleter) DeleteAction(ctx context.Context) (Result, error) {
	ops, err := d.deleteOperations()
	if err != nil {
		return Result{}, err
	}

	logger := log.With().
		Str("attempt", uuid.New().String()).
		Str("resource_type", d.ResourceType).
		Str("resource_name", d.ResourceName).
		Logger()
	logger.Debug().Msgf("delete operations: %s", ops)

	if !ops.Supports(DeregisterStreamConsumer) {
		logger.Warn().Msgf("%s not supported", ops)
		return Result{Outcome: Unsupported, Operation: ops.String()}, nil
	}

	err = d.client.DeregisterConsumer(ctx, ConsumerRef{
		Name:        d.ResourceName,
		StreamARN:   d.StreamARN,
		ConsumerARN: d.ConsumerARN,
	})
	if err != nil {
		if d.isNotFound(err) {
			logger.Warn().Err(err).Msg("stream consumer not found")
		} else {
			logger.Error().Err(err).Msg("failed to deregister stream consumer")
		}
		return Result{Outcome: Failed, Operation: DeregisterStreamConsumer, Err: err}, nil
	}

	logger.Info().Msgf("Resource Type: %s of resourceName: %s is deleted", d.ResourceType, d.ResourceName)
	return Result{Outcome: Deleted, Operation: DeregisterStreamConsumer}, nil
}

// Status is DeleteAction rendered as "true" or "false".
func (d *Deleter) Status(ctx context.Context) (string, error) {
	result, err := d.DeleteAction(ctx)
	if err != nil {
		return "", err
	}
	return result.Status(), nil
}

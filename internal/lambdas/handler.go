package lambdas

import (
	"awsdeleter/internal/deleter"
	"context"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/rs/zerolog/log"
)

type DeleteEvent struct {
	ResourceType string `json:"resourceType"`
	ResourceName string `json:"resourceName"`
	Region       string `json:"region,omitempty"`
	StreamARN    string `json:"streamArn,omitempty"`
	ConsumerARN  string `json:"consumerArn,omitempty"`
}

type DeleteResponse struct {
	Status  string `json:"status"`
	Outcome string `json:"outcome"`
	Error   string `json:"error,omitempty"`
}

type Handler struct {
	Operations deleter.SupportedOperations
	Client     deleter.ConsumerDeregisterer
}

// Handle returns an error only when the resource type cannot be looked up;
// a rejected delete is reported in the response body.
func (h *Handler) Handle(ctx context.Context, event DeleteEvent) (DeleteResponse, error) {
	logger := log.With().Str("resource_type", event.ResourceType).Str("resource_name", event.ResourceName).Logger()
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger = logger.With().Str("aws_request_id", lc.AwsRequestID).Logger()
	}
	logger.Info().Msg("delete requested")

	d := deleter.New(deleter.Request{
		ResourceType: event.ResourceType,
		Region:       event.Region,
		ResourceName: event.ResourceName,
		StreamARN:    event.StreamARN,
		ConsumerARN:  event.ConsumerARN,
		Operations:   h.Operations,
	}, h.Client)

	result, err := d.DeleteAction(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("delete request rejected")
		return DeleteResponse{}, err
	}

	response := DeleteResponse{Status: result.Status(), Outcome: result.Outcome.String()}
	if result.Err != nil {
		response.Error = result.Err.Error()
	}
	logger.Info().Str("outcome", response.Outcome).Msg("delete finished")
	return response, nil
}

package main

import (
	"awsdeleter/internal/aws/kinesis"
	"awsdeleter/internal/connectors"
	"awsdeleter/internal/env"
	"awsdeleter/internal/lambdas"
	"awsdeleter/internal/operations"
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"os"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL")); err == nil && level != zerolog.NoLevel {
		zerolog.SetGlobalLevel(level)
	}

	env.Config.Region = os.Getenv("REGION")
	ops, err := operations.Load(os.Getenv("OPERATIONS_FILE"))
	if err != nil {
		log.Fatal().Err(err).Msg("failed loading supported operations")
	}

	handler := &lambdas.Handler{
		Operations: ops,
		Client:     kinesis.NewConsumers(connectors.GetAWSSession().Kinesis),
	}
	lambda.Start(handler.Handle)
}

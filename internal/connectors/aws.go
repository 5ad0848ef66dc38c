package connectors

import (
	"awsdeleter/internal/env"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials/stscreds"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/kinesis"
	"sync"
)

type SAwsSession struct {
	sync.RWMutex
	Session *session.Session
	Kinesis *kinesis.Kinesis
}

var awsSession SAwsSession

func GetAWSSession() *SAwsSession {
	awsSession.RLock()
	if awsSession.Session != nil {
		awsSession.RUnlock()
		return &awsSession
	}
	awsSession.RUnlock()

	awsSession.Lock()
	defer awsSession.Unlock()
	if awsSession.Session == nil {
		awsSession.Session = newSession(env.Config.Region, env.Config.Profile)
		awsSession.Kinesis = kinesis.New(awsSession.Session)
	}
	return &awsSession
}

// An empty region leaves resolution to the shared config and environment.
func newSession(region, profile string) *session.Session {
	config := aws.NewConfig()
	if region != "" {
		config = config.WithRegion(region)
	}
	config = config.WithCredentialsChainVerboseErrors(true)

	opts := session.Options{
		Config:                  *config,
		Profile:                 profile,
		SharedConfigState:       session.SharedConfigEnable,
		AssumeRoleTokenProvider: stscreds.StdinTokenProvider,
	}

	return session.Must(session.NewSessionWithOptions(opts))
}

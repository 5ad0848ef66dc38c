package cleaner

import (
	"awsdeleter/internal/deleter"
	"context"
)

type Cleaner interface {
	Fetch(ctx context.Context) error
	Delete(ctx context.Context) (deleter.Result, error)
	Print()
}

// CleanupResource returns a nil result on a dry run.
func CleanupResource(ctx context.Context, r Cleaner, dryRun bool) (*deleter.Result, error) {
	err := r.Fetch(ctx)
	if err != nil {
		return nil, err
	}

	r.Print()
	if dryRun {
		return nil, nil
	}

	result, err := r.Delete(ctx)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

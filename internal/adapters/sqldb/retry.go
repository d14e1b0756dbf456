package sqldb

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"go.trai.ch/dbfetch/internal/core/ports"
)

// RetryPolicy controls the exponential backoff applied to database
// operations. The defaults mirror the reference client: up to 10 attempts
// with waits between 5 and 10 seconds.
type RetryPolicy struct {
	MaxAttempts     uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

func defaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:     10,
		InitialInterval: 5 * time.Second,
		MaxInterval:     10 * time.Second,
	}
}

// retryOp runs the operation under the policy, logging a warning before each
// wait. A backoff.Permanent error aborts immediately; context cancellation
// stops the retries.
func retryOp(ctx context.Context, log ports.Logger, policy RetryPolicy, what string, op backoff.Operation) error {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = policy.InitialInterval
	bo.MaxInterval = policy.MaxInterval

	var b backoff.BackOff = backoff.WithMaxRetries(bo, policy.MaxAttempts-1)
	b = backoff.WithContext(b, ctx)

	return backoff.RetryNotify(op, b, func(err error, wait time.Duration) {
		log.Warn(fmt.Sprintf("%s failed, retrying in %s: %v", what, wait.Truncate(time.Millisecond), err))
	})
}

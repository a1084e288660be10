package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with exponential backoff and
// jitter. Rate limits honor the provider's retry-after hint when one is
// given.
type RetryProvider struct {
	inner  Provider
	config RetryConfig
}

func WithRetry(p Provider, cfg RetryConfig) Provider {
	return &RetryProvider{inner: p, config: cfg}
}

func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var lastErr error
	invalidSeen := false

	for attempt := range r.config.MaxAttempts {
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		if terminal(ctx, err, &invalidSeen) {
			return nil, err
		}
		if attempt == r.config.MaxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.waitFor(attempt, err)):
		}
	}

	return nil, lastErr
}

// terminal reports whether err should stop the retry loop. Context
// cancellation and truncation never retry. A schema-invalid response
// retries once; a second identical failure usually means a prompt
// problem, not a flake. Everything else, including unclassified
// network errors, is treated as transient.
func terminal(ctx context.Context, err error, invalidSeen *bool) bool {
	if ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var maxTok *ErrMaxTokensExceeded
	if errors.As(err, &maxTok) {
		return true
	}

	var invResp *ErrInvalidResponse
	if errors.As(err, &invResp) {
		if *invalidSeen {
			return true
		}
		*invalidSeen = true
	}

	return false
}

func (r *RetryProvider) waitFor(attempt int, err error) time.Duration {
	var rl *ErrRateLimit
	if errors.As(err, &rl) && rl.RetryAfter > 0 {
		return rl.RetryAfter
	}

	wait := float64(r.config.InitialWait) * math.Pow(r.config.Multiplier, float64(attempt))
	wait = math.Min(wait, float64(r.config.MaxWait))

	// ±20% jitter.
	wait *= 1 + 0.2*(2*rand.Float64()-1)

	return time.Duration(math.Max(wait, 0))
}

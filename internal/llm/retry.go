package llm

import (
	"context"
	"fmt"
	"time"

	"ats-resume/internal/shared/metrics"
	"ats-resume/internal/shared/telemetry"
)

// RetryPolicy is a fixed-count, fixed-delay retry schedule.
type RetryPolicy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultRetryPolicy makes three attempts two seconds apart.
var DefaultRetryPolicy = RetryPolicy{MaxAttempts: 3, Delay: 2 * time.Second}

// Notifier receives one call per failed attempt. Attempts are numbered from 1.
type Notifier func(attempt int, err error)

// AttemptMessage formats a failed attempt for display.
func AttemptMessage(attempt int, err error) string {
	return fmt.Sprintf("Attempt %d failed: %v", attempt, err)
}

// AttemptRecorder counts model calls by outcome.
type AttemptRecorder interface {
	IncModelAttempt(outcome string)
}

// Evaluator runs a prompt against a Client under a RetryPolicy.
type Evaluator struct {
	client   Client
	policy   RetryPolicy
	recorder AttemptRecorder
	wait     func(ctx context.Context, d time.Duration) error
}

// NewEvaluator returns an Evaluator. A policy with no attempts falls back to DefaultRetryPolicy.
func NewEvaluator(client Client, policy RetryPolicy, recorder AttemptRecorder) *Evaluator {
	if policy.MaxAttempts <= 0 {
		policy = DefaultRetryPolicy
	}
	return &Evaluator{
		client:   client,
		policy:   policy,
		recorder: recorder,
		wait:     waitFor,
	}
}

// Policy returns the schedule the evaluator runs with.
func (e *Evaluator) Policy() RetryPolicy {
	return e.policy
}

// Evaluate returns the first non-empty model reply, or NoResult once every attempt
// failed or came back empty. Attempt errors go to notify and are never returned.
func (e *Evaluator) Evaluate(ctx context.Context, prompt string, notify Notifier) string {
	for attempt := 1; attempt <= e.policy.MaxAttempts; attempt++ {
		text, err := e.client.Generate(ctx, prompt)
		switch {
		case err != nil:
			e.record(metrics.AttemptFailed)
			telemetry.Warn("model_attempt_failed", map[string]any{
				"attempt": attempt,
				"error":   err,
			})
			if notify != nil {
				notify(attempt, err)
			}
		case text == NoResult:
			e.record(metrics.AttemptEmpty)
			telemetry.Warn("model_attempt_empty", map[string]any{
				"attempt": attempt,
			})
		default:
			e.record(metrics.AttemptSucceeded)
			return text
		}

		if attempt == e.policy.MaxAttempts {
			break
		}
		if err := e.wait(ctx, e.policy.Delay); err != nil {
			telemetry.Warn("model_retry_aborted", map[string]any{
				"attempt": attempt,
				"error":   err,
			})
			return NoResult
		}
	}
	return NoResult
}

func (e *Evaluator) record(outcome string) {
	if e.recorder != nil {
		e.recorder.IncModelAttempt(outcome)
	}
}

func waitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

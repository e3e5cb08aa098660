package generation

import (
	"context"
	"time"
)

// LinearBackoff is the submission policy: a short, bounded number of attempts
// waiting Step × attempt between them. Only "service busy" answers are retried.
type LinearBackoff struct {
	MaxAttempts int
	Step        time.Duration
}

// Delay is the wait after the given 1-based failed attempt.
func (p LinearBackoff) Delay(attempt int) time.Duration {
	return p.Step * time.Duration(attempt)
}

// ExponentialBackoff is the polling policy: up to MaxAttempts status checks,
// the wait starting at InitialDelay and multiplied by Factor after every
// non-terminal check. MaxDelay caps a single wait when positive.
type ExponentialBackoff struct {
	MaxAttempts  int
	InitialDelay time.Duration
	Factor       float64
	MaxDelay     time.Duration
}

// Next returns the wait that follows current.
func (p ExponentialBackoff) Next(current time.Duration) time.Duration {
	next := time.Duration(float64(current) * p.Factor)
	if p.MaxDelay > 0 && next > p.MaxDelay {
		return p.MaxDelay
	}
	return next
}

// TotalWait is the sum of the sleeps between MaxAttempts checks.
func (p ExponentialBackoff) TotalWait() time.Duration {
	var total time.Duration
	delay := p.InitialDelay
	for attempt := 1; attempt < p.MaxAttempts; attempt++ {
		total += delay
		delay = p.Next(delay)
	}
	return total
}

func DefaultSubmitPolicy() LinearBackoff {
	return LinearBackoff{MaxAttempts: 3, Step: 10 * time.Second}
}

func DefaultPollPolicy() ExponentialBackoff {
	return ExponentialBackoff{MaxAttempts: 100, InitialDelay: 5 * time.Second, Factor: 1.5, MaxDelay: time.Minute}
}

// SleepFunc waits for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

package backoff

import (
	"context"
	"errors"
	"math"
	"time"
)

var ErrExhausted = errors.New("backoff attempts exhausted")

type BackoffStrategy interface {
	GetBackoffDuration(int, time.Duration, time.Duration) time.Duration
}

type Backoff struct {
	LastDuration time.Duration
	NextDuration time.Duration
	start        time.Duration
	limit        time.Duration
	count        int
	strategy     BackoffStrategy
}

func NewBackoff(strategy BackoffStrategy, start time.Duration, limit time.Duration) *Backoff {
	backoff := Backoff{strategy: strategy, start: start, limit: limit}
	backoff.Reset()
	return &backoff
}

func (b *Backoff) Reset() {
	b.count = 0
	b.LastDuration = 0
	b.NextDuration = b.getNextDuration()
}

// Count is the number of completed waits since the last Reset
func (b *Backoff) Count() int {
	return b.count
}

func (b *Backoff) Backoff(ctx context.Context) (err error) {
	sleepCtx, cancelSleep := context.WithTimeout(ctx, b.NextDuration)
	<-sleepCtx.Done()
	cancelSleep()
	if sleepCtx.Err() == context.DeadlineExceeded && ctx.Err() == nil {
		b.count++
		b.LastDuration = b.NextDuration
		b.NextDuration = b.getNextDuration()
		return nil
	}
	return ctx.Err()
}

// Retry waits before each call of fn until fn reports done. It gives up with ErrExhausted after
// maxAttempts calls, or with the context error once ctx ends.
func (b *Backoff) Retry(ctx context.Context, maxAttempts int, fn func() bool) error {
	for i := 0; maxAttempts <= 0 || i < maxAttempts; i++ {
		if err := b.Backoff(ctx); err != nil {
			return err
		}
		if fn() {
			return nil
		}
	}
	return ErrExhausted
}

func (b *Backoff) getNextDuration() time.Duration {
	backoff := b.strategy.GetBackoffDuration(b.count, b.start, b.LastDuration)
	if b.limit > 0 && backoff > b.limit {
		backoff = b.limit
	}
	return backoff
}

type exponential struct{}

func (exponential) GetBackoffDuration(backoffCount int, start time.Duration, lastBackoff time.Duration) time.Duration {
	period := int64(math.Pow(2, float64(backoffCount)))
	return time.Duration(period) * start
}

func NewExponential(start time.Duration, limit time.Duration) *Backoff {
	return NewBackoff(exponential{}, start, limit)
}

type constant struct{}

func (constant) GetBackoffDuration(_ int, start time.Duration, _ time.Duration) time.Duration {
	return start
}

// NewConstant waits start before every attempt
func NewConstant(start time.Duration) *Backoff {
	return NewBackoff(constant{}, start, 0)
}

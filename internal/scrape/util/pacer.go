package util

import (
	"context"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"
)

// Pacer spaces out generated records the way a polite scraper spaces out
// requests: the limiter enforces the minimum gap, then a random jitter of up
// to max-min is added.
type Pacer struct {
	lim    *rate.Limiter
	jitter time.Duration
}

func NewPacer(min, max time.Duration) *Pacer {
	if min < 0 {
		min = 0
	}
	if max < min {
		max = min
	}
	lim := rate.NewLimiter(rate.Inf, 1)
	if min > 0 {
		lim = rate.NewLimiter(rate.Every(min), 1)
	}
	return &Pacer{lim: lim, jitter: max - min}
}

// PacerFromMillis is NewPacer for config values.
func PacerFromMillis(minMS, maxMS int) *Pacer {
	return NewPacer(time.Duration(minMS)*time.Millisecond, time.Duration(maxMS)*time.Millisecond)
}

// NoPacing returns a pacer that never sleeps.
func NoPacing() *Pacer { return NewPacer(0, 0) }

// Wait blocks for one record's worth of delay or until ctx is done.
// Jitter is drawn from the global source so that pacing never shifts the
// seeded record stream.
func (p *Pacer) Wait(ctx context.Context) error {
	if p == nil {
		return ctx.Err()
	}
	if err := p.lim.Wait(ctx); err != nil {
		return err
	}
	if p.jitter <= 0 {
		return ctx.Err()
	}

	t := time.NewTimer(time.Duration(rand.Int64N(int64(p.jitter) + 1)))
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

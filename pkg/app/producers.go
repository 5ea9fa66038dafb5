package app

import (
	"context"
	"math/rand/v2"
	"sync/atomic"
	"time"
)

// send delivers one event, blocking while the channel is full. It returns
// false once ctx is cancelled, which is each producer's signal to stop.
func send(ctx context.Context, ch chan<- Event, ev Event) bool {
	select {
	case ch <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// StartFrameClock emits TickFrame at the given rate until ctx is cancelled.
// fps is clamped to a floor of 15 so a bad value cannot stall animation.
func StartFrameClock(ctx context.Context, ch chan<- Event, fps int) {
	fps = max(fps, 15)
	go func() {
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				if !send(ctx, ch, TickFrame{}) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// StartRefreshClock emits TickRefresh roughly every interval, re-reading
// the interval each cycle so settings changes take effect without a
// restart. Each wait is jittered by up to ±10% so a fleet of dashboards
// does not synchronize against the forecast provider, and floored at one
// second.
func StartRefreshClock(ctx context.Context, ch chan<- Event, intervalSecs *atomic.Int64) {
	go func() {
		for {
			base := max(intervalSecs.Load(), 10)
			jitter := rand.Float64()*0.2 - 0.1
			wait := time.Duration(float64(base)*(1+jitter)*float64(time.Second))
			wait = max(wait, time.Second)

			select {
			case <-time.After(wait):
				if !send(ctx, ch, TickRefresh{}) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

// ScheduleRetry emits a single TickRefresh after delay (floored at one
// second) and exits. Used exclusively for backoff-driven retries.
func ScheduleRetry(ctx context.Context, ch chan<- Event, delay time.Duration) {
	delay = max(delay, time.Second)
	go func() {
		select {
		case <-time.After(delay):
			send(ctx, ch, TickRefresh{})
		case <-ctx.Done():
		}
	}()
}

// StartDemo plays the demo script, one timed step after another, and exits
// after the last step or on cancellation.
func StartDemo(ctx context.Context, ch chan<- Event) {
	go func() {
		for _, step := range DemoScript() {
			select {
			case <-time.After(step.Delay):
				if !send(ctx, ch, Demo{Action: step.Action}) {
					return
				}
			case <-ctx.Done():
				return
			}
		}
	}()
}

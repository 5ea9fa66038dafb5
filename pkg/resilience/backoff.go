// Package resilience implements the retry-delay and data-freshness policies
// that sit between the fetch pipeline and the application state machine.
package resilience

import "time"

// Backoff generates growing retry delays after consecutive fetch failures.
// The delay doubles on each NextDelay call, bounded by the ceiling, and
// Reset returns it to the floor after any success. Backoff has no knowledge
// of why a fetch failed; the state machine drives it purely on
// success/failure signals.
type Backoff struct {
	current time.Duration
	floor   time.Duration
	ceiling time.Duration
}

// NewBackoff returns a policy starting at floor and capped at ceiling.
func NewBackoff(floor, ceiling time.Duration) Backoff {
	return Backoff{current: floor, floor: floor, ceiling: ceiling}
}

// NextDelay returns the delay to wait before the next retry and advances
// the internal streak.
func (b *Backoff) NextDelay() time.Duration {
	delay := b.current
	b.current = min(b.current*2, b.ceiling)
	return delay
}

// Reset returns the policy to its floor delay.
func (b *Backoff) Reset() {
	b.current = b.floor
}

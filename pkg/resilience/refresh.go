package resilience

import "time"

// RefreshMetadata tracks the outcome history of forecast fetches. It is
// mutated exclusively by the application state machine on fetch start,
// success, and failure. Zero time values mean "never".
type RefreshMetadata struct {
	LastSuccess         time.Time
	LastAttempt         time.Time
	NextRetryAt         time.Time
	State               FreshnessState
	ConsecutiveFailures int
}

// NewRefreshMetadata returns metadata for a session with no fetch history.
func NewRefreshMetadata() RefreshMetadata {
	return RefreshMetadata{State: Stale}
}

// MarkSuccess records a successful fetch at now.
func (m *RefreshMetadata) MarkSuccess(now time.Time) {
	m.LastAttempt = now
	m.LastSuccess = now
	m.NextRetryAt = time.Time{}
	m.ConsecutiveFailures = 0
	m.State = Fresh
}

// MarkFailure records a failed fetch at now.
func (m *RefreshMetadata) MarkFailure(now time.Time) {
	m.LastAttempt = now
	m.NextRetryAt = time.Time{}
	m.ConsecutiveFailures++
}

// ScheduleRetryIn records when the backoff-driven retry will fire.
func (m *RefreshMetadata) ScheduleRetryIn(now time.Time, delay time.Duration) {
	m.NextRetryAt = now.Add(delay)
}

// ClearRetry forgets a scheduled retry, e.g. when a fetch starts early.
func (m *RefreshMetadata) ClearRetry() {
	m.NextRetryAt = time.Time{}
}

// Age returns how long ago the last success was, and false if there has
// never been one.
func (m *RefreshMetadata) Age(now time.Time) (time.Duration, bool) {
	if m.LastSuccess.IsZero() {
		return 0, false
	}
	return now.Sub(m.LastSuccess), true
}

// RetryIn returns the seconds until the scheduled retry, clamped at zero,
// and false when no retry is scheduled.
func (m *RefreshMetadata) RetryIn(now time.Time) (time.Duration, bool) {
	if m.NextRetryAt.IsZero() {
		return 0, false
	}
	return max(m.NextRetryAt.Sub(now), 0), true
}

package resilience

import "time"

// FreshnessState classifies how trustworthy the currently displayed forecast
// is. It is a display signal only and never triggers a fetch by itself.
type FreshnessState int

const (
	Fresh FreshnessState = iota
	Stale
	Offline
)

func (s FreshnessState) String() string {
	switch s {
	case Fresh:
		return "Fresh"
	case Offline:
		return "Offline"
	default:
		return "Stale"
	}
}

const (
	staleAge   = 10 * time.Minute
	offlineAge = 30 * time.Minute

	offlineFailures = 3
)

// EvaluateFreshness maps the last successful fetch time and the consecutive
// failure count to a FreshnessState. A zero lastSuccess means no fetch has
// ever succeeded. The function is pure; callers pass the current time.
func EvaluateFreshness(lastSuccess time.Time, consecutiveFailures int, now time.Time) FreshnessState {
	if lastSuccess.IsZero() {
		if consecutiveFailures >= offlineFailures {
			return Offline
		}
		return Stale
	}

	age := now.Sub(lastSuccess)
	switch {
	case age > offlineAge || consecutiveFailures >= offlineFailures:
		return Offline
	case age > staleAge || consecutiveFailures >= 1:
		return Stale
	default:
		return Fresh
	}
}

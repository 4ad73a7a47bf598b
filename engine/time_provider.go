package engine

import "time"

// TimeProvider abstracts the clock used for key hold expiry
// Frame deltas never come from here; Step receives them explicitly
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider reads the real system clock with its monotonic reading
type MonotonicTimeProvider struct{}

func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

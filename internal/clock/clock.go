// Package clock supplies frame timestamps in fractional seconds.
package clock

import (
	"sync"
	"time"
)

// Clock returns monotonically increasing timestamps in seconds.
type Clock interface {
	Now() float64
}

// System reads the monotonic wall clock relative to its creation time.
type System struct {
	start time.Time
}

// NewSystem creates a clock whose zero is now.
func NewSystem() *System {
	return &System{start: time.Now()}
}

// Now returns seconds elapsed since the clock was created.
func (s *System) Now() float64 {
	return time.Since(s.start).Seconds()
}

// Manual is a controllable clock for tests and replays.
type Manual struct {
	mu  sync.RWMutex
	now float64
}

// NewManual creates a manual clock starting at the given timestamp.
func NewManual(start float64) *Manual {
	return &Manual{now: start}
}

// Now returns the current manual timestamp.
func (m *Manual) Now() float64 {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Advance moves the clock forward by d seconds. Negative values are ignored.
func (m *Manual) Advance(d float64) {
	if d < 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d
}

// Set jumps the clock to t if t is not earlier than the current time.
func (m *Manual) Set(t float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t > m.now {
		m.now = t
	}
}

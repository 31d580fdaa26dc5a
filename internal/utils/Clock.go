package utils

import "time"

// Clock supplies the current time. Calendars take "today" from it.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (s SystemClock) Now() time.Time {
	return time.Now()
}

type MockClock struct {
	FixedNow time.Time
}

// NewMockClock returns a clock stopped at noon of the given local date.
func NewMockClock(year int, month time.Month, day int) *MockClock {
	return &MockClock{FixedNow: time.Date(year, month, day, 12, 0, 0, 0, time.Local)}
}

func (m *MockClock) Now() time.Time {
	return m.FixedNow
}

func (m *MockClock) SetNow(now time.Time) {
	m.FixedNow = now
}

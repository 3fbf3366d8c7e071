package clock

import "time"

type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// RealClock reports wall time in the application's zone.
type RealClock struct {
	loc *time.Location
}

func NewRealClock(loc *time.Location) Clock {
	if loc == nil {
		loc = time.Local
	}
	return &RealClock{loc: loc}
}

func (c *RealClock) Now() time.Time {
	return time.Now().In(c.loc)
}

func (c *RealClock) Location() *time.Location {
	return c.loc
}

type MockClock struct {
	currentTime time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{currentTime: t}
}

func (c *MockClock) Now() time.Time {
	return c.currentTime
}

func (c *MockClock) Location() *time.Location {
	return c.currentTime.Location()
}

func (c *MockClock) Set(t time.Time) {
	c.currentTime = t
}

func (c *MockClock) Add(d time.Duration) {
	c.currentTime = c.currentTime.Add(d)
}

package render

import "time"

// Timer measures elapsed time from a fixed origin. The origin is the
// only state carried from one frame to the next.
type Timer struct {
	start time.Time
	now   func() time.Time
}

// NewTimer starts a timer at the current time.
func NewTimer() *Timer {
	return newTimerWithClock(time.Now)
}

func newTimerWithClock(now func() time.Time) *Timer {
	return &Timer{start: now(), now: now}
}

// Elapsed returns the seconds since the timer started.
func (t *Timer) Elapsed() float64 {
	return t.now().Sub(t.start).Seconds()
}

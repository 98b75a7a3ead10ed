package util

import "time"

// TimeSynchronizer paces a frame loop to a target rate.
type TimeSynchronizer struct {
	prevTime   time.Time
	usPerFrame int64
	sleep      func(time.Duration)
	now        func() time.Time
}

func NewTimeSynchronizer(targetFPS int) *TimeSynchronizer {
	if targetFPS <= 0 {
		targetFPS = 60
	}
	return &TimeSynchronizer{
		prevTime:   time.Now(),
		usPerFrame: int64(1000000 / targetFPS),
		sleep:      time.Sleep,
		now:        time.Now,
	}
}

// MaySleep sleeps for whatever is left of the current frame, if anything.
// Frames are scheduled on a fixed grid: a late frame shortens the next sleep.
func (ts *TimeSynchronizer) MaySleep() {
	curTime := ts.now()
	if curTime.Before(ts.prevTime) {
		return
	}
	diff := ts.usPerFrame - curTime.Sub(ts.prevTime).Microseconds()
	if diff > 0 {
		ts.sleep(time.Duration(diff) * time.Microsecond)
	}
	ts.prevTime = ts.prevTime.Add(time.Duration(ts.usPerFrame) * time.Microsecond)
}

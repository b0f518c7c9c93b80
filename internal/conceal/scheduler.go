package conceal

import "time"

// RevealDelay is how long a concealment stays concealed after the cursor
// touches its edge before it reveals.
const RevealDelay = 1000 * time.Millisecond

// Timer is a handle to a scheduled callback that can be cancelled once.
type Timer interface {
	// Stop cancels the timer. It returns false if the timer already fired
	// or was already stopped. A stopped timer's callback never runs.
	Stop() bool
}

// Scheduler schedules delayed callbacks. The production implementation
// wraps time.AfterFunc; tests inject a manual scheduler so delays are
// deterministic without real time passing.
type Scheduler interface {
	// AfterFunc runs fn after d elapses and returns a cancellation handle.
	AfterFunc(d time.Duration, fn func()) Timer
}

// realScheduler is the time.AfterFunc-backed scheduler.
type realScheduler struct{}

// NewScheduler returns the wall-clock scheduler.
func NewScheduler() Scheduler {
	return realScheduler{}
}

func (realScheduler) AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

package timex

import "time"

// Clock abstracts time.Now so that expiry logic can be tested with a
// simulated clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System is the wall clock.
var System Clock = systemClock{}

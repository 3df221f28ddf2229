package rediscache

import "time"

// Clock is the adapter's time source. Only reconnect deadlines consult it.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

package clock

import "time"

// Clock abstracts wall-clock reads so day boundaries stay deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

// Fixed reports the same instant on every call. The CLI uses it for --today.
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}

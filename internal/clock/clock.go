package clock

import "time"

// Clock abstracts the current time so handlers and the season calculator can
// be tested against a fixed instant.
type Clock interface {
	Now() time.Time
	NowUnixMilli() int64
}

// SystemClock reads the real system time.
type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now()
}

func (SystemClock) NowUnixMilli() int64 {
	return time.Now().UnixMilli()
}

// FixedClock always reports the same instant.
type FixedClock struct {
	Instant time.Time
}

func (c FixedClock) Now() time.Time {
	return c.Instant
}

func (c FixedClock) NowUnixMilli() int64 {
	return c.Instant.UnixMilli()
}

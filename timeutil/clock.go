// Package timeutil supplies the time source used to stamp address book events.
package timeutil

import "time"

// Clock abstracts a time source. Implementations return UTC.
type Clock interface {
	Now() time.Time
}

// UTCClock reads the system clock.
type UTCClock struct{}

func (UTCClock) Now() time.Time { return time.Now().UTC() }

// FrozenClock returns a fixed instant until moved with Advance.
type FrozenClock struct {
	t time.Time
}

func NewFrozenClock(t time.Time) *FrozenClock { return &FrozenClock{t: t.UTC()} }

func (c *FrozenClock) Now() time.Time { return c.t }

// Advance moves the clock forward by d (backwards when d < 0).
func (c *FrozenClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

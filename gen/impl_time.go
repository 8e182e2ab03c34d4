package gen

import (
	"time"
)

// Clock yields evenly spaced instants.
type Clock struct {
	instant time.Time
	step    time.Duration
}

// Time returns a generator yielding start, start+step, start+2·step, … .
// The location of start is preserved. Negative steps walk backwards.
func Time(start time.Time, step time.Duration) *Clock {
	return &Clock{instant: start, step: step}
}

// Generate returns the current instant, then advances it by step.
// Arithmetic is exact time.Time.Add; no drift correction is applied.
func (c *Clock) Generate() time.Time {
	t := c.instant
	c.instant = c.instant.Add(c.step)

	return t
}

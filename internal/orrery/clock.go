// Package orrery holds the simulation model: the simulated clock and
// the pure date-to-pose mapping that drives the rendered scene. It has
// no rendering dependencies so the math is testable in isolation.
package orrery

import "time"

// Speed slider bounds, in user units. One unit advances the simulated
// clock by roughly 0.1 days per real second.
const (
	MinSpeed = 0
	MaxSpeed = 100

	// DaysPerSpeedUnit is the simulated-day rate of one speed unit.
	DaysPerSpeedUnit = 0.1
)

// DaysPerYear matches the orbital-angle mapping: a full Earth orbit is
// 365.25 fractional days.
const DaysPerYear = 365.25

// Clock is the single mutable piece of simulation state: the current
// simulated instant, the user speed multiplier, and the paused flag.
// It is mutated only from the UI loop.
type Clock struct {
	Current time.Time
	Speed   int
	Paused  bool
}

// NewClock returns a clock starting at the given instant.
func NewClock(start time.Time, speed int) Clock {
	return Clock{Current: start, Speed: clampSpeed(speed)}
}

// Advance moves the simulated clock forward by dt of real time at the
// current speed. Each speed unit maps one real second to 0.1 simulated
// days. Paused clocks do not move regardless of dt.
func (c *Clock) Advance(dt time.Duration) {
	if c.Paused || dt <= 0 {
		return
	}
	ms := float64(c.Speed) * DaysPerSpeedUnit * 86_400_000 * dt.Seconds()
	c.Current = c.Current.Add(time.Duration(ms * float64(time.Millisecond)))
}

// SetSpeed sets the speed multiplier, clamped to [MinSpeed, MaxSpeed].
func (c *Clock) SetSpeed(s int) {
	c.Speed = clampSpeed(s)
}

// SetDate jumps the clock to an explicit instant and pauses it, so the
// newly picked date stays on screen until the user resumes.
func (c *Clock) SetDate(t time.Time) {
	c.Current = t
	c.Paused = true
}

// DayOfYear returns the fractional number of days elapsed since
// midnight January 1 of the current simulated year. Midnight on
// January 1 is 0; noon on January 1 is 0.5.
func (c Clock) DayOfYear() float64 {
	return fractionalDayOfYear(c.Current)
}

// ScrubDayOfYear moves the clock to the given fractional day of the
// current simulated year, clamped to [0, 365], and pauses it.
func (c *Clock) ScrubDayOfYear(day float64) {
	if day < 0 {
		day = 0
	} else if day > 365 {
		day = 365
	}
	start := startOfYear(c.Current)
	c.Current = start.Add(time.Duration(day * 24 * float64(time.Hour)))
	c.Paused = true
}

func fractionalDayOfYear(t time.Time) float64 {
	return t.Sub(startOfYear(t)).Hours() / 24
}

func startOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

func clampSpeed(s int) int {
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}

package orrery

import (
	"math"
	"time"
)

// Pose is the set of derived angles the scene needs for one frame.
// It is plain data, fully determined by the simulated date; nothing
// here is cached between frames.
type Pose struct {
	// MoonOrbitAngle positions the Moon on its orbit pivot.
	MoonOrbitAngle float64
	// MoonPhaseFraction is the position in the lunar cycle in [0,1):
	// 0 = New Moon, 0.5 = Full Moon.
	MoonPhaseFraction float64
	// EarthOrbitAngle positions Earth on its orbit around the Sun.
	EarthOrbitAngle float64
	// EarthSpinAngle is Earth's day/night rotation from the time of day.
	EarthSpinAngle float64
	// PhaseLightAngle positions the light of the isolated phase view.
	PhaseLightAngle float64
}

// PoseAt maps a simulated instant to the full set of scene angles.
func PoseAt(t time.Time) Pose {
	phase := PhaseFractionAt(t)
	return Pose{
		MoonOrbitAngle:    MoonOrbitAngle(phase),
		MoonPhaseFraction: phase,
		EarthOrbitAngle:   EarthOrbitAngle(t),
		EarthSpinAngle:    EarthSpinAngle(t),
		PhaseLightAngle:   PhaseLightAngle(phase),
	}
}

// EarthOrbitAngle returns Earth's orbital angle for the date:
// (fractional day of year / 365.25) * 2π. The fractional day keeps the
// orbit animation smooth within a day instead of stepping at midnight.
func EarthOrbitAngle(t time.Time) float64 {
	return fractionalDayOfYear(t) / DaysPerYear * 2 * math.Pi
}

// EarthSpinAngle returns Earth's axial rotation for the time of day,
// one full turn per 24 hours.
func EarthSpinAngle(t time.Time) float64 {
	secs := float64(t.Hour())*3600 + float64(t.Minute())*60 +
		float64(t.Second()) + float64(t.Nanosecond())/1e9
	return secs / 86400 * 2 * math.Pi
}

// MoonOrbitAngle maps a phase fraction to the Moon's rendered orbital
// angle: π + phase·2π. The π offset keeps New Moon rendered away from
// the Sun-facing side; the rendered orbit deliberately does not match
// the true Sun-Earth-Moon geometry, which would imply an eclipse every
// month.
func MoonOrbitAngle(phase float64) float64 {
	return math.Pi + phase*2*math.Pi
}

// PhaseLightAngle maps a phase fraction to the phase-view light angle:
// π − phase·2π. New Moon puts the light directly behind the disc,
// Full Moon (0.5) directly in front of it.
func PhaseLightAngle(phase float64) float64 {
	return math.Pi - phase*2*math.Pi
}

package orrery

import (
	"math"
	"time"

	"github.com/thurmanmarka/astroglide"
)

// PhaseName is one of the eight traditional lunar phase names.
type PhaseName string

const (
	NewMoon        PhaseName = "New Moon"
	WaxingCrescent PhaseName = "Waxing Crescent"
	FirstQuarter   PhaseName = "First Quarter"
	WaxingGibbous  PhaseName = "Waxing Gibbous"
	FullMoon       PhaseName = "Full Moon"
	WaningGibbous  PhaseName = "Waning Gibbous"
	LastQuarter    PhaseName = "Last Quarter"
	WaningCrescent PhaseName = "Waning Crescent"
)

// ClassifyPhase maps a cycle fraction in [0,1) to a phase name using
// fixed, ordered bands. The band widths are uneven on purpose: the
// crescent and gibbous stretches are long because those shapes persist
// for days, while quarter, full and new get narrow windows around
// their exact instants.
func ClassifyPhase(phase float64) PhaseName {
	switch {
	case phase < 0.02:
		return NewMoon
	case phase < 0.23:
		return WaxingCrescent
	case phase < 0.27:
		return FirstQuarter
	case phase < 0.48:
		return WaxingGibbous
	case phase < 0.52:
		return FullMoon
	case phase < 0.73:
		return WaningGibbous
	case phase < 0.77:
		return LastQuarter
	case phase < 0.98:
		return WaningCrescent
	default:
		return NewMoon
	}
}

// PhaseFractionAt returns the Moon's position in the lunar cycle at t
// as a fraction in [0,1): 0 = New Moon, 0.25 = First Quarter,
// 0.5 = Full Moon, 0.75 = Last Quarter.
//
// The underlying library reports the illuminated fraction k together
// with a waxing flag; the cycle position follows from inverting
// k = (1 − cos 2πp)/2 and mirroring onto the waning half.
func PhaseFractionAt(t time.Time) float64 {
	mp, err := astroglide.MoonPhaseAt(t)
	if err != nil {
		// MoonPhaseAt is a total computation and does not fail in
		// practice; keep the pose total anyway.
		return 0
	}
	return cycleFraction(mp.Fraction, mp.Waxing)
}

// IlluminationAt returns the illuminated fraction of the Moon's disc
// at t, in [0,1].
func IlluminationAt(t time.Time) float64 {
	mp, err := astroglide.MoonPhaseAt(t)
	if err != nil {
		return 0
	}
	return mp.Fraction
}

// cycleFraction converts an illuminated fraction and waxing flag to a
// cycle position in [0,1).
func cycleFraction(illuminated float64, waxing bool) float64 {
	arg := 1 - 2*illuminated
	if arg > 1 {
		arg = 1
	} else if arg < -1 {
		arg = -1
	}
	p := math.Acos(arg) / (2 * math.Pi)
	if !waxing {
		p = 1 - p
	}
	if p >= 1 {
		p = 0
	}
	return p
}

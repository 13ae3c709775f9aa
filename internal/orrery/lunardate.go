package orrery

import (
	"fmt"
	"time"

	"github.com/6tail/lunar-go/calendar"
)

// LunarDate is a traditional Chinese lunisolar calendar date, shown in
// the info panel alongside the Gregorian date driving the simulation.
type LunarDate struct {
	Year      int
	Month     int
	Day       int
	LeapMonth bool
}

// String renders the date as e.g. "Lunar 2024-01-01" or
// "Lunar 2023-02-01 (leap month)".
func (d LunarDate) String() string {
	if d.LeapMonth {
		return fmt.Sprintf("Lunar %04d-%02d-%02d (leap month)", d.Year, d.Month, d.Day)
	}
	return fmt.Sprintf("Lunar %04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LunarDateOf converts the Gregorian calendar date of t to its lunar
// calendar date. The conversion library panics on dates it cannot
// represent; that is recovered and returned as an error so callers can
// keep their previous display unchanged.
func LunarDateOf(t time.Time) (ld LunarDate, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("lunar date for %s: %v", t.Format("2006-01-02"), r)
		}
	}()

	solar := calendar.NewSolarFromYmd(t.Year(), int(t.Month()), t.Day())
	lunar := solar.GetLunar()

	ld = LunarDate{
		Year:  lunar.GetYear(),
		Month: lunar.GetMonth(),
		Day:   lunar.GetDay(),
	}
	// The library reports leap months as negative month numbers.
	if ld.Month < 0 {
		ld.Month = -ld.Month
		ld.LeapMonth = true
	}
	return ld, nil
}

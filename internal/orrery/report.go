package orrery

import (
	"fmt"
	"io"
	"strings"
)

// WriteReport writes a plain-text phase report for the clock's current
// instant. This backs the headless -report mode.
func WriteReport(w io.Writer, c Clock) {
	t := c.Current
	pose := PoseAt(t)
	illum := IlluminationAt(t)

	fmt.Fprintf(w, "Sun-Earth-Moon @ %s\n", t.Format("2006-01-02 15:04:05 MST"))
	fmt.Fprintln(w, strings.Repeat("─", 52))

	fmt.Fprintf(w, "%-18s %s\n", "Phase", ClassifyPhase(pose.MoonPhaseFraction))
	fmt.Fprintf(w, "%-18s %.1f%%\n", "Illumination", illum*100)
	fmt.Fprintf(w, "%-18s %.4f\n", "Cycle fraction", pose.MoonPhaseFraction)

	if ld, err := LunarDateOf(t); err == nil {
		fmt.Fprintf(w, "%-18s %s\n", "Lunar calendar", ld)
	}

	fmt.Fprintf(w, "%-18s %.3f\n", "Day of year", c.DayOfYear())
	fmt.Fprintln(w, strings.Repeat("─", 52))

	fmt.Fprintf(w, "%-18s %8.4f rad\n", "Earth orbit", pose.EarthOrbitAngle)
	fmt.Fprintf(w, "%-18s %8.4f rad\n", "Earth spin", pose.EarthSpinAngle)
	fmt.Fprintf(w, "%-18s %8.4f rad\n", "Moon orbit", pose.MoonOrbitAngle)
	fmt.Fprintf(w, "%-18s %8.4f rad\n", "Phase light", pose.PhaseLightAngle)
}

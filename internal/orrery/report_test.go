package orrery

import (
	"strings"
	"testing"
	"time"
)

func TestWriteReportContents(t *testing.T) {
	c := NewClock(time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC), 10)

	var b strings.Builder
	WriteReport(&b, c)
	out := b.String()

	for _, want := range []string{
		"2024-03-20",
		"Phase",
		"Illumination",
		"Cycle fraction",
		"Day of year",
		"Earth orbit",
		"Earth spin",
		"Moon orbit",
		"Phase light",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

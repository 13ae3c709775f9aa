package ui

import (
	"math"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-orrery/internal/geom"
	"github.com/litescript/ls-orrery/internal/scene"
)

var testStart = time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)

func newTestModel() Model {
	m := New(testStart, 10)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 110, Height: 32})
	return next.(Model)
}

func keyRunes(m Model, r rune) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return next.(Model)
}

func TestSpaceTogglesPause(t *testing.T) {
	m := newTestModel()
	if m.Clock().Paused {
		t.Fatal("clock should start running")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if !m.Clock().Paused {
		t.Error("space should pause")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.Clock().Paused {
		t.Error("space should resume")
	}
}

func TestSpeedKeysClamp(t *testing.T) {
	m := newTestModel()

	m = keyRunes(m, '+')
	if m.Clock().Speed != 11 {
		t.Errorf("Speed = %d, want 11", m.Clock().Speed)
	}

	for i := 0; i < 30; i++ {
		m = keyRunes(m, '-')
	}
	if m.Clock().Speed != 0 {
		t.Errorf("Speed = %d, want 0 after repeated decrements", m.Clock().Speed)
	}

	for i := 0; i < 200; i++ {
		m = keyRunes(m, '+')
	}
	if m.Clock().Speed != 100 {
		t.Errorf("Speed = %d, want clamp at 100", m.Clock().Speed)
	}
}

func TestScrubPausesAndMoves(t *testing.T) {
	m := newTestModel()
	before := m.Clock().DayOfYear()

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)

	if !m.Clock().Paused {
		t.Error("scrubbing should pause the clock")
	}
	if got := m.Clock().DayOfYear(); math.Abs(got-(before+1)) > 1e-9 {
		t.Errorf("DayOfYear = %v, want %v", got, before+1)
	}
}

func TestFrameTickAdvancesExactly(t *testing.T) {
	m := newTestModel()

	t0 := time.Now()
	next, _ := m.Update(frameTickMsg(t0))
	m = next.(Model)
	before := m.Clock().Current

	next, _ = m.Update(frameTickMsg(t0.Add(100 * time.Millisecond)))
	m = next.(Model)

	// speed 10 ⇒ 1 simulated day per real second ⇒ 0.1 days per 100ms.
	want := 0.1 * 86_400_000
	gotMs := float64(m.Clock().Current.Sub(before)) / float64(time.Millisecond)
	if math.Abs(gotMs-want) > 1 {
		t.Errorf("frame advanced %v ms, want %v ms", gotMs, want)
	}
}

func TestFrameTickWhilePausedKeepsDate(t *testing.T) {
	m := newTestModel()
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	before := m.Clock().Current

	t0 := time.Now()
	next, _ = m.Update(frameTickMsg(t0))
	m = next.(Model)
	next, _ = m.Update(frameTickMsg(t0.Add(time.Second)))
	m = next.(Model)

	if !m.Clock().Current.Equal(before) {
		t.Errorf("paused clock moved to %v", m.Clock().Current)
	}
}

func TestDateEntryApplies(t *testing.T) {
	m := newTestModel()

	m = keyRunes(m, 'd')
	if !m.controls.DateFocused() {
		t.Fatal("d should focus the date input")
	}

	// Space while the input is focused must not pause.
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	m = next.(Model)
	if m.Clock().Paused {
		t.Error("space should be ignored while date input has focus")
	}
	// Clear the stray space before typing the date.
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	m = next.(Model)

	for _, r := range "1999-07-15" {
		m = keyRunes(m, r)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	c := m.Clock()
	if !c.Paused {
		t.Error("applying a date should pause the clock")
	}
	if c.Current.Year() != 1999 || c.Current.Month() != time.July || c.Current.Day() != 15 {
		t.Errorf("Current = %v, want 1999-07-15", c.Current)
	}
	if m.controls.DateFocused() {
		t.Error("input should blur after a valid date")
	}
}

func TestInvalidDateIgnored(t *testing.T) {
	m := newTestModel()
	before := m.Clock().Current

	m = keyRunes(m, 'd')
	for _, r := range "not-a-date" {
		m = keyRunes(m, r)
	}
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if !m.Clock().Current.Equal(before) {
		t.Error("invalid date input must not change the clock")
	}
	if m.Clock().Paused {
		t.Error("invalid date input must not pause")
	}
}

func TestEmptyDateIgnored(t *testing.T) {
	m := newTestModel()
	before := m.Clock().Current

	m = keyRunes(m, 'd')
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(Model)

	if !m.Clock().Current.Equal(before) {
		t.Error("empty date input must not change the clock")
	}
}

func TestClickSunTogglesLighting(t *testing.T) {
	m := newTestModel()
	if !m.Solar().SunLit() {
		t.Fatal("sun should start lit")
	}

	// Project the Sun's center through the same camera the view uses.
	canvasW := 110 - phasePanelWidth - 1
	canvasH := 32 - headerLines - footerLines - controlsLines
	x, y, ok := scene.DefaultCamera().Project(geom.Vec3{}, canvasW, canvasH)
	if !ok {
		t.Fatal("sun should project onto the canvas")
	}

	click := tea.MouseMsg{
		X:      x,
		Y:      y + headerLines,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	}

	next, _ := m.Update(click)
	m = next.(Model)
	if m.Solar().SunLit() {
		t.Error("click on the sun should turn it off")
	}

	next, _ = m.Update(click)
	m = next.(Model)
	if !m.Solar().SunLit() {
		t.Error("second click should restore the sun")
	}
}

func TestClickElsewhereDoesNothing(t *testing.T) {
	m := newTestModel()

	next, _ := m.Update(tea.MouseMsg{
		X: 1, Y: headerLines + 1,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	m = next.(Model)

	if !m.Solar().SunLit() {
		t.Error("click away from the sun must not toggle lighting")
	}
}

func TestInfoRefreshIsThrottled(t *testing.T) {
	m := newTestModel()
	before := m.dateLabel

	// Jump the clock a year ahead via a frame tick at high speed; the
	// date label must not change until the info tick fires.
	m.clock.SetSpeed(100)
	t0 := time.Now()
	next, _ := m.Update(frameTickMsg(t0))
	m = next.(Model)
	next, _ = m.Update(frameTickMsg(t0.Add(2 * time.Second)))
	m = next.(Model)

	if m.dateLabel != before {
		t.Error("date label updated outside the info tick")
	}

	next, _ = m.Update(infoTickMsg(time.Now()))
	m = next.(Model)
	if m.dateLabel == before {
		t.Error("info tick should refresh the date label")
	}
}

func TestViewRendersScene(t *testing.T) {
	m := newTestModel()
	view := m.View()

	if len(view) == 0 {
		t.Fatal("expected non-empty view")
	}
	if !strings.ContainsRune(view, glyphSunCore) {
		t.Error("view should contain the Sun glyph")
	}
	if !strings.Contains(view, "Moon Phase") {
		t.Error("view should contain the phase panel header")
	}
	if !strings.Contains(view, "speed") {
		t.Error("view should contain the controls strip")
	}
}

func TestViewBeforeReady(t *testing.T) {
	m := New(testStart, 10)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before sizing = %q", got)
	}
}

package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/orrery"
)

const dateLayout = "2006-01-02"

// ControlsModel renders the interactive strip below the canvas: the
// speed gauge, the day-of-year scrub gauge, and the date input. The
// root model owns the clock; this model only displays clock state and
// hosts the text input.
type ControlsModel struct {
	width int

	speedGauge progress.Model
	scrubGauge progress.Model
	dateInput  textinput.Model

	speed     int
	dayOfYear float64
	paused    bool
}

// NewControlsModel creates the controls strip.
func NewControlsModel() ControlsModel {
	speedGauge := progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage())
	speedGauge.Width = 20

	scrubGauge := progress.New(progress.WithSolidFill("39"), progress.WithoutPercentage())
	scrubGauge.Width = 20

	input := textinput.New()
	input.Placeholder = dateLayout
	input.CharLimit = len(dateLayout)
	input.Width = len(dateLayout) + 2
	input.Prompt = "date: "

	return ControlsModel{
		speedGauge: speedGauge,
		scrubGauge: scrubGauge,
		dateInput:  input,
	}
}

// SetSize updates the strip width.
func (m ControlsModel) SetSize(width int) ControlsModel {
	m.width = width
	return m
}

// SyncClock copies display state from the clock. Called every frame,
// which keeps the scrub gauge tracking the running simulation.
func (m ControlsModel) SyncClock(c orrery.Clock) ControlsModel {
	m.speed = c.Speed
	m.dayOfYear = c.DayOfYear()
	m.paused = c.Paused
	return m
}

// Update forwards messages to the date input while it is focused.
func (m ControlsModel) Update(msg tea.Msg) (ControlsModel, tea.Cmd) {
	var cmd tea.Cmd
	m.dateInput, cmd = m.dateInput.Update(msg)
	return m, cmd
}

// FocusDate focuses the date input and returns the cursor blink command.
func (m ControlsModel) FocusDate() (ControlsModel, tea.Cmd) {
	return m, m.dateInput.Focus()
}

// BlurDate removes focus from the date input.
func (m ControlsModel) BlurDate() ControlsModel {
	m.dateInput.Blur()
	return m
}

// DateFocused reports whether the date input currently has focus.
// While focused, global key bindings (including the spacebar pause
// toggle) are suspended.
func (m ControlsModel) DateFocused() bool {
	return m.dateInput.Focused()
}

// TakeDate parses and consumes the entered date. Invalid or empty
// input yields ok=false and changes nothing; valid input clears and
// blurs the field.
func (m ControlsModel) TakeDate() (ControlsModel, time.Time, bool) {
	raw := m.dateInput.Value()
	if raw == "" {
		return m, time.Time{}, false
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return m, time.Time{}, false
	}
	m.dateInput.SetValue("")
	m.dateInput.Blur()
	return m, t, true
}

// View renders the strip.
func (m ControlsModel) View() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	pausedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	runningStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("78")).Bold(true)

	state := runningStyle.Render("▶ running")
	if m.paused {
		state = pausedStyle.Render("⏸ paused")
	}

	speed := label.Render("speed ") +
		m.speedGauge.ViewAs(float64(m.speed)/float64(orrery.MaxSpeed)) +
		value.Render(fmt.Sprintf(" %3d", m.speed))

	scrub := label.Render("day ") +
		m.scrubGauge.ViewAs(m.dayOfYear/365.0) +
		value.Render(fmt.Sprintf(" %6.1f", m.dayOfYear))

	sep := label.Render("  │  ")
	return "  " + state + sep + speed + sep + scrub + sep + m.dateInput.View()
}

// Package ui provides the terminal user interface using Bubble Tea.
//
// All simulation state lives in the root model and is mutated only
// from Update: the frame tick advances the simulated clock and applies
// the derived pose to the scene, while a slower info tick refreshes
// the textual panel so label churn stays independent of frame rate.
package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/orrery"
	"github.com/litescript/ls-orrery/internal/scene"
	"github.com/litescript/ls-orrery/internal/version"
)

const (
	// frameInterval drives scene animation.
	frameInterval = 50 * time.Millisecond
	// infoInterval throttles textual panel updates.
	infoInterval = 500 * time.Millisecond

	headerLines   = 2
	footerLines   = 2
	controlsLines = 1

	phasePanelWidth = 34
)

// Msg types for Bubble Tea.
type (
	// frameTickMsg triggers one animation frame.
	frameTickMsg time.Time

	// infoTickMsg triggers a throttled info-panel refresh.
	infoTickMsg time.Time
)

// Model is the root Bubble Tea model.
type Model struct {
	clock orrery.Clock
	solar *scene.Solar
	pose  orrery.Pose

	width  int
	height int
	ready  bool

	lastFrame time.Time

	orreryView OrreryViewModel
	phaseView  PhaseViewModel
	controls   ControlsModel

	// Throttled info strings. lunarLabel keeps its previous value when
	// a lunar conversion fails.
	dateLabel  string
	phaseLabel string
	illumLabel string
	lunarLabel string
}

// New creates the root model with the clock starting at the given
// instant and speed.
func New(start time.Time, speed int) Model {
	clock := orrery.NewClock(start, speed)
	solar := scene.NewSolar()
	pose := orrery.PoseAt(clock.Current)
	solar.Apply(pose)

	m := Model{
		clock:      clock,
		solar:      solar,
		pose:       pose,
		orreryView: NewOrreryViewModel(),
		phaseView:  NewPhaseViewModel(),
		controls:   NewControlsModel(),
	}
	m.refreshInfo()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(frameTickCmd(), infoTickCmd())
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			x := msg.X
			y := msg.Y - headerLines
			if m.orreryView.HitSun(x, y, m.solar) {
				m.solar.ToggleSun()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		canvasH := msg.Height - headerLines - footerLines - controlsLines
		if canvasH < 8 {
			canvasH = 8
		}
		canvasW := msg.Width
		phaseW := 0
		if msg.Width >= 70 {
			phaseW = phasePanelWidth
			canvasW = msg.Width - phaseW - 1
		}

		m.orreryView = m.orreryView.SetSize(canvasW, canvasH)
		m.phaseView = m.phaseView.SetSize(phaseW, canvasH-7)
		m.controls = m.controls.SetSize(msg.Width)

	case frameTickMsg:
		now := time.Time(msg)
		var dt time.Duration
		if !m.lastFrame.IsZero() {
			dt = now.Sub(m.lastFrame)
		}
		m.lastFrame = now

		m.clock.Advance(dt)
		m.pose = orrery.PoseAt(m.clock.Current)
		m.solar.Apply(m.pose)
		m.controls = m.controls.SyncClock(m.clock)

		cmds = append(cmds, frameTickCmd())

	case infoTickMsg:
		m.refreshInfo()
		cmds = append(cmds, infoTickCmd())

	default:
		var cmd tea.Cmd
		m.controls, cmd = m.controls.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// While the date input has focus it captures everything except
	// enter and esc; the spacebar types a space instead of pausing.
	if m.controls.DateFocused() {
		switch msg.String() {
		case "enter":
			var picked time.Time
			var ok bool
			m.controls, picked, ok = m.controls.TakeDate()
			if ok {
				m.clock.SetDate(picked)
				m.applyClock()
			}
			return m, nil
		case "esc":
			m.controls = m.controls.BlurDate()
			return m, nil
		case "ctrl+c":
			return m, tea.Quit
		default:
			var cmd tea.Cmd
			m.controls, cmd = m.controls.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case " ":
		m.clock.Paused = !m.clock.Paused
		m.controls = m.controls.SyncClock(m.clock)

	case "+", "=":
		m.clock.SetSpeed(m.clock.Speed + 1)
		m.controls = m.controls.SyncClock(m.clock)
	case "-":
		m.clock.SetSpeed(m.clock.Speed - 1)
		m.controls = m.controls.SyncClock(m.clock)

	case "right":
		m.clock.ScrubDayOfYear(m.clock.DayOfYear() + 1)
		m.applyClock()
	case "left":
		m.clock.ScrubDayOfYear(m.clock.DayOfYear() - 1)
		m.applyClock()
	case ".":
		m.clock.ScrubDayOfYear(m.clock.DayOfYear() + 0.1)
		m.applyClock()
	case ",":
		m.clock.ScrubDayOfYear(m.clock.DayOfYear() - 0.1)
		m.applyClock()

	case "d":
		var cmd tea.Cmd
		m.controls, cmd = m.controls.FocusDate()
		return m, cmd

	default:
		var cmd tea.Cmd
		m.orreryView, cmd = m.orreryView.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyClock recomputes the pose and refreshes everything after an
// explicit date change, so jumps show up immediately instead of on the
// next tick.
func (m *Model) applyClock() {
	m.pose = orrery.PoseAt(m.clock.Current)
	m.solar.Apply(m.pose)
	m.controls = m.controls.SyncClock(m.clock)
	m.refreshInfo()
}

// refreshInfo rebuilds the textual panel strings. A failed lunar
// conversion leaves the previous lunar label in place.
func (m *Model) refreshInfo() {
	t := m.clock.Current
	m.dateLabel = t.Format("2006-01-02 15:04:05")
	m.phaseLabel = string(orrery.ClassifyPhase(m.pose.MoonPhaseFraction))
	m.illumLabel = fmt.Sprintf("%.1f%%", orrery.IlluminationAt(t)*100)
	if ld, err := orrery.LunarDateOf(t); err == nil {
		m.lunarLabel = ld.String()
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	canvas := m.orreryView.View(m.solar)

	var body string
	if m.width >= 70 {
		right := lipgloss.JoinVertical(lipgloss.Left,
			m.renderPhasePanel(),
			m.renderInfoPanel(),
		)
		body = lipgloss.JoinHorizontal(lipgloss.Top, canvas, " ", right)
	} else {
		body = canvas
	}

	return m.renderHeader() + body + "\n" + m.controls.View() + "\n" + m.renderFooter()
}

func (m Model) renderHeader() string {
	title := lipgloss.NewStyle().Foreground(lipgloss.Color("#9D4EDD")).Bold(true)
	muted := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))

	return "  " + title.Render("ls-orrery") +
		muted.Render(" · Sun-Earth-Moon · v"+version.Version) + "\n\n"
}

func (m Model) renderPhasePanel() string {
	header := lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	return header.Render("  Moon Phase") + "\n" + m.phaseView.View(m.solar)
}

func (m Model) renderInfoPanel() string {
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Width(10)
	value := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

	sunState := "on"
	if !m.solar.SunLit() {
		sunState = "off"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + label.Render("Date:") + value.Render(m.dateLabel) + "\n")
	b.WriteString("  " + label.Render("Phase:") + value.Render(m.phaseLabel) + "\n")
	b.WriteString("  " + label.Render("Illum:") + value.Render(m.illumLabel) + "\n")
	if m.lunarLabel != "" {
		b.WriteString("  " + label.Render("Lunar:") + value.Render(m.lunarLabel) + "\n")
	}
	b.WriteString("  " + label.Render("Sun:") + dim.Render(sunState))
	return b.String()
}

func (m Model) renderFooter() string {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	return "  " + dim.Render(
		"space: pause | +/-: speed | ←/→: scrub day | d: set date | " +
			"g: guides | l: labels | click sun: lights | q: quit")
}

// Clock exposes the simulated clock for tests.
func (m Model) Clock() orrery.Clock {
	return m.clock
}

// Solar exposes the scene for tests.
func (m Model) Solar() *scene.Solar {
	return m.solar
}

func frameTickCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameTickMsg(t)
	})
}

func infoTickCmd() tea.Cmd {
	return tea.Tick(infoInterval, func(t time.Time) tea.Msg {
		return infoTickMsg(t)
	})
}

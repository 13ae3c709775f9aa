package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/geom"
	"github.com/litescript/ls-orrery/internal/scene"
)

// PhaseViewModel renders the isolated phase view: the Moon's disc
// shaded by the phase light, viewed along +Z. The disc shows exactly
// what the phase-light angle encodes, independent of the orbital
// positions in the main view.
type PhaseViewModel struct {
	width  int
	height int
}

// NewPhaseViewModel creates the phase view.
func NewPhaseViewModel() PhaseViewModel {
	return PhaseViewModel{}
}

// SetSize updates the panel size.
func (m PhaseViewModel) SetSize(width, height int) PhaseViewModel {
	m.width = width
	m.height = height
	return m
}

// Shading ramp from dark limb to fully lit surface.
var shadeRamp = []rune{' ', '░', '▒', '▓', '█'}

// View renders the shaded disc.
func (m PhaseViewModel) View(s *scene.Solar) string {
	if m.width < 12 || m.height < 6 {
		return ""
	}

	// Disc half-extents in cells; the vertical radius is halved to
	// correct for cell aspect.
	hw := (m.width - 4) / 2
	hh := m.height - 3
	if hw > 2*hh {
		hw = 2 * hh
	}
	hhf := float64(hw) / 2
	hwf := float64(hw)

	lightDir := s.PhaseLight.Direction()
	intensity := s.PhaseLight.Intensity

	// Small fixed fill so the dark limb stays faintly visible.
	const ambientFloor = 0.06

	darkStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("236"))
	litStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("254"))

	var b strings.Builder
	rows := int(hhf)*2 + 1
	cols := hw*2 + 1
	for row := 0; row < rows; row++ {
		b.WriteString("  ")
		for col := 0; col < cols; col++ {
			nx := (float64(col) - hwf) / hwf
			ny := -(float64(row) - hhf) / hhf
			d2 := nx*nx + ny*ny
			if d2 > 1 {
				b.WriteRune(' ')
				continue
			}
			normal := geom.Vec3{X: nx, Y: ny, Z: math.Sqrt(1 - d2)}

			brightness := normal.Dot(lightDir) * intensity
			if brightness < 0 {
				brightness = 0
			}
			brightness += ambientFloor

			idx := int(brightness * float64(len(shadeRamp)))
			if idx >= len(shadeRamp) {
				idx = len(shadeRamp) - 1
			}
			ch := shadeRamp[idx]
			if ch == ' ' {
				// Inside the disc but unlit: draw the dark limb.
				b.WriteString(darkStyle.Render("·"))
				continue
			}
			b.WriteString(litStyle.Render(string(ch)))
		}
		b.WriteRune('\n')
	}

	return strings.TrimRight(b.String(), "\n")
}

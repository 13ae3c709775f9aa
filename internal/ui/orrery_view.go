package ui

import (
	"math"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-orrery/internal/geom"
	"github.com/litescript/ls-orrery/internal/scene"
)

// Canvas glyphs. Styling is keyed on these runes when the grid is
// rendered, so each drawable element gets a distinct rune.
const (
	glyphRing    = '·'
	glyphGuide   = '∙'
	glyphEarth   = '●'
	glyphMoon    = '•'
	glyphSunFill = '█'
	glyphSunCore = '☉'
)

// OrreryViewModel renders the Sun-Earth-Moon scene to a rune-grid
// canvas through a perspective camera.
type OrreryViewModel struct {
	width  int
	height int
	cam    scene.Camera

	showGuides bool
	showLabels bool
}

// NewOrreryViewModel creates the main view with guides and labels on.
func NewOrreryViewModel() OrreryViewModel {
	return OrreryViewModel{
		cam:        scene.DefaultCamera(),
		showGuides: true,
		showLabels: true,
	}
}

// SetSize updates the canvas size.
func (m OrreryViewModel) SetSize(width, height int) OrreryViewModel {
	m.width = width
	m.height = height
	return m
}

// Update handles view-local toggles.
func (m OrreryViewModel) Update(msg tea.Msg) (OrreryViewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "g":
			m.showGuides = !m.showGuides
		case "l":
			m.showLabels = !m.showLabels
		}
	}
	return m, nil
}

// ShowGuides reports whether guide lines are drawn.
func (m OrreryViewModel) ShowGuides() bool { return m.showGuides }

// ShowLabels reports whether body labels are drawn.
func (m OrreryViewModel) ShowLabels() bool { return m.showLabels }

// HitSun reports whether the given canvas cell lands on the rendered
// Sun disc. The projection is recomputed from the live scene, so the
// hit test always matches what the current frame drew.
func (m OrreryViewModel) HitSun(x, y int, s *scene.Solar) bool {
	sunPos := s.Sun.WorldPosition()
	sx, sy, ok := m.cam.Project(sunPos, m.width, m.height)
	if !ok {
		return false
	}
	r := m.cam.CellRadius(sunPos, scene.SunRadius)
	if r < 1 {
		r = 1
	}
	dx := float64(x - sx)
	dy := float64(y-sy) / m.cam.AspectY
	return dx*dx+dy*dy <= r*r
}

// View renders the scene canvas.
func (m OrreryViewModel) View(s *scene.Solar) string {
	if m.width < 20 || m.height < 8 {
		return "Terminal too small"
	}

	grid := newGrid(m.width, m.height)

	m.drawOrbitRing(grid, geom.Vec3{}, scene.EarthOrbitRadius)
	m.drawOrbitRing(grid, s.EarthGroup.WorldPosition(), scene.MoonOrbitRadius)

	if m.showGuides {
		for _, line := range s.GuideLines() {
			m.drawLine(grid, line)
		}
	}

	earthPos := s.EarthGroup.WorldPosition()
	moonPos := s.Moon.WorldPosition()

	var labels []bodyLabel
	if x, y, ok := m.cam.Project(moonPos, m.width, m.height); ok {
		grid.set(x, y, glyphMoon)
		labels = append(labels, bodyLabel{x: x, y: y, text: "Moon"})
	}
	if x, y, ok := m.cam.Project(earthPos, m.width, m.height); ok {
		grid.set(x, y, glyphEarth)
		labels = append(labels, bodyLabel{x: x, y: y, text: "Earth"})
	}

	// Sun last so it is never occluded.
	sunPos := s.Sun.WorldPosition()
	if x, y, ok := m.cam.Project(sunPos, m.width, m.height); ok {
		m.drawSunDisc(grid, x, y, m.cam.CellRadius(sunPos, scene.SunRadius))
		labels = append(labels, bodyLabel{x: x, y: y, text: "Sun"})
	}

	if m.showLabels {
		for _, l := range labels {
			m.drawLabel(grid, l)
		}
	}

	return m.renderGrid(grid, s)
}

// grid is a rune canvas with (0,0) at the top left.
type grid struct {
	cells [][]rune
	w, h  int
}

func newGrid(w, h int) *grid {
	cells := make([][]rune, h)
	for y := range cells {
		cells[y] = make([]rune, w)
		for x := range cells[y] {
			cells[y][x] = ' '
		}
	}
	return &grid{cells: cells, w: w, h: h}
}

func (g *grid) set(x, y int, r rune) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	g.cells[y][x] = r
}

func (g *grid) setIfEmpty(x, y int, r rune) {
	if x < 0 || x >= g.w || y < 0 || y >= g.h {
		return
	}
	if g.cells[y][x] == ' ' {
		g.cells[y][x] = r
	}
}

// drawOrbitRing projects a world-space circle in the orbital plane and
// dots it onto the canvas.
func (m OrreryViewModel) drawOrbitRing(g *grid, center geom.Vec3, radius float64) {
	steps := 240
	for i := 0; i < steps; i++ {
		theta := 2 * math.Pi * float64(i) / float64(steps)
		p := center.Add(geom.Vec3{X: radius * math.Cos(theta), Z: radius * math.Sin(theta)})
		if x, y, ok := m.cam.Project(p, m.width, m.height); ok {
			g.setIfEmpty(x, y, glyphRing)
		}
	}
}

// drawLine projects both endpoints and draws a dotted segment between
// them.
func (m OrreryViewModel) drawLine(g *grid, line scene.Line) {
	x0, y0, ok0 := m.cam.Project(line.From, m.width, m.height)
	x1, y1, ok1 := m.cam.Project(line.To, m.width, m.height)
	if !ok0 || !ok1 {
		return
	}

	steps := absInt(x1-x0)
	if dy := absInt(y1 - y0); dy > steps {
		steps = dy
	}
	if steps == 0 {
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(math.Round(float64(x1-x0)*t))
		y := y0 + int(math.Round(float64(y1-y0)*t))
		g.setIfEmpty(x, y, glyphGuide)
	}
}

// drawSunDisc fills the Sun's projected disc so it is large enough to
// click.
func (m OrreryViewModel) drawSunDisc(g *grid, cx, cy int, r float64) {
	if r < 1 {
		r = 1
	}
	ry := r * m.cam.AspectY
	for dy := -int(ry) - 1; dy <= int(ry)+1; dy++ {
		for dx := -int(r) - 1; dx <= int(r)+1; dx++ {
			fx := float64(dx)
			fy := float64(dy) / m.cam.AspectY
			if fx*fx+fy*fy <= r*r {
				g.set(cx+dx, cy+dy, glyphSunFill)
			}
		}
	}
	g.set(cx, cy, glyphSunCore)
}

type bodyLabel struct {
	x, y int
	text string
}

func (m OrreryViewModel) drawLabel(g *grid, l bodyLabel) {
	x := l.x + 2
	for i, r := range l.text {
		g.setIfEmpty(x+i, l.y, r)
	}
}

// renderGrid converts the canvas to a styled string. Styles are keyed
// by glyph; the Sun tint and body brightness follow the scene's
// lighting state.
func (m OrreryViewModel) renderGrid(g *grid, s *scene.Solar) string {
	ringStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	guideStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("249"))
	sunStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(s.SunColor)).Bold(true)

	earthStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	moonStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	if !s.SunLit() {
		earthStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("24"))
		moonStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	}

	var b strings.Builder
	for _, row := range g.cells {
		for _, ch := range row {
			switch ch {
			case ' ':
				b.WriteRune(ch)
			case glyphRing:
				b.WriteString(ringStyle.Render(string(ch)))
			case glyphGuide:
				b.WriteString(guideStyle.Render(string(ch)))
			case glyphEarth:
				b.WriteString(earthStyle.Render(string(ch)))
			case glyphMoon:
				b.WriteString(moonStyle.Render(string(ch)))
			case glyphSunFill, glyphSunCore:
				b.WriteString(sunStyle.Render(string(ch)))
			default:
				b.WriteString(labelStyle.Render(string(ch)))
			}
		}
		b.WriteRune('\n')
	}
	return strings.TrimRight(b.String(), "\n")
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package scene

import (
	"math"

	"github.com/litescript/ls-orrery/internal/geom"
	"github.com/litescript/ls-orrery/internal/orrery"
)

// Scene dimensions. These are artistic, not to scale: real proportions
// would put the Moon inside Earth's glyph and Earth off-screen.
const (
	SunRadius   = 2.2
	EarthRadius = 0.9
	MoonRadius  = 0.45

	EarthOrbitRadius = 12.0
	MoonOrbitRadius  = 3.0

	// PhaseLightRadius is the fixed distance of the phase-view light
	// from the phase-view moon's center.
	PhaseLightRadius = 8.0
)

// Fixed tilt angles, radians.
var (
	earthAxialTilt   = 23.44 * math.Pi / 180
	lunarInclination = 5.14 * math.Pi / 180
)

// Lighting defaults. The dim values are what remains when the Sun is
// clicked off: reduced, never zero.
const (
	sunlightLit = 1.8
	ambientLit  = 0.35
	sunlightDim = 0.15
	ambientDim  = 0.08
)

// Sun tints for the lit and clicked-off states.
const (
	SunColorLit = "#FDB813"
	SunColorDim = "#5C4A1E"
)

// PointLight is a positional light aimed at a target.
type PointLight struct {
	Pos       geom.Vec3
	Target    geom.Vec3
	Intensity float64
}

// Direction returns the unit vector from the target toward the light.
func (l PointLight) Direction() geom.Vec3 {
	return l.Pos.Sub(l.Target).Normalize()
}

// AmbientLight is a uniform fill light.
type AmbientLight struct {
	Intensity float64
}

// Line is a guide segment between two world-space points.
type Line struct {
	From, To geom.Vec3
}

// Solar is the full Sun-Earth-Moon scene plus the isolated phase view.
//
// Hierarchy:
//
//	root
//	├── sun
//	└── earthPivot (Rot.Y = earth orbit angle)
//	    └── earthGroup (at orbit radius)
//	        ├── earthTilt (fixed axial tilt)
//	        │   └── earth (Rot.Y = spin angle)
//	        └── moonIncl (fixed lunar inclination)
//	            └── moonPivot (Rot.Y = moon orbit angle)
//	                └── moon (at orbit radius)
//
// The phase view is a separate single-body scene: a moon sphere at its
// own origin lit by PhaseLight.
type Solar struct {
	Root       *Node
	Sun        *Node
	EarthPivot *Node
	EarthGroup *Node
	Earth      *Node
	MoonPivot  *Node
	Moon       *Node

	Sunlight PointLight
	Ambient  AmbientLight
	SunColor string

	PhaseMoon  *Node
	PhaseLight PointLight

	sunLit bool

	earthTilt *Node
	moonIncl  *Node
}

// NewSolar builds the scene in its initial (lit, zero-pose) state.
func NewSolar() *Solar {
	root := NewNode("root")

	sun := root.Add(NewNode("sun"))

	earthPivot := root.Add(NewNode("earth-pivot"))
	earthGroup := earthPivot.Add(NewNode("earth-group"))
	earthGroup.Pos = geom.Vec3{X: EarthOrbitRadius}

	earthTilt := earthGroup.Add(NewNode("earth-tilt"))
	earthTilt.Rot = geom.Vec3{Z: earthAxialTilt}
	earth := earthTilt.Add(NewNode("earth"))

	moonIncl := earthGroup.Add(NewNode("moon-inclination"))
	moonIncl.Rot = geom.Vec3{Z: lunarInclination}
	moonPivot := moonIncl.Add(NewNode("moon-pivot"))
	moon := moonPivot.Add(NewNode("moon"))
	moon.Pos = geom.Vec3{X: MoonOrbitRadius}

	s := &Solar{
		Root:       root,
		Sun:        sun,
		EarthPivot: earthPivot,
		EarthGroup: earthGroup,
		Earth:      earth,
		MoonPivot:  moonPivot,
		Moon:       moon,

		Sunlight: PointLight{Intensity: sunlightLit},
		Ambient:  AmbientLight{Intensity: ambientLit},
		SunColor: SunColorLit,

		PhaseMoon:  NewNode("phase-moon"),
		PhaseLight: PointLight{Intensity: 1.0},

		sunLit:    true,
		earthTilt: earthTilt,
		moonIncl:  moonIncl,
	}
	return s
}

// Apply writes a pose into the scene transforms. This is the only
// place animated rotations change; the fixed tilt groups are never
// touched after construction.
func (s *Solar) Apply(p orrery.Pose) {
	s.EarthPivot.Rot.Y = p.EarthOrbitAngle
	s.Earth.Rot.Y = p.EarthSpinAngle
	s.MoonPivot.Rot.Y = p.MoonOrbitAngle

	// The phase light sits at a fixed radius in the plane perpendicular
	// to the phase view's viewing axis (+Z toward the viewer), always
	// aimed at the moon's center.
	s.PhaseLight.Pos = geom.Vec3{
		X: PhaseLightRadius * math.Sin(p.PhaseLightAngle),
		Z: PhaseLightRadius * math.Cos(p.PhaseLightAngle),
	}
	s.PhaseLight.Target = s.PhaseMoon.WorldPosition()
}

// GuideLines returns the Sun-Earth and Earth-Moon segments, built from
// the current world positions of the three bodies.
func (s *Solar) GuideLines() [2]Line {
	sunPos := s.Sun.WorldPosition()
	earthPos := s.EarthGroup.WorldPosition()
	moonPos := s.Moon.WorldPosition()
	return [2]Line{
		{From: sunPos, To: earthPos},
		{From: earthPos, To: moonPos},
	}
}

// SunLit reports whether the Sun is in its lit state.
func (s *Solar) SunLit() bool {
	return s.sunLit
}

// SetSunLit toggles the purely visual Sun state. Off dims both lights
// and recolors the Sun; on restores the exact original values. The
// pose-driven transforms are unaffected.
func (s *Solar) SetSunLit(lit bool) {
	s.sunLit = lit
	if lit {
		s.Sunlight.Intensity = sunlightLit
		s.Ambient.Intensity = ambientLit
		s.SunColor = SunColorLit
	} else {
		s.Sunlight.Intensity = sunlightDim
		s.Ambient.Intensity = ambientDim
		s.SunColor = SunColorDim
	}
}

// ToggleSun flips the Sun state and returns the new value.
func (s *Solar) ToggleSun() bool {
	s.SetSunLit(!s.sunLit)
	return s.sunLit
}

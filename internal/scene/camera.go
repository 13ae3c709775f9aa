package scene

import "github.com/litescript/ls-orrery/internal/geom"

// Camera is a simple perspective camera for projecting world-space
// points onto a character canvas. The camera orbits the world origin:
// Yaw spins the scene around Y, Tilt pitches it toward the viewer, and
// the result is projected with a perspective divide at Distance.
type Camera struct {
	Yaw      float64 // rotation around Y before projection, radians
	Tilt     float64 // rotation around X before projection, radians
	Distance float64 // viewer distance from the world origin
	FOV      float64 // projection factor: screen cells per unit at the origin plane

	// AspectY compresses the vertical axis to compensate for terminal
	// cells being roughly twice as tall as they are wide.
	AspectY float64
}

// DefaultCamera looks down at the orbital plane from a raised vantage
// point, close enough that perspective is visible on the orbits.
func DefaultCamera() Camera {
	return Camera{
		Yaw:      0,
		Tilt:     -1.1,
		Distance: 40,
		FOV:      80,
		AspectY:  0.5,
	}
}

// Project maps a world-space point to canvas cell coordinates. ok is
// false when the point is behind the viewer.
func (c Camera) Project(v geom.Vec3, width, height int) (x, y int, ok bool) {
	p := v.RotateY(c.Yaw).RotateX(c.Tilt)

	depth := c.Distance + p.Z
	if depth <= 1e-6 {
		return 0, 0, false
	}
	factor := c.FOV / depth

	x = width/2 + int(p.X*factor+signedHalf(p.X*factor))
	y = height/2 - int(p.Y*factor*c.AspectY+signedHalf(p.Y*factor*c.AspectY))
	return x, y, true
}

// CellRadius returns the on-screen radius in cells of a sphere of the
// given world radius at the given world position.
func (c Camera) CellRadius(center geom.Vec3, radius float64) float64 {
	p := center.RotateY(c.Yaw).RotateX(c.Tilt)
	depth := c.Distance + p.Z
	if depth <= 1e-6 {
		return 0
	}
	return radius * c.FOV / depth
}

// signedHalf rounds toward the nearest cell instead of truncating.
func signedHalf(v float64) float64 {
	if v < 0 {
		return -0.5
	}
	return 0.5
}

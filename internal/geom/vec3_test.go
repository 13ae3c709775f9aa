package geom

import (
	"math"
	"testing"
)

const eps = 1e-9

func vecClose(a, b Vec3) bool {
	return math.Abs(a.X-b.X) < eps &&
		math.Abs(a.Y-b.Y) < eps &&
		math.Abs(a.Z-b.Z) < eps
}

func TestRotateYQuarterTurn(t *testing.T) {
	// A quarter turn around Y carries +X onto -Z.
	v := Vec3{X: 1}.RotateY(math.Pi / 2)
	if !vecClose(v, Vec3{Z: -1}) {
		t.Errorf("RotateY(π/2) of +X = %+v, want {0 0 -1}", v)
	}
}

func TestRotateXQuarterTurn(t *testing.T) {
	v := Vec3{Y: 1}.RotateX(math.Pi / 2)
	if !vecClose(v, Vec3{Z: 1}) {
		t.Errorf("RotateX(π/2) of +Y = %+v, want {0 0 1}", v)
	}
}

func TestRotateZQuarterTurn(t *testing.T) {
	v := Vec3{X: 1}.RotateZ(math.Pi / 2)
	if !vecClose(v, Vec3{Y: 1}) {
		t.Errorf("RotateZ(π/2) of +X = %+v, want {0 1 0}", v)
	}
}

func TestRotationPreservesLength(t *testing.T) {
	v := Vec3{X: 3, Y: -2, Z: 7}
	for _, angle := range []float64{0, 0.3, 1.7, -2.4, math.Pi} {
		for name, got := range map[string]Vec3{
			"X": v.RotateX(angle),
			"Y": v.RotateY(angle),
			"Z": v.RotateZ(angle),
		} {
			if math.Abs(got.Length()-v.Length()) > eps {
				t.Errorf("Rotate%s(%v) changed length: %v -> %v", name, angle, v.Length(), got.Length())
			}
		}
	}
}

func TestNormalize(t *testing.T) {
	v := Vec3{X: 0, Y: 3, Z: 4}.Normalize()
	if math.Abs(v.Length()-1) > eps {
		t.Errorf("normalized length = %v, want 1", v.Length())
	}
	if !vecClose(v, Vec3{Y: 0.6, Z: 0.8}) {
		t.Errorf("Normalize = %+v, want {0 0.6 0.8}", v)
	}

	zero := Vec3{}.Normalize()
	if !vecClose(zero, Vec3{}) {
		t.Errorf("Normalize of zero vector = %+v, want zero", zero)
	}
}

func TestAddSubScaleDot(t *testing.T) {
	a := Vec3{X: 1, Y: 2, Z: 3}
	b := Vec3{X: -1, Y: 0.5, Z: 2}

	if got := a.Add(b); !vecClose(got, Vec3{X: 0, Y: 2.5, Z: 5}) {
		t.Errorf("Add = %+v", got)
	}
	if got := a.Sub(b); !vecClose(got, Vec3{X: 2, Y: 1.5, Z: 1}) {
		t.Errorf("Sub = %+v", got)
	}
	if got := a.Scale(2); !vecClose(got, Vec3{X: 2, Y: 4, Z: 6}) {
		t.Errorf("Scale = %+v", got)
	}
	if got := a.Dot(b); math.Abs(got-6) > eps {
		t.Errorf("Dot = %v, want 6", got)
	}
}

package geom3d

import (
	"math"
	"testing"
)

func TestNewDirection(t *testing.T) {
	d, err := NewDirection(2, 3, 6)
	if err != nil {
		t.Fatalf("NewDirection: %v", err)
	}
	if l := d.ToVector().Length(); math.Abs(l-1) > tol {
		t.Errorf("not unit length: %v", l)
	}

	if _, err := NewDirection(0, 0, 0); err != ErrZeroLength {
		t.Errorf("zero input: got err %v, want ErrZeroLength", err)
	}
}

func TestDirectionPerpendicular(t *testing.T) {
	dirs := []Direction{
		PositiveX, PositiveY, PositiveZ,
		NegativeX, NegativeY, NegativeZ,
		mustDirection(t, 1, 1, 1),
		mustDirection(t, -0.1, 0.9, 0.2),
		mustDirection(t, 5, -3, 0.01),
	}
	for _, d := range dirs {
		p := d.Perpendicular()
		if math.Abs(p.Dot(d)) > 1e-12 {
			t.Errorf("Perpendicular(%v) not orthogonal: dot = %v", d, p.Dot(d))
		}
		if l := p.ToVector().Length(); math.Abs(l-1) > 1e-12 {
			t.Errorf("Perpendicular(%v) not unit: length = %v", d, l)
		}
		// Deterministic: the same input always gives the same output.
		if again := d.Perpendicular(); again != p {
			t.Errorf("Perpendicular(%v) not deterministic", d)
		}
	}
}

func TestDirectionAngleFrom(t *testing.T) {
	if got := PositiveX.AngleFrom(PositiveY); math.Abs(got-math.Pi/2) > tol {
		t.Errorf("x to y: got %v, want pi/2", got)
	}
	if got := PositiveX.AngleFrom(NegativeX); math.Abs(got-math.Pi) > tol {
		t.Errorf("x to -x: got %v, want pi", got)
	}
	if got := PositiveZ.AngleFrom(PositiveZ); got != 0 {
		t.Errorf("z to z: got %v, want 0", got)
	}
}

func TestDirectionRotateAround(t *testing.T) {
	got := PositiveX.RotateAround(ZAxis, math.Pi/2)
	if !got.EqualWithin(PositiveY, 1e-12) {
		t.Errorf("got %v, want +Y", got)
	}
	// Unit length is preserved through rotation about a skew axis.
	axis := AxisThrough(Origin, mustDirection(t, 1, 1, 0))
	r := mustDirection(t, 0, 0, 1).RotateAround(axis, 0.77)
	if l := r.ToVector().Length(); math.Abs(l-1) > 1e-12 {
		t.Errorf("rotated direction not unit: %v", l)
	}
}

func TestDirectionMirrorAcross(t *testing.T) {
	d := mustDirection(t, 1, 2, 2)
	got := d.MirrorAcross(XYPlane)
	want := Direction{d.X, d.Y, -d.Z}
	if !got.EqualWithin(want, tol) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestDirectionReverseAndCross(t *testing.T) {
	if got := PositiveZ.Reverse(); got != NegativeZ {
		t.Errorf("Reverse: got %v", got)
	}
	if got := PositiveX.Cross(PositiveY); got != (Vector{0, 0, 1}) {
		t.Errorf("Cross: got %v", got)
	}
}

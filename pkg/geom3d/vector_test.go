package geom3d

import (
	"math"
	"testing"
)

const tol = 1e-12

func TestVectorArithmetic(t *testing.T) {
	a := Vector{1, 2, 3}
	b := Vector{4, -5, 6}

	if got := a.Add(b); got != (Vector{5, -3, 9}) {
		t.Errorf("Add: got %v", got)
	}
	if got := a.Sub(b); got != (Vector{-3, 7, -3}) {
		t.Errorf("Sub: got %v", got)
	}
	if got := a.Scale(2); got != (Vector{2, 4, 6}) {
		t.Errorf("Scale: got %v", got)
	}
	if got := a.Negate(); got != (Vector{-1, -2, -3}) {
		t.Errorf("Negate: got %v", got)
	}
	if got := a.Dot(b); got != 12 {
		t.Errorf("Dot: got %v, want 12", got)
	}
}

func TestVectorCross(t *testing.T) {
	x := Vector{1, 0, 0}
	y := Vector{0, 1, 0}
	if got := x.Cross(y); got != (Vector{0, 0, 1}) {
		t.Errorf("x cross y: got %v, want z", got)
	}
	if got := y.Cross(x); got != (Vector{0, 0, -1}) {
		t.Errorf("y cross x: got %v, want -z", got)
	}

	a := Vector{2, 3, 4}
	b := Vector{5, 6, 7}
	c := a.Cross(b)
	// The cross product is perpendicular to both operands.
	if math.Abs(c.Dot(a)) > tol || math.Abs(c.Dot(b)) > tol {
		t.Errorf("cross product not perpendicular: %v", c)
	}
}

func TestVectorLength(t *testing.T) {
	v := Vector{2, 3, 6}
	if got := v.Length(); got != 7 {
		t.Errorf("Length: got %v, want 7", got)
	}
	if got := v.SquaredLength(); got != 49 {
		t.Errorf("SquaredLength: got %v, want 49", got)
	}
}

func TestVectorRotateAround(t *testing.T) {
	tests := []struct {
		name  string
		v     Vector
		axis  Axis
		angle float64
		want  Vector
	}{
		{"x around z", Vector{1, 0, 0}, ZAxis, math.Pi / 2, Vector{0, 1, 0}},
		{"y around x", Vector{0, 1, 0}, XAxis, math.Pi / 2, Vector{0, 0, 1}},
		{"parallel to axis unchanged", Vector{0, 0, 5}, ZAxis, 1.3, Vector{0, 0, 5}},
		{"half turn", Vector{1, 2, 0}, ZAxis, math.Pi, Vector{-1, -2, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.RotateAround(tt.axis, tt.angle)
			if !got.EqualWithin(tt.want, 1e-9) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}

	// Rotation preserves length for arbitrary axes.
	axis := AxisThrough(Point{1, 1, 1}, mustDirection(t, 1, 2, 3))
	v := Vector{4, -5, 6}
	r := v.RotateAround(axis, 2.2)
	if math.Abs(r.Length()-v.Length()) > 1e-9 {
		t.Errorf("rotation changed length: %v vs %v", r.Length(), v.Length())
	}
}

func TestVectorMirrorAcross(t *testing.T) {
	v := Vector{1, 2, 3}
	got := v.MirrorAcross(XYPlane)
	if !got.EqualWithin(Vector{1, 2, -3}, tol) {
		t.Errorf("MirrorAcross XY: got %v, want {1 2 -3}", got)
	}
	// Mirroring twice restores the original.
	twice := got.MirrorAcross(XYPlane)
	if !twice.EqualWithin(v, tol) {
		t.Errorf("double mirror: got %v", twice)
	}
}

func TestVectorDirection(t *testing.T) {
	d, err := Vector{0, 3, 4}.Direction()
	if err != nil {
		t.Fatalf("Direction: %v", err)
	}
	if !d.EqualWithin(Direction{0, 0.6, 0.8}, tol) {
		t.Errorf("got %v", d)
	}

	if _, err := (Vector{}).Direction(); err != ErrZeroLength {
		t.Errorf("zero vector: got err %v, want ErrZeroLength", err)
	}
}

func TestVectorProjection(t *testing.T) {
	v := Vector{3, 4, 5}
	if got := v.ComponentIn(PositiveZ); got != 5 {
		t.Errorf("ComponentIn: got %v, want 5", got)
	}
	if got := v.ProjectionIn(PositiveX); got != (Vector{3, 0, 0}) {
		t.Errorf("ProjectionIn: got %v", got)
	}
}

func mustDirection(t *testing.T, x, y, z float64) Direction {
	t.Helper()
	d, err := NewDirection(x, y, z)
	if err != nil {
		t.Fatalf("NewDirection(%v, %v, %v): %v", x, y, z, err)
	}
	return d
}

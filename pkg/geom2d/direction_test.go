package geom2d

import (
	"math"
	"testing"
)

func TestNewDirection(t *testing.T) {
	d, err := NewDirection(3, 4)
	if err != nil {
		t.Fatalf("NewDirection: %v", err)
	}
	if !d.EqualWithin(Direction{0.6, 0.8}, tol) {
		t.Errorf("got %v, want {0.6 0.8}", d)
	}

	if _, err := NewDirection(0, 0); err != ErrZeroLength {
		t.Errorf("zero input: got err %v, want ErrZeroLength", err)
	}
}

func TestDirectionFromAngle(t *testing.T) {
	tests := []struct {
		name  string
		angle float64
		want  Direction
	}{
		{"zero", 0, PositiveX},
		{"quarter turn", math.Pi / 2, PositiveY},
		{"half turn", math.Pi, NegativeX},
		{"45 degrees", math.Pi / 4, Direction{math.Sqrt2 / 2, math.Sqrt2 / 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DirectionFromAngle(tt.angle)
			if !got.EqualWithin(tt.want, 1e-12) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectionAngleRoundTrip(t *testing.T) {
	for _, angle := range []float64{0, 0.3, math.Pi / 2, 3, -2.5} {
		d := DirectionFromAngle(angle)
		back := d.Angle()
		if math.Abs(math.Mod(back-angle+3*math.Pi, 2*math.Pi)-math.Pi) > 1e-12 {
			t.Errorf("angle %v round-tripped to %v", angle, back)
		}
	}
}

func TestDirectionPerpendicular(t *testing.T) {
	d, _ := NewDirection(1, 2)
	p := d.Perpendicular()
	if math.Abs(p.Dot(d)) > tol {
		t.Errorf("not perpendicular: dot = %v", p.Dot(d))
	}
	// Quarter turn counterclockwise: x direction becomes y direction.
	if got := PositiveX.Perpendicular(); got != PositiveY {
		t.Errorf("PositiveX perpendicular: got %v", got)
	}
	// Perpendicular preserves unit length exactly.
	if l := p.ToVector().Length(); math.Abs(l-1) > tol {
		t.Errorf("perpendicular not unit: length %v", l)
	}
}

func TestDirectionReverseAndScale(t *testing.T) {
	d := Direction{0.6, 0.8}
	if got := d.Reverse(); got != (Direction{-0.6, -0.8}) {
		t.Errorf("Reverse: got %v", got)
	}
	if got := d.Scale(5); !got.EqualWithin(Vector{3, 4}, tol) {
		t.Errorf("Scale: got %v", got)
	}
}

func TestDirectionRotate(t *testing.T) {
	got := PositiveX.Rotate(math.Pi / 2)
	if !got.EqualWithin(PositiveY, 1e-12) {
		t.Errorf("Rotate quarter turn: got %v", got)
	}
	// Unit length is preserved through rotation.
	d, _ := NewDirection(2, -5)
	r := d.Rotate(1.234)
	if l := r.ToVector().Length(); math.Abs(l-1) > 1e-12 {
		t.Errorf("rotated direction not unit: length %v", l)
	}
}

func TestDirectionMirrorAcross(t *testing.T) {
	d, _ := NewDirection(1, 1)
	got := d.MirrorAcross(XAxis)
	want, _ := NewDirection(1, -1)
	if !got.EqualWithin(want, 1e-12) {
		t.Errorf("MirrorAcross: got %v, want %v", got, want)
	}
}

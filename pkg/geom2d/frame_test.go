package geom2d

import (
	"math"
	"testing"
)

// testFrames covers the identity, a pure translation, a pure rotation and a
// combined rigid motion.
func testFrames() []Frame {
	rotated := FrameWithXDirection(Origin, DirectionFromAngle(math.Pi/6))
	combined := FrameWithXDirection(Point{-2, 5}, DirectionFromAngle(2.1))
	return []Frame{
		GlobalFrame,
		FrameAt(Point{3, -4}),
		rotated,
		combined,
	}
}

func TestFrameConstructors(t *testing.T) {
	f := FrameWithXDirection(Point{1, 2}, DirectionFromAngle(0.7))
	if !f.IsOrthonormal(1e-12) {
		t.Error("FrameWithXDirection must produce an orthonormal basis")
	}

	if _, err := NewFrame(Origin, PositiveX, PositiveY); err != nil {
		t.Errorf("NewFrame with orthonormal basis: %v", err)
	}
	if _, err := NewFrame(Origin, PositiveX, PositiveX); err != ErrNotOrthonormal {
		t.Errorf("parallel basis: got err %v, want ErrNotOrthonormal", err)
	}
	if _, err := NewFrame(Origin, UnsafeDirection(2, 0), PositiveY); err != ErrNotOrthonormal {
		t.Errorf("non-unit basis: got err %v, want ErrNotOrthonormal", err)
	}
}

func TestPointFrameRoundTrip(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {-3, 7}, {0.25, -12.5}}
	for _, f := range testFrames() {
		for _, p := range points {
			if got := p.RelativeTo(f).PlaceIn(f); !got.EqualWithin(p, 1e-9) {
				t.Errorf("placeIn(relativeTo(%v)) = %v in frame %v", p, got, f)
			}
			if got := p.PlaceIn(f).RelativeTo(f); !got.EqualWithin(p, 1e-9) {
				t.Errorf("relativeTo(placeIn(%v)) = %v in frame %v", p, got, f)
			}
		}
	}
}

func TestVectorFrameRoundTrip(t *testing.T) {
	vectors := []Vector{{0, 0}, {1, 0}, {-3, 7}, {0.25, -12.5}}
	for _, f := range testFrames() {
		for _, v := range vectors {
			if got := v.RelativeTo(f).PlaceIn(f); !got.EqualWithin(v, 1e-9) {
				t.Errorf("placeIn(relativeTo(%v)) = %v in frame %v", v, got, f)
			}
			if got := v.PlaceIn(f).RelativeTo(f); !got.EqualWithin(v, 1e-9) {
				t.Errorf("relativeTo(placeIn(%v)) = %v in frame %v", v, got, f)
			}
		}
	}
}

func TestDirectionFrameRoundTrip(t *testing.T) {
	dirs := []Direction{PositiveX, NegativeY, DirectionFromAngle(1.1)}
	for _, f := range testFrames() {
		for _, d := range dirs {
			got := d.RelativeTo(f).PlaceIn(f)
			if !got.EqualWithin(d, 1e-9) {
				t.Errorf("round trip of %v in frame %v gave %v", d, f, got)
			}
			// Conversion through an orthonormal frame preserves unit length.
			local := d.RelativeTo(f)
			if l := local.ToVector().Length(); math.Abs(l-1) > 1e-9 {
				t.Errorf("relativeTo broke unit length: %v", l)
			}
		}
	}
}

func TestFrameRelativeToPointSemantics(t *testing.T) {
	// A frame origin expressed relative to the frame itself is the origin.
	f := FrameWithXDirection(Point{2, 3}, DirectionFromAngle(math.Pi/2))
	if got := f.Origin.RelativeTo(f); !got.EqualWithin(Origin, tol) {
		t.Errorf("frame origin relative to itself: got %v", got)
	}

	// With the X direction along global +Y, the global point one unit
	// along the frame's x axis is (2, 4).
	if got := (Point{1, 0}).PlaceIn(f); !got.EqualWithin(Point{2, 4}, tol) {
		t.Errorf("PlaceIn: got %v, want {2 4}", got)
	}
}

func TestFrameFrameRoundTrip(t *testing.T) {
	for _, ref := range testFrames() {
		for _, f := range testFrames() {
			back := f.RelativeTo(ref).PlaceIn(ref)
			if !back.Origin.EqualWithin(f.Origin, 1e-9) ||
				!back.XDirection.EqualWithin(f.XDirection, 1e-9) ||
				!back.YDirection.EqualWithin(f.YDirection, 1e-9) {
				t.Errorf("frame round trip through %v changed %v to %v", ref, f, back)
			}
		}
	}
}

func TestFrameRelativeToPreservesOrthonormality(t *testing.T) {
	for _, ref := range testFrames() {
		for _, f := range testFrames() {
			local := f.RelativeTo(ref)
			if !local.IsOrthonormal(1e-9) {
				t.Errorf("relativeTo(%v, %v) basis not orthonormal", ref, f)
			}
		}
	}
}

func TestFrameRigidMotions(t *testing.T) {
	f := FrameWithXDirection(Point{1, 1}, DirectionFromAngle(0.5))

	moved := f.TranslateBy(Vector{2, -1})
	if moved.Origin != (Point{3, 0}) || moved.XDirection != f.XDirection {
		t.Errorf("TranslateBy: got %v", moved)
	}

	spun := f.RotateAround(Origin, 1.25)
	if !spun.IsOrthonormal(1e-12) {
		t.Error("RotateAround broke orthonormality")
	}
}

func TestFrameAxes(t *testing.T) {
	f := FrameWithXDirection(Point{5, 5}, DirectionFromAngle(math.Pi/2))
	if got := f.XAxis(); got.Origin != f.Origin || got.Direction != f.XDirection {
		t.Errorf("XAxis: got %v", got)
	}
	if got := f.YAxis(); got.Origin != f.Origin || got.Direction != f.YDirection {
		t.Errorf("YAxis: got %v", got)
	}
}

func TestAxisFrameRoundTrip(t *testing.T) {
	diag, _ := NewDirection(1, 2)
	axis := Axis{Origin: Point{3, -1}, Direction: diag}
	for _, f := range testFrames() {
		back := axis.RelativeTo(f).PlaceIn(f)
		if !back.Origin.EqualWithin(axis.Origin, 1e-9) ||
			!back.Direction.EqualWithin(axis.Direction, 1e-9) {
			t.Errorf("axis round trip through %v gave %v", f, back)
		}
	}
}

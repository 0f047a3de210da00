package geom3d

import (
	"math"
	"testing"
)

// testFrames covers the identity, a translation, single-axis rotations and
// a skew rigid motion.
func testFrames(t *testing.T) []Frame {
	t.Helper()
	aroundZ := GlobalFrame.RotateAround(ZAxis, math.Pi/6)
	aroundX := GlobalFrame.RotateAround(XAxis, 1.1)
	skewAxis := AxisThrough(Point{1, -2, 3}, mustDirection(t, 1, 2, -1))
	skew := FrameAt(Point{4, 5, 6}).RotateAround(skewAxis, 2.4)
	return []Frame{
		GlobalFrame,
		FrameAt(Point{3, -4, 5}),
		aroundZ,
		aroundX,
		skew,
	}
}

func TestFrameConstructors(t *testing.T) {
	if _, err := NewFrame(Origin, PositiveX, PositiveY, PositiveZ); err != nil {
		t.Errorf("NewFrame with orthonormal basis: %v", err)
	}
	if _, err := NewFrame(Origin, PositiveX, PositiveX, PositiveZ); err != ErrNotOrthonormal {
		t.Errorf("parallel basis: got err %v, want ErrNotOrthonormal", err)
	}
	if _, err := NewFrame(Origin, UnsafeDirection(0.5, 0, 0), PositiveY, PositiveZ); err != ErrNotOrthonormal {
		t.Errorf("non-unit basis: got err %v, want ErrNotOrthonormal", err)
	}
}

func TestFrameWithZDirection(t *testing.T) {
	dirs := []Direction{
		PositiveZ, NegativeZ, PositiveX,
		mustDirection(t, 1, 1, 1),
		mustDirection(t, -2, 0.5, 3),
	}
	for _, z := range dirs {
		f := FrameWithZDirection(Point{1, 2, 3}, z)
		if !f.IsOrthonormal(1e-12) {
			t.Errorf("FrameWithZDirection(%v) basis not orthonormal", z)
		}
		if !f.IsRightHanded() {
			t.Errorf("FrameWithZDirection(%v) not right handed", z)
		}
		if !f.ZDirection.EqualWithin(z, tol) {
			t.Errorf("z direction changed: got %v, want %v", f.ZDirection, z)
		}
	}
}

func TestPointFrameRoundTrip(t *testing.T) {
	points := []Point{{0, 0, 0}, {1, 0, 0}, {-3, 7, 2}, {0.25, -12.5, 100}}
	for _, f := range testFrames(t) {
		for _, p := range points {
			if got := p.RelativeTo(f).PlaceIn(f); !got.EqualWithin(p, 1e-9) {
				t.Errorf("placeIn(relativeTo(%v)) = %v in frame %+v", p, got, f)
			}
			if got := p.PlaceIn(f).RelativeTo(f); !got.EqualWithin(p, 1e-9) {
				t.Errorf("relativeTo(placeIn(%v)) = %v in frame %+v", p, got, f)
			}
		}
	}
}

func TestVectorFrameRoundTrip(t *testing.T) {
	vectors := []Vector{{0, 0, 0}, {1, 0, 0}, {-3, 7, 2}, {0.25, -12.5, 100}}
	for _, f := range testFrames(t) {
		for _, v := range vectors {
			if got := v.RelativeTo(f).PlaceIn(f); !got.EqualWithin(v, 1e-9) {
				t.Errorf("placeIn(relativeTo(%v)) = %v in frame %+v", v, got, f)
			}
			if got := v.PlaceIn(f).RelativeTo(f); !got.EqualWithin(v, 1e-9) {
				t.Errorf("relativeTo(placeIn(%v)) = %v in frame %+v", v, got, f)
			}
		}
	}
}

func TestDirectionFrameRoundTrip(t *testing.T) {
	dirs := []Direction{PositiveX, NegativeZ, mustDirection(t, 1, -1, 2)}
	for _, f := range testFrames(t) {
		for _, d := range dirs {
			got := d.RelativeTo(f).PlaceIn(f)
			if !got.EqualWithin(d, 1e-9) {
				t.Errorf("round trip of %v gave %v", d, got)
			}
			local := d.RelativeTo(f)
			if l := local.ToVector().Length(); math.Abs(l-1) > 1e-9 {
				t.Errorf("relativeTo broke unit length: %v", l)
			}
		}
	}
}

func TestFrameFrameRoundTrip(t *testing.T) {
	frames := testFrames(t)
	for _, ref := range frames {
		for _, f := range frames {
			back := f.RelativeTo(ref).PlaceIn(ref)
			if !back.Origin.EqualWithin(f.Origin, 1e-9) ||
				!back.XDirection.EqualWithin(f.XDirection, 1e-9) ||
				!back.YDirection.EqualWithin(f.YDirection, 1e-9) ||
				!back.ZDirection.EqualWithin(f.ZDirection, 1e-9) {
				t.Errorf("frame round trip changed %+v to %+v", f, back)
			}
		}
	}
}

func TestFrameRelativeToPreservesOrthonormality(t *testing.T) {
	frames := testFrames(t)
	for _, ref := range frames {
		for _, f := range frames {
			if !f.RelativeTo(ref).IsOrthonormal(1e-9) {
				t.Errorf("relativeTo broke orthonormality for %+v in %+v", f, ref)
			}
		}
	}
}

func TestFrameRigidMotions(t *testing.T) {
	f := FrameWithZDirection(Point{1, 1, 1}, mustDirection(t, 1, 0, 1))

	moved := f.TranslateBy(Vector{2, -1, 0})
	if moved.Origin != (Point{3, 0, 1}) || moved.XDirection != f.XDirection {
		t.Errorf("TranslateBy: got %+v", moved)
	}

	spun := f.RotateAround(YAxis, 0.6)
	if !spun.IsOrthonormal(1e-12) {
		t.Error("RotateAround broke orthonormality")
	}
	if !spun.IsRightHanded() {
		t.Error("RotateAround broke handedness")
	}
}

func TestFrameAxesAndPlane(t *testing.T) {
	f := FrameAt(Point{5, 5, 5})
	if got := f.ZAxis(); got.Origin != f.Origin || got.Direction != f.ZDirection {
		t.Errorf("ZAxis: got %+v", got)
	}
	plane := f.XYPlane()
	if plane.Origin != f.Origin || plane.XDirection != f.XDirection || plane.YDirection != f.YDirection {
		t.Errorf("XYPlane: got %+v", plane)
	}
}

func TestAxisFrameRoundTrip(t *testing.T) {
	axis := AxisThrough(Point{3, -1, 2}, mustDirection(t, 1, 2, 2))
	for _, f := range testFrames(t) {
		back := axis.RelativeTo(f).PlaceIn(f)
		if !back.Origin.EqualWithin(axis.Origin, 1e-9) ||
			!back.Direction.EqualWithin(axis.Direction, 1e-9) {
			t.Errorf("axis round trip gave %+v", back)
		}
	}
}

package sdfxconv

import (
	"math"
	"testing"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/davcamer/elm-geometry/pkg/geom2d"
	"github.com/davcamer/elm-geometry/pkg/geom3d"
)

const tol = 1e-9

func TestVectorConversions(t *testing.T) {
	v := geom3d.Vector{X: 1, Y: -2, Z: 3}
	if got := FromVec3(ToVec3(v)); got != v {
		t.Errorf("3D vector round trip = %+v, want %+v", got, v)
	}

	p := geom3d.Point{X: 4, Y: 5, Z: -6}
	if got := PointFromVec3(PointToVec3(p)); got != p {
		t.Errorf("3D point round trip = %+v, want %+v", got, p)
	}

	w := geom2d.Vector{X: 7, Y: 8}
	if got := FromVec2(ToVec2(w)); got != w {
		t.Errorf("2D vector round trip = %+v, want %+v", got, w)
	}

	q := geom2d.Point{X: -1, Y: 0.5}
	if got := PointFromVec2(PointToVec2(q)); got != q {
		t.Errorf("2D point round trip = %+v, want %+v", got, q)
	}

	if got := ToVec3(v); got != (v3.Vec{X: 1, Y: -2, Z: 3}) {
		t.Errorf("ToVec3 = %+v", got)
	}
}

func TestBoxSolidBounds(t *testing.T) {
	box := geom3d.FromExtrema(1, 3, -2, 2, 0, 5)

	s, err := BoxSolid(box)
	if err != nil {
		t.Fatalf("BoxSolid: %v", err)
	}

	got := SolidBounds(s)
	want := box
	if !boxEqualWithin(got, want, tol) {
		t.Errorf("solid bounds = %+v, want %+v", got, want)
	}
}

func TestPlaceSolidIdentity(t *testing.T) {
	box := geom3d.FromExtrema(0, 1, 0, 2, 0, 3)
	s, err := BoxSolid(box)
	if err != nil {
		t.Fatalf("BoxSolid: %v", err)
	}

	placed, err := PlaceSolid(s, geom3d.GlobalFrame)
	if err != nil {
		t.Fatalf("PlaceSolid: %v", err)
	}

	if got := SolidBounds(placed); !boxEqualWithin(got, box, tol) {
		t.Errorf("identity placement bounds = %+v, want %+v", got, box)
	}
}

func TestPlaceSolidTranslation(t *testing.T) {
	box := geom3d.FromExtrema(0, 1, 0, 1, 0, 1)
	s, err := BoxSolid(box)
	if err != nil {
		t.Fatalf("BoxSolid: %v", err)
	}

	frame := geom3d.FrameAt(geom3d.Point{X: 10, Y: -5, Z: 2})
	placed, err := PlaceSolid(s, frame)
	if err != nil {
		t.Fatalf("PlaceSolid: %v", err)
	}

	want := geom3d.FromExtrema(10, 11, -5, -4, 2, 3)
	if got := SolidBounds(placed); !boxEqualWithin(got, want, tol) {
		t.Errorf("translated placement bounds = %+v, want %+v", got, want)
	}
}

func TestPlaceSolidRejectsBadFrames(t *testing.T) {
	box := geom3d.FromExtrema(0, 1, 0, 1, 0, 1)
	s, err := BoxSolid(box)
	if err != nil {
		t.Fatalf("BoxSolid: %v", err)
	}

	skew := geom3d.UnsafeFrame(
		geom3d.Origin,
		geom3d.PositiveX,
		geom3d.PositiveX,
		geom3d.PositiveZ,
	)
	if _, err := PlaceSolid(s, skew); err != ErrNotRigid {
		t.Errorf("skew frame error = %v, want ErrNotRigid", err)
	}

	// Mirrored basis: x cross y points along -z.
	left := geom3d.UnsafeFrame(
		geom3d.Origin,
		geom3d.PositiveY,
		geom3d.PositiveX,
		geom3d.PositiveZ,
	)
	if _, err := PlaceSolid(s, left); err != ErrLeftHanded {
		t.Errorf("left-handed frame error = %v, want ErrLeftHanded", err)
	}
}

// TestEulerDecomposition verifies that the extracted angles rebuild the
// original basis when applied as extrinsic X, then Y, then Z rotations
// about the global axes.
func TestEulerDecomposition(t *testing.T) {
	frames := []geom3d.Frame{
		geom3d.GlobalFrame,
		geom3d.FrameWithZDirection(geom3d.Origin, geom3d.PositiveX),
		geom3d.FrameWithZDirection(geom3d.Origin, mustDirection(t, 1, 1, 1)),
		geom3d.FrameWithZDirection(geom3d.Origin, mustDirection(t, -2, 0.5, 3)),
		geom3d.GlobalFrame.RotateAround(geom3d.ZAxis, math.Pi/3),
		geom3d.GlobalFrame.RotateAround(geom3d.XAxis, -1.2).
			RotateAround(geom3d.YAxis, 0.7),
		// Gimbal lock: local x points straight up.
		geom3d.UnsafeFrame(
			geom3d.Origin,
			geom3d.PositiveZ,
			geom3d.PositiveY,
			geom3d.NegativeX,
		),
	}

	for i, frame := range frames {
		rx, ry, rz := eulerZYX(frame)

		rebuilt := geom3d.GlobalFrame.
			RotateAround(geom3d.XAxis, rx).
			RotateAround(geom3d.YAxis, ry).
			RotateAround(geom3d.ZAxis, rz)

		if !rebuilt.XDirection.EqualWithin(frame.XDirection, tol) ||
			!rebuilt.YDirection.EqualWithin(frame.YDirection, tol) ||
			!rebuilt.ZDirection.EqualWithin(frame.ZDirection, tol) {
			t.Errorf("frame %d: angles (%g, %g, %g) rebuild %+v, want %+v",
				i, rx, ry, rz, rebuilt, frame)
		}
	}
}

func boxEqualWithin(a, b geom3d.BoundingBox, tolerance float64) bool {
	return math.Abs(a.MinX-b.MinX) <= tolerance &&
		math.Abs(a.MaxX-b.MaxX) <= tolerance &&
		math.Abs(a.MinY-b.MinY) <= tolerance &&
		math.Abs(a.MaxY-b.MaxY) <= tolerance &&
		math.Abs(a.MinZ-b.MinZ) <= tolerance &&
		math.Abs(a.MaxZ-b.MaxZ) <= tolerance
}

func mustDirection(t *testing.T, x, y, z float64) geom3d.Direction {
	t.Helper()
	d, err := geom3d.NewDirection(x, y, z)
	if err != nil {
		t.Fatalf("NewDirection(%g, %g, %g): %v", x, y, z, err)
	}
	return d
}

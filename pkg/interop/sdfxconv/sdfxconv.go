// Package sdfxconv bridges geometry values to the github.com/deadsy/sdfx
// CAD library. It converts points and vectors to sdfx vector types, turns
// bounding boxes into box solids, and places solids with frames.
package sdfxconv

import (
	"errors"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/davcamer/elm-geometry/pkg/geom2d"
	"github.com/davcamer/elm-geometry/pkg/geom3d"
)

// rigidTolerance bounds how far a frame basis may deviate from orthonormal
// before placement is refused.
const rigidTolerance = 1e-9

var (
	// ErrNotRigid reports a frame whose basis is not orthonormal.
	ErrNotRigid = errors.New("sdfxconv: frame basis is not orthonormal")

	// ErrLeftHanded reports a left-handed frame. sdfx transforms are
	// rigid motions and cannot express a reflection.
	ErrLeftHanded = errors.New("sdfxconv: frame basis is left-handed")
)

// ---------------------------------------------------------------------------
// Vector conversions
// ---------------------------------------------------------------------------

// ToVec3 converts a 3D vector to an sdfx vector.
func ToVec3(v geom3d.Vector) v3.Vec {
	return v3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// PointToVec3 converts a 3D point to an sdfx vector.
func PointToVec3(p geom3d.Point) v3.Vec {
	return v3.Vec{X: p.X, Y: p.Y, Z: p.Z}
}

// FromVec3 converts an sdfx vector to a 3D vector.
func FromVec3(v v3.Vec) geom3d.Vector {
	return geom3d.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// PointFromVec3 converts an sdfx vector to a 3D point.
func PointFromVec3(v v3.Vec) geom3d.Point {
	return geom3d.Point{X: v.X, Y: v.Y, Z: v.Z}
}

// ToVec2 converts a 2D vector to an sdfx vector.
func ToVec2(v geom2d.Vector) v2.Vec {
	return v2.Vec{X: v.X, Y: v.Y}
}

// PointToVec2 converts a 2D point to an sdfx vector.
func PointToVec2(p geom2d.Point) v2.Vec {
	return v2.Vec{X: p.X, Y: p.Y}
}

// FromVec2 converts an sdfx vector to a 2D vector.
func FromVec2(v v2.Vec) geom2d.Vector {
	return geom2d.Vector{X: v.X, Y: v.Y}
}

// PointFromVec2 converts an sdfx vector to a 2D point.
func PointFromVec2(v v2.Vec) geom2d.Point {
	return geom2d.Point{X: v.X, Y: v.Y}
}

// ---------------------------------------------------------------------------
// Solids
// ---------------------------------------------------------------------------

// BoxSolid creates a box solid occupying the given bounding box.
// sdf.Box3D centers the box at the origin, so the solid is translated to
// the box centroid.
func BoxSolid(box geom3d.BoundingBox) (sdf.SDF3, error) {
	dx, dy, dz := box.Dimensions()
	s, err := sdf.Box3D(v3.Vec{X: dx, Y: dy, Z: dz}, 0)
	if err != nil {
		return nil, err
	}
	m := sdf.Translate3d(PointToVec3(box.Centroid()))
	return sdf.Transform3D(s, m), nil
}

// SolidBounds returns the axis-aligned bounding box of a solid.
func SolidBounds(s sdf.SDF3) geom3d.BoundingBox {
	bb := s.BoundingBox()
	return geom3d.FromExtrema(bb.Min.X, bb.Max.X, bb.Min.Y, bb.Max.Y, bb.Min.Z, bb.Max.Z)
}

// PlaceSolid transforms a solid modeled in frame-local coordinates into
// global coordinates. The frame must be orthonormal and right-handed; a
// left-handed basis would require a reflection, which sdfx transforms
// cannot represent.
func PlaceSolid(s sdf.SDF3, frame geom3d.Frame) (sdf.SDF3, error) {
	if !frame.IsOrthonormal(rigidTolerance) {
		return nil, ErrNotRigid
	}
	if !frame.IsRightHanded() {
		return nil, ErrLeftHanded
	}

	rx, ry, rz := eulerZYX(frame)
	rot := sdf.RotateZ(rz).Mul(sdf.RotateY(ry)).Mul(sdf.RotateX(rx))
	m := sdf.Translate3d(PointToVec3(frame.Origin)).Mul(rot)
	return sdf.Transform3D(s, m), nil
}

// eulerZYX decomposes an orthonormal right-handed basis into extrinsic
// X, Y, Z rotation angles such that Rz(rz)*Ry(ry)*Rx(rx) reproduces the
// basis. The rotation matrix columns are the frame's basis directions.
func eulerZYX(frame geom3d.Frame) (rx, ry, rz float64) {
	x := frame.XDirection
	y := frame.YDirection
	z := frame.ZDirection

	sy := -x.Z
	if sy > 1 {
		sy = 1
	} else if sy < -1 {
		sy = -1
	}
	ry = math.Asin(sy)

	if math.Abs(math.Cos(ry)) > rigidTolerance {
		rx = math.Atan2(y.Z, z.Z)
		rz = math.Atan2(x.Y, x.X)
		return rx, ry, rz
	}

	// Gimbal lock: the X and Z rotations act about the same axis, so fold
	// everything into the X rotation.
	if ry > 0 {
		rx = math.Atan2(y.X, y.Y)
	} else {
		rx = math.Atan2(-y.X, y.Y)
	}
	return rx, ry, 0
}

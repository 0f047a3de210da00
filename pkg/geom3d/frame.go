package geom3d

import (
	"errors"
	"math"
)

// ErrNotOrthonormal is returned by NewFrame when the supplied basis
// directions are not unit length or not mutually perpendicular.
var ErrNotOrthonormal = errors.New("geom3d: frame basis is not orthonormal")

// orthonormalTolerance bounds the acceptable deviation of basis dot
// products from their ideal values in validating constructors.
const orthonormalTolerance = 1e-9

// Frame is a local 3D coordinate system: an origin point plus three
// mutually perpendicular unit basis directions.
//
// Frames are plain data; the unchecked constructors below never validate
// the basis. Operating with a non-orthonormal frame produces geometrically
// meaningless results rather than an error.
type Frame struct {
	Origin     Point
	XDirection Direction
	YDirection Direction
	ZDirection Direction
}

// GlobalFrame is the frame at the origin with axis-aligned basis
// directions. Converting relative to it is the identity.
var GlobalFrame = Frame{
	Origin:     Origin,
	XDirection: PositiveX,
	YDirection: PositiveY,
	ZDirection: PositiveZ,
}

// FrameAt returns the axis-aligned frame with the given origin.
func FrameAt(origin Point) Frame {
	return Frame{
		Origin:     origin,
		XDirection: PositiveX,
		YDirection: PositiveY,
		ZDirection: PositiveZ,
	}
}

// FrameWithZDirection returns a right-handed frame with the given origin
// and Z direction. The X direction is an arbitrary but deterministic
// perpendicular to Z, and Y completes the right-handed basis, so the
// result is orthonormal by construction.
func FrameWithZDirection(origin Point, zDirection Direction) Frame {
	x := zDirection.Perpendicular()
	y := zDirection.Cross(x)
	return Frame{
		Origin:     origin,
		XDirection: x,
		YDirection: Direction{y.X, y.Y, y.Z},
		ZDirection: zDirection,
	}
}

// UnsafeFrame assembles a frame from raw parts without validating the
// basis. The caller must guarantee all three directions are unit length
// and mutually perpendicular.
func UnsafeFrame(origin Point, xDirection, yDirection, zDirection Direction) Frame {
	return Frame{
		Origin:     origin,
		XDirection: xDirection,
		YDirection: yDirection,
		ZDirection: zDirection,
	}
}

// NewFrame assembles a frame and validates that the basis is orthonormal,
// failing with ErrNotOrthonormal otherwise.
func NewFrame(origin Point, xDirection, yDirection, zDirection Direction) (Frame, error) {
	f := UnsafeFrame(origin, xDirection, yDirection, zDirection)
	if !f.IsOrthonormal(orthonormalTolerance) {
		return Frame{}, ErrNotOrthonormal
	}
	return f, nil
}

// IsOrthonormal reports whether all three basis directions are unit length
// and mutually perpendicular, within the given tolerance on dot products.
func (f Frame) IsOrthonormal(tolerance float64) bool {
	x := f.XDirection.ToVector()
	y := f.YDirection.ToVector()
	z := f.ZDirection.ToVector()
	return math.Abs(x.Dot(x)-1) <= tolerance &&
		math.Abs(y.Dot(y)-1) <= tolerance &&
		math.Abs(z.Dot(z)-1) <= tolerance &&
		math.Abs(x.Dot(y)) <= tolerance &&
		math.Abs(y.Dot(z)) <= tolerance &&
		math.Abs(x.Dot(z)) <= tolerance
}

// IsRightHanded reports whether the basis follows the right-hand rule,
// x cross y pointing along z.
func (f Frame) IsRightHanded() bool {
	return f.XDirection.Cross(f.YDirection).Dot(f.ZDirection.ToVector()) > 0
}

// XAxis returns the axis through the frame origin along its X direction.
func (f Frame) XAxis() Axis {
	return Axis{Origin: f.Origin, Direction: f.XDirection}
}

// YAxis returns the axis through the frame origin along its Y direction.
func (f Frame) YAxis() Axis {
	return Axis{Origin: f.Origin, Direction: f.YDirection}
}

// ZAxis returns the axis through the frame origin along its Z direction.
func (f Frame) ZAxis() Axis {
	return Axis{Origin: f.Origin, Direction: f.ZDirection}
}

// XYPlane returns the planar frame spanned by the frame's X and Y
// directions at its origin.
func (f Frame) XYPlane() PlanarFrame {
	return PlanarFrame{Origin: f.Origin, XDirection: f.XDirection, YDirection: f.YDirection}
}

// TranslateBy returns the frame displaced by the given vector, keeping its
// basis.
func (f Frame) TranslateBy(v Vector) Frame {
	return Frame{
		Origin:     f.Origin.TranslateBy(v),
		XDirection: f.XDirection,
		YDirection: f.YDirection,
		ZDirection: f.ZDirection,
	}
}

// RotateAround returns the frame rotated by the given angle around the
// given axis. Rotation is an isometry, so an orthonormal basis stays
// orthonormal.
func (f Frame) RotateAround(axis Axis, angle float64) Frame {
	return Frame{
		Origin:     f.Origin.RotateAround(axis, angle),
		XDirection: f.XDirection.RotateAround(axis, angle),
		YDirection: f.YDirection.RotateAround(axis, angle),
		ZDirection: f.ZDirection.RotateAround(axis, angle),
	}
}

// RelativeTo re-expresses a frame given in global coordinates relative to
// another frame: the origin converts as a point, the basis directions as
// directions. When the reference frame is orthonormal the conversion is an
// isometry and the result's basis remains orthonormal.
func (f Frame) RelativeTo(reference Frame) Frame {
	return Frame{
		Origin:     f.Origin.RelativeTo(reference),
		XDirection: f.XDirection.RelativeTo(reference),
		YDirection: f.YDirection.RelativeTo(reference),
		ZDirection: f.ZDirection.RelativeTo(reference),
	}
}

// PlaceIn re-expresses a frame defined relative to the reference frame in
// global coordinates.
func (f Frame) PlaceIn(reference Frame) Frame {
	return Frame{
		Origin:     f.Origin.PlaceIn(reference),
		XDirection: f.XDirection.PlaceIn(reference),
		YDirection: f.YDirection.PlaceIn(reference),
		ZDirection: f.ZDirection.PlaceIn(reference),
	}
}

package geom2d

import (
	"errors"
	"math"
)

// ErrNotOrthonormal is returned by NewFrame when the supplied basis
// directions are not unit length or not mutually perpendicular.
var ErrNotOrthonormal = errors.New("geom2d: frame basis is not orthonormal")

// orthonormalTolerance bounds the acceptable deviation of basis dot
// products from their ideal values in validating constructors.
const orthonormalTolerance = 1e-9

// Frame is a local coordinate system: an origin point plus two mutually
// perpendicular unit basis directions.
//
// Frames are plain data; the unchecked constructors below never validate
// the basis. Operating with a non-orthonormal frame produces geometrically
// meaningless results rather than an error.
type Frame struct {
	Origin     Point
	XDirection Direction
	YDirection Direction
}

// GlobalFrame is the frame at the origin with axis-aligned basis
// directions. Converting relative to it is the identity.
var GlobalFrame = Frame{Origin: Origin, XDirection: PositiveX, YDirection: PositiveY}

// FrameAt returns the axis-aligned frame with the given origin.
func FrameAt(origin Point) Frame {
	return Frame{Origin: origin, XDirection: PositiveX, YDirection: PositiveY}
}

// FrameWithXDirection returns the right-handed frame with the given origin
// and X direction; the Y direction is the X direction rotated a quarter
// turn counterclockwise, so the basis is orthonormal by construction.
func FrameWithXDirection(origin Point, xDirection Direction) Frame {
	return Frame{
		Origin:     origin,
		XDirection: xDirection,
		YDirection: xDirection.Perpendicular(),
	}
}

// UnsafeFrame assembles a frame from raw parts without validating the
// basis. The caller must guarantee both directions are unit length and
// mutually perpendicular.
func UnsafeFrame(origin Point, xDirection, yDirection Direction) Frame {
	return Frame{Origin: origin, XDirection: xDirection, YDirection: yDirection}
}

// NewFrame assembles a frame and validates that the basis is orthonormal,
// failing with ErrNotOrthonormal otherwise.
func NewFrame(origin Point, xDirection, yDirection Direction) (Frame, error) {
	f := Frame{Origin: origin, XDirection: xDirection, YDirection: yDirection}
	if !f.IsOrthonormal(orthonormalTolerance) {
		return Frame{}, ErrNotOrthonormal
	}
	return f, nil
}

// IsOrthonormal reports whether both basis directions are unit length and
// mutually perpendicular, within the given tolerance on dot products.
func (f Frame) IsOrthonormal(tolerance float64) bool {
	x := f.XDirection.ToVector()
	y := f.YDirection.ToVector()
	return math.Abs(x.Dot(x)-1) <= tolerance &&
		math.Abs(y.Dot(y)-1) <= tolerance &&
		math.Abs(x.Dot(y)) <= tolerance
}

// XAxis returns the axis through the frame origin along its X direction.
func (f Frame) XAxis() Axis {
	return Axis{Origin: f.Origin, Direction: f.XDirection}
}

// YAxis returns the axis through the frame origin along its Y direction.
func (f Frame) YAxis() Axis {
	return Axis{Origin: f.Origin, Direction: f.YDirection}
}

// TranslateBy returns the frame displaced by the given vector, keeping its
// basis.
func (f Frame) TranslateBy(v Vector) Frame {
	return Frame{
		Origin:     f.Origin.TranslateBy(v),
		XDirection: f.XDirection,
		YDirection: f.YDirection,
	}
}

// RotateAround returns the frame rotated counterclockwise around the given
// center point by the given angle. Rotation is an isometry, so an
// orthonormal basis stays orthonormal.
func (f Frame) RotateAround(center Point, angle float64) Frame {
	return Frame{
		Origin:     f.Origin.RotateAround(center, angle),
		XDirection: f.XDirection.Rotate(angle),
		YDirection: f.YDirection.Rotate(angle),
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
	}
}

// PlaceIn re-expresses a frame defined relative to the reference frame in
// global coordinates.
func (f Frame) PlaceIn(reference Frame) Frame {
	return Frame{
		Origin:     f.Origin.PlaceIn(reference),
		XDirection: f.XDirection.PlaceIn(reference),
		YDirection: f.YDirection.PlaceIn(reference),
	}
}

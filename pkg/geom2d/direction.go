package geom2d

import (
	"errors"
	"math"
)

// ErrZeroLength is returned when a direction is requested for a zero-length
// vector, which has no defined direction.
var ErrZeroLength = errors.New("geom2d: zero-length vector has no direction")

// Direction is a unit-length 2D vector representing orientation only.
//
// Every Direction observed by this package is expected to have Euclidean
// norm 1. Values produced by NewDirection, DirectionFromAngle and the
// methods below maintain that invariant; UnsafeDirection trusts the caller.
type Direction struct {
	X, Y float64
}

// Cardinal directions.
var (
	PositiveX = Direction{1, 0}
	PositiveY = Direction{0, 1}
	NegativeX = Direction{-1, 0}
	NegativeY = Direction{0, -1}
)

// NewDirection normalizes the given components into a unit direction.
// It fails with ErrZeroLength when both components are zero.
func NewDirection(x, y float64) (Direction, error) {
	return Vector{x, y}.Direction()
}

// UnsafeDirection assembles a Direction from raw components without
// normalizing or checking them. The caller must guarantee unit length;
// downstream results are geometrically meaningless otherwise.
func UnsafeDirection(x, y float64) Direction {
	return Direction{x, y}
}

// DirectionFromAngle returns the unit direction at the given angle,
// measured counterclockwise from the positive X axis.
func DirectionFromAngle(angle float64) Direction {
	return Direction{math.Cos(angle), math.Sin(angle)}
}

// Angle returns the direction's angle in radians, counterclockwise from the
// positive X axis, in (-pi, pi].
func (d Direction) Angle() float64 {
	return math.Atan2(d.Y, d.X)
}

// ToVector returns the direction as a unit vector.
func (d Direction) ToVector() Vector {
	return Vector{d.X, d.Y}
}

// Scale returns a vector of the given length along the direction.
func (d Direction) Scale(length float64) Vector {
	return Vector{length * d.X, length * d.Y}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{-d.X, -d.Y}
}

// Perpendicular returns the direction rotated a quarter turn
// counterclockwise.
func (d Direction) Perpendicular() Direction {
	return Direction{-d.Y, d.X}
}

// Rotate returns the direction rotated counterclockwise by the given angle.
func (d Direction) Rotate(angle float64) Direction {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Direction{c*d.X - s*d.Y, s*d.X + c*d.Y}
}

// Dot returns the cosine of the angle between two unit directions.
func (d Direction) Dot(other Direction) float64 {
	return d.X*other.X + d.Y*other.Y
}

// MirrorAcross returns the direction mirrored across the given axis.
func (d Direction) MirrorAcross(axis Axis) Direction {
	v := d.ToVector().MirrorAcross(axis)
	return Direction{v.X, v.Y}
}

// RelativeTo re-expresses a direction given in global coordinates in the
// given frame's basis. The result is still unit length when the frame's
// basis is orthonormal.
func (d Direction) RelativeTo(frame Frame) Direction {
	v := d.ToVector().RelativeTo(frame)
	return Direction{v.X, v.Y}
}

// PlaceIn re-expresses a frame-relative direction in global coordinates.
func (d Direction) PlaceIn(frame Frame) Direction {
	v := d.ToVector().PlaceIn(frame)
	return Direction{v.X, v.Y}
}

// EqualWithin reports whether two directions differ by at most the given
// tolerance, compared as unit vectors. A negative tolerance never matches.
func (d Direction) EqualWithin(other Direction, tolerance float64) bool {
	return d.ToVector().EqualWithin(other.ToVector(), tolerance)
}

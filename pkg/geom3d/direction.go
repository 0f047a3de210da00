package geom3d

import (
	"errors"
	"math"
)

// ErrZeroLength is returned when a direction is requested for a zero-length
// vector, which has no defined direction.
var ErrZeroLength = errors.New("geom3d: zero-length vector has no direction")

// Direction is a unit-length 3D vector representing orientation only.
//
// Every Direction observed by this package is expected to have Euclidean
// norm 1. Values produced by NewDirection and the methods below maintain
// that invariant; UnsafeDirection trusts the caller.
type Direction struct {
	X, Y, Z float64
}

// Cardinal directions.
var (
	PositiveX = Direction{1, 0, 0}
	PositiveY = Direction{0, 1, 0}
	PositiveZ = Direction{0, 0, 1}
	NegativeX = Direction{-1, 0, 0}
	NegativeY = Direction{0, -1, 0}
	NegativeZ = Direction{0, 0, -1}
)

// NewDirection normalizes the given components into a unit direction.
// It fails with ErrZeroLength when all components are zero.
func NewDirection(x, y, z float64) (Direction, error) {
	return Vector{x, y, z}.Direction()
}

// UnsafeDirection assembles a Direction from raw components without
// normalizing or checking them. The caller must guarantee unit length;
// downstream results are geometrically meaningless otherwise.
func UnsafeDirection(x, y, z float64) Direction {
	return Direction{x, y, z}
}

// ToVector returns the direction as a unit vector.
func (d Direction) ToVector() Vector {
	return Vector{d.X, d.Y, d.Z}
}

// Scale returns a vector of the given length along the direction.
func (d Direction) Scale(length float64) Vector {
	return Vector{length * d.X, length * d.Y, length * d.Z}
}

// Reverse returns the opposite direction.
func (d Direction) Reverse() Direction {
	return Direction{-d.X, -d.Y, -d.Z}
}

// Dot returns the cosine of the angle between two unit directions.
func (d Direction) Dot(other Direction) float64 {
	return d.X*other.X + d.Y*other.Y + d.Z*other.Z
}

// Cross returns the cross product of two directions as a vector. It is unit
// length only when the directions are perpendicular.
func (d Direction) Cross(other Direction) Vector {
	return d.ToVector().Cross(other.ToVector())
}

// AngleFrom returns the angle between two directions, in [0, pi].
func (d Direction) AngleFrom(other Direction) float64 {
	cross := d.Cross(other).Length()
	return math.Atan2(cross, d.Dot(other))
}

// Perpendicular returns an arbitrary direction perpendicular to d. The
// choice is deterministic: d is crossed with the coordinate axis it is
// least aligned with, which keeps the cross product well away from zero.
func (d Direction) Perpendicular() Direction {
	ax := math.Abs(d.X)
	ay := math.Abs(d.Y)
	az := math.Abs(d.Z)
	var axis Vector
	switch {
	case ax <= ay && ax <= az:
		axis = Vector{1, 0, 0}
	case ay <= az:
		axis = Vector{0, 1, 0}
	default:
		axis = Vector{0, 0, 1}
	}
	// Never zero: d is at least 54.7 degrees away from its least-aligned
	// coordinate axis.
	perp, _ := d.ToVector().Cross(axis).Direction()
	return perp
}

// RotateAround returns the direction rotated by the given angle around the
// given axis, following the right-hand rule.
func (d Direction) RotateAround(axis Axis, angle float64) Direction {
	v := d.ToVector().RotateAround(axis, angle)
	return Direction{v.X, v.Y, v.Z}
}

// MirrorAcross returns the direction mirrored across the given plane.
func (d Direction) MirrorAcross(plane PlanarFrame) Direction {
	v := d.ToVector().MirrorAcross(plane)
	return Direction{v.X, v.Y, v.Z}
}

// RelativeTo re-expresses a direction given in global coordinates in the
// given frame's basis. The result is still unit length when the frame's
// basis is orthonormal.
func (d Direction) RelativeTo(frame Frame) Direction {
	v := d.ToVector().RelativeTo(frame)
	return Direction{v.X, v.Y, v.Z}
}

// PlaceIn re-expresses a frame-relative direction in global coordinates.
func (d Direction) PlaceIn(frame Frame) Direction {
	v := d.ToVector().PlaceIn(frame)
	return Direction{v.X, v.Y, v.Z}
}

// EqualWithin reports whether two directions differ by at most the given
// tolerance, compared as unit vectors. A negative tolerance never matches.
func (d Direction) EqualWithin(other Direction, tolerance float64) bool {
	return d.ToVector().EqualWithin(other.ToVector(), tolerance)
}

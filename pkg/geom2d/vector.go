package geom2d

import "math"

// Vector is a free 2D vector: a displacement with magnitude and direction
// but no position.
type Vector struct {
	X, Y float64
}

// Add returns the componentwise sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y}
}

// Sub returns the componentwise difference v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y}
}

// Scale returns the vector scaled by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{k * v.X, k * v.Y}
}

// Negate returns the vector pointing the opposite way.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Cross returns the z component of the 3D cross product of two vectors
// lifted into the XY plane. It is positive when other lies counterclockwise
// of v.
func (v Vector) Cross(other Vector) float64 {
	return v.X*other.Y - v.Y*other.X
}

// Length returns the Euclidean magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// SquaredLength returns the squared magnitude. Prefer it over Length when
// only comparing magnitudes, to avoid the square root.
func (v Vector) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Rotate returns the vector rotated counterclockwise by the given angle.
func (v Vector) Rotate(angle float64) Vector {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Vector{c*v.X - s*v.Y, s*v.X + c*v.Y}
}

// Perpendicular returns the vector rotated a quarter turn counterclockwise.
// It has the same length as v.
func (v Vector) Perpendicular() Vector {
	return Vector{-v.Y, v.X}
}

// MirrorAcross returns the vector mirrored across the given axis. Only the
// axis direction matters since vectors have no position: the component along
// the axis is preserved and the perpendicular component is negated.
func (v Vector) MirrorAcross(axis Axis) Vector {
	d := axis.Direction
	// v' = 2 (v . d) d - v
	k := 2 * (v.X*d.X + v.Y*d.Y)
	return Vector{k*d.X - v.X, k*d.Y - v.Y}
}

// ComponentIn returns the scalar projection of the vector onto the given
// direction.
func (v Vector) ComponentIn(d Direction) float64 {
	return v.X*d.X + v.Y*d.Y
}

// ProjectionIn returns the vector's projection onto the given direction,
// as a vector parallel to it.
func (v Vector) ProjectionIn(d Direction) Vector {
	k := v.X*d.X + v.Y*d.Y
	return Vector{k * d.X, k * d.Y}
}

// Direction normalizes the vector into a unit direction. It fails with
// ErrZeroLength for the zero vector, which points nowhere.
func (v Vector) Direction() (Direction, error) {
	l := v.Length()
	if l == 0 {
		return Direction{}, ErrZeroLength
	}
	return Direction{v.X / l, v.Y / l}, nil
}

// RelativeTo re-expresses a vector given in global coordinates as components
// relative to the given frame's basis. Vectors are position independent, so
// the frame's origin plays no part.
func (v Vector) RelativeTo(frame Frame) Vector {
	return Vector{
		v.X*frame.XDirection.X + v.Y*frame.XDirection.Y,
		v.X*frame.YDirection.X + v.Y*frame.YDirection.Y,
	}
}

// PlaceIn is the inverse of RelativeTo: it takes a vector whose components
// are relative to the given frame's basis and re-expresses it in global
// coordinates.
func (v Vector) PlaceIn(frame Frame) Vector {
	return Vector{
		v.X*frame.XDirection.X + v.Y*frame.YDirection.X,
		v.X*frame.XDirection.Y + v.Y*frame.YDirection.Y,
	}
}

// EqualWithin reports whether two vectors differ by at most the given
// tolerance, comparing squared distance against tolerance squared.
// A negative tolerance never matches.
func (v Vector) EqualWithin(other Vector, tolerance float64) bool {
	if tolerance < 0 {
		return false
	}
	return v.Sub(other).SquaredLength() <= tolerance*tolerance
}

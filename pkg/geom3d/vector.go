package geom3d

import "math"

// Vector is a free 3D vector: a displacement with magnitude and direction
// but no position.
type Vector struct {
	X, Y, Z float64
}

// Add returns the componentwise sum of two vectors.
func (v Vector) Add(other Vector) Vector {
	return Vector{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns the componentwise difference v - other.
func (v Vector) Sub(other Vector) Vector {
	return Vector{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns the vector scaled by k.
func (v Vector) Scale(k float64) Vector {
	return Vector{k * v.X, k * v.Y, k * v.Z}
}

// Negate returns the vector pointing the opposite way.
func (v Vector) Negate() Vector {
	return Vector{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vector) Dot(other Vector) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross returns the cross product v x other.
func (v Vector) Cross(other Vector) Vector {
	return Vector{
		v.Y*other.Z - v.Z*other.Y,
		v.Z*other.X - v.X*other.Z,
		v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the Euclidean magnitude of the vector.
func (v Vector) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// SquaredLength returns the squared magnitude. Prefer it over Length when
// only comparing magnitudes, to avoid the square root.
func (v Vector) SquaredLength() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// RotateAround returns the vector rotated by the given angle around the
// given axis, following the right-hand rule. Free vectors ignore the axis
// origin; only its direction matters.
//
// Uses Rodrigues' rotation formula:
//
//	v' = v cos a + (k x v) sin a + k (k . v) (1 - cos a)
func (v Vector) RotateAround(axis Axis, angle float64) Vector {
	k := axis.Direction.ToVector()
	c := math.Cos(angle)
	s := math.Sin(angle)
	return v.Scale(c).
		Add(k.Cross(v).Scale(s)).
		Add(k.Scale(k.Dot(v) * (1 - c)))
}

// MirrorAcross returns the vector mirrored across the given plane: the
// in-plane component is preserved and the normal component is negated.
// Only the plane orientation matters since vectors have no position.
func (v Vector) MirrorAcross(plane PlanarFrame) Vector {
	n := plane.Normal().ToVector()
	return v.Sub(n.Scale(2 * v.Dot(n)))
}

// ComponentIn returns the scalar projection of the vector onto the given
// direction.
func (v Vector) ComponentIn(d Direction) float64 {
	return v.X*d.X + v.Y*d.Y + v.Z*d.Z
}

// ProjectionIn returns the vector's projection onto the given direction,
// as a vector parallel to it.
func (v Vector) ProjectionIn(d Direction) Vector {
	return d.Scale(v.ComponentIn(d))
}

// Direction normalizes the vector into a unit direction. It fails with
// ErrZeroLength for the zero vector, which points nowhere.
func (v Vector) Direction() (Direction, error) {
	l := v.Length()
	if l == 0 {
		return Direction{}, ErrZeroLength
	}
	return Direction{v.X / l, v.Y / l, v.Z / l}, nil
}

// RelativeTo re-expresses a vector given in global coordinates as
// components relative to the given frame's basis. Vectors are position
// independent, so the frame's origin plays no part.
func (v Vector) RelativeTo(frame Frame) Vector {
	return Vector{
		v.ComponentIn(frame.XDirection),
		v.ComponentIn(frame.YDirection),
		v.ComponentIn(frame.ZDirection),
	}
}

// PlaceIn is the inverse of RelativeTo: it takes a vector whose components
// are relative to the given frame's basis and re-expresses it in global
// coordinates.
func (v Vector) PlaceIn(frame Frame) Vector {
	return frame.XDirection.Scale(v.X).
		Add(frame.YDirection.Scale(v.Y)).
		Add(frame.ZDirection.Scale(v.Z))
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

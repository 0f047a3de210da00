// Package matconv bridges geometry values to gonum. Frames become
// homogeneous transform matrices (3x3 in 2D, 4x4 in 3D) and vectors
// convert to the gonum spatial types.
package matconv

import (
	"errors"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r2"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/davcamer/elm-geometry/pkg/geom2d"
	"github.com/davcamer/elm-geometry/pkg/geom3d"
)

// basisTolerance bounds how far a frame basis may deviate from orthonormal
// before the matrix inversion shortcut (transpose) becomes invalid.
const basisTolerance = 1e-9

// ErrNotOrthonormal reports a frame whose basis cannot be inverted by
// transposition.
var ErrNotOrthonormal = errors.New("matconv: frame basis is not orthonormal")

// ---------------------------------------------------------------------------
// Spatial vector conversions
// ---------------------------------------------------------------------------

// ToR2 converts a 2D vector to a gonum r2 vector.
func ToR2(v geom2d.Vector) r2.Vec {
	return r2.Vec{X: v.X, Y: v.Y}
}

// FromR2 converts a gonum r2 vector to a 2D vector.
func FromR2(v r2.Vec) geom2d.Vector {
	return geom2d.Vector{X: v.X, Y: v.Y}
}

// ToR3 converts a 3D vector to a gonum r3 vector.
func ToR3(v geom3d.Vector) r3.Vec {
	return r3.Vec{X: v.X, Y: v.Y, Z: v.Z}
}

// FromR3 converts a gonum r3 vector to a 3D vector.
func FromR3(v r3.Vec) geom3d.Vector {
	return geom3d.Vector{X: v.X, Y: v.Y, Z: v.Z}
}

// ---------------------------------------------------------------------------
// Homogeneous matrices, 2D
// ---------------------------------------------------------------------------

// PlaceMatrix2D returns the 3x3 homogeneous matrix mapping frame-local
// coordinates to global coordinates. Columns are the basis directions and
// the origin.
func PlaceMatrix2D(f geom2d.Frame) *mat.Dense {
	x := f.XDirection
	y := f.YDirection
	o := f.Origin
	return mat.NewDense(3, 3, []float64{
		x.X, y.X, o.X,
		x.Y, y.Y, o.Y,
		0, 0, 1,
	})
}

// RelativeMatrix2D returns the 3x3 homogeneous matrix mapping global
// coordinates to frame-local coordinates. It is the inverse of
// PlaceMatrix2D, computed by transposing the rotation block, and is only
// valid for an orthonormal basis.
func RelativeMatrix2D(f geom2d.Frame) (*mat.Dense, error) {
	if !f.IsOrthonormal(basisTolerance) {
		return nil, ErrNotOrthonormal
	}
	x := f.XDirection
	y := f.YDirection
	o := f.Origin.VectorFrom(geom2d.Origin)
	return mat.NewDense(3, 3, []float64{
		x.X, x.Y, -(o.X*x.X + o.Y*x.Y),
		y.X, y.Y, -(o.X*y.X + o.Y*y.Y),
		0, 0, 1,
	}), nil
}

// ApplyToPoint2D applies a 3x3 homogeneous matrix to a point.
func ApplyToPoint2D(m *mat.Dense, p geom2d.Point) geom2d.Point {
	return geom2d.Point{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2),
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2),
	}
}

// ApplyToVector2D applies the rotation block of a 3x3 homogeneous matrix
// to a vector. The translation column does not participate.
func ApplyToVector2D(m *mat.Dense, v geom2d.Vector) geom2d.Vector {
	return geom2d.Vector{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y,
	}
}

// ---------------------------------------------------------------------------
// Homogeneous matrices, 3D
// ---------------------------------------------------------------------------

// PlaceMatrix3D returns the 4x4 homogeneous matrix mapping frame-local
// coordinates to global coordinates.
func PlaceMatrix3D(f geom3d.Frame) *mat.Dense {
	x := f.XDirection
	y := f.YDirection
	z := f.ZDirection
	o := f.Origin
	return mat.NewDense(4, 4, []float64{
		x.X, y.X, z.X, o.X,
		x.Y, y.Y, z.Y, o.Y,
		x.Z, y.Z, z.Z, o.Z,
		0, 0, 0, 1,
	})
}

// RelativeMatrix3D returns the 4x4 homogeneous matrix mapping global
// coordinates to frame-local coordinates. Only valid for an orthonormal
// basis.
func RelativeMatrix3D(f geom3d.Frame) (*mat.Dense, error) {
	if !f.IsOrthonormal(basisTolerance) {
		return nil, ErrNotOrthonormal
	}
	x := f.XDirection
	y := f.YDirection
	z := f.ZDirection
	o := f.Origin.VectorFrom(geom3d.Origin)
	return mat.NewDense(4, 4, []float64{
		x.X, x.Y, x.Z, -(o.X*x.X + o.Y*x.Y + o.Z*x.Z),
		y.X, y.Y, y.Z, -(o.X*y.X + o.Y*y.Y + o.Z*y.Z),
		z.X, z.Y, z.Z, -(o.X*z.X + o.Y*z.Y + o.Z*z.Z),
		0, 0, 0, 1,
	}), nil
}

// ApplyToPoint3D applies a 4x4 homogeneous matrix to a point.
func ApplyToPoint3D(m *mat.Dense, p geom3d.Point) geom3d.Point {
	return geom3d.Point{
		X: m.At(0, 0)*p.X + m.At(0, 1)*p.Y + m.At(0, 2)*p.Z + m.At(0, 3),
		Y: m.At(1, 0)*p.X + m.At(1, 1)*p.Y + m.At(1, 2)*p.Z + m.At(1, 3),
		Z: m.At(2, 0)*p.X + m.At(2, 1)*p.Y + m.At(2, 2)*p.Z + m.At(2, 3),
	}
}

// ApplyToVector3D applies the rotation block of a 4x4 homogeneous matrix
// to a vector.
func ApplyToVector3D(m *mat.Dense, v geom3d.Vector) geom3d.Vector {
	return geom3d.Vector{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

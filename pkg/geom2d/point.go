package geom2d

import "math"

// Point is an affine position in the 2D plane. Unlike Vector it denotes a
// location, not a displacement, so points support distances and frame
// conversions that account for the frame origin.
type Point struct {
	X, Y float64
}

// Origin is the point (0, 0).
var Origin = Point{0, 0}

// VectorFrom returns the displacement vector from other to p.
func (p Point) VectorFrom(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y}
}

// VectorTo returns the displacement vector from p to other.
func (p Point) VectorTo(other Point) Vector {
	return Vector{other.X - p.X, other.Y - p.Y}
}

// DistanceFrom returns the Euclidean distance between two points.
func (p Point) DistanceFrom(other Point) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// SquaredDistanceFrom returns the squared distance between two points.
func (p Point) SquaredDistanceFrom(other Point) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return dx*dx + dy*dy
}

// DistanceAlong returns the signed distance of the point along the given
// axis, measured from the axis origin in the axis direction.
func (p Point) DistanceAlong(axis Axis) float64 {
	return p.VectorFrom(axis.Origin).ComponentIn(axis.Direction)
}

// SignedDistanceFrom returns the perpendicular signed distance from the
// point to the given axis: positive to the left of the axis direction,
// negative to the right.
func (p Point) SignedDistanceFrom(axis Axis) float64 {
	return axis.Direction.ToVector().Cross(p.VectorFrom(axis.Origin))
}

// TranslateBy returns the point displaced by the given vector.
func (p Point) TranslateBy(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y}
}

// TranslateIn returns the point displaced the given distance in the given
// direction.
func (p Point) TranslateIn(d Direction, distance float64) Point {
	return Point{p.X + distance*d.X, p.Y + distance*d.Y}
}

// RotateAround returns the point rotated counterclockwise around the given
// center point by the given angle.
func (p Point) RotateAround(center Point, angle float64) Point {
	return center.TranslateBy(p.VectorFrom(center).Rotate(angle))
}

// MirrorAcross returns the point mirrored across the given axis.
func (p Point) MirrorAcross(axis Axis) Point {
	return axis.Origin.TranslateBy(p.VectorFrom(axis.Origin).MirrorAcross(axis))
}

// ScaleAbout returns the point scaled about the given center by the factor
// k: the displacement from center to point is multiplied by k.
func (p Point) ScaleAbout(center Point, k float64) Point {
	return center.TranslateBy(p.VectorFrom(center).Scale(k))
}

// ProjectOnto returns the closest point on the given axis.
func (p Point) ProjectOnto(axis Axis) Point {
	return axis.Origin.TranslateIn(axis.Direction, p.DistanceAlong(axis))
}

// RelativeTo re-expresses a point given in global coordinates as coordinates
// relative to the given frame: the displacement from the frame origin,
// resolved against the frame's basis directions.
func (p Point) RelativeTo(frame Frame) Point {
	d := p.VectorFrom(frame.Origin)
	return Point{d.ComponentIn(frame.XDirection), d.ComponentIn(frame.YDirection)}
}

// PlaceIn is the inverse of RelativeTo: it takes frame-relative coordinates
// and returns the corresponding global point, frame origin plus the scaled
// basis directions.
func (p Point) PlaceIn(frame Frame) Point {
	return Point{
		frame.Origin.X + p.X*frame.XDirection.X + p.Y*frame.YDirection.X,
		frame.Origin.Y + p.X*frame.XDirection.Y + p.Y*frame.YDirection.Y,
	}
}

// EqualWithin reports whether two points are within the given tolerance of
// each other, comparing squared distance against tolerance squared.
// A negative tolerance never matches.
func (p Point) EqualWithin(other Point, tolerance float64) bool {
	if tolerance < 0 {
		return false
	}
	return p.SquaredDistanceFrom(other) <= tolerance*tolerance
}

// Interpolate returns the point a fraction t of the way from p0 to p1.
// The parameter is not clamped: t outside [0, 1] extrapolates beyond the
// endpoints.
func Interpolate(p0, p1 Point, t float64) Point {
	return p0.TranslateBy(p1.VectorFrom(p0).Scale(t))
}

// Midpoint returns the point halfway between two points.
func Midpoint(p0, p1 Point) Point {
	return Interpolate(p0, p1, 0.5)
}

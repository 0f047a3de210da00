package geom3d

// Point is an affine position in 3D space. Unlike Vector it denotes a
// location, not a displacement, so points support distances and frame
// conversions that account for the frame origin.
type Point struct {
	X, Y, Z float64
}

// Origin is the point (0, 0, 0).
var Origin = Point{0, 0, 0}

// VectorFrom returns the displacement vector from other to p.
func (p Point) VectorFrom(other Point) Vector {
	return Vector{p.X - other.X, p.Y - other.Y, p.Z - other.Z}
}

// VectorTo returns the displacement vector from p to other.
func (p Point) VectorTo(other Point) Vector {
	return Vector{other.X - p.X, other.Y - p.Y, other.Z - p.Z}
}

// DistanceFrom returns the Euclidean distance between two points.
func (p Point) DistanceFrom(other Point) float64 {
	return p.VectorFrom(other).Length()
}

// SquaredDistanceFrom returns the squared distance between two points.
func (p Point) SquaredDistanceFrom(other Point) float64 {
	return p.VectorFrom(other).SquaredLength()
}

// DistanceAlong returns the signed distance of the point along the given
// axis, measured from the axis origin in the axis direction.
func (p Point) DistanceAlong(axis Axis) float64 {
	return p.VectorFrom(axis.Origin).ComponentIn(axis.Direction)
}

// DistanceFromAxis returns the radial (perpendicular) distance from the
// point to the given axis. It is never negative; a line in 3D has no left
// or right side.
func (p Point) DistanceFromAxis(axis Axis) float64 {
	d := p.VectorFrom(axis.Origin)
	return axis.Direction.ToVector().Cross(d).Length()
}

// SignedDistanceFrom returns the signed distance from the point to the
// given plane, positive on the side its normal points toward.
func (p Point) SignedDistanceFrom(plane PlanarFrame) float64 {
	return p.VectorFrom(plane.Origin).ComponentIn(plane.Normal())
}

// TranslateBy returns the point displaced by the given vector.
func (p Point) TranslateBy(v Vector) Point {
	return Point{p.X + v.X, p.Y + v.Y, p.Z + v.Z}
}

// TranslateIn returns the point displaced the given distance in the given
// direction.
func (p Point) TranslateIn(d Direction, distance float64) Point {
	return Point{p.X + distance*d.X, p.Y + distance*d.Y, p.Z + distance*d.Z}
}

// RotateAround returns the point rotated by the given angle around the
// given axis, following the right-hand rule.
func (p Point) RotateAround(axis Axis, angle float64) Point {
	return axis.Origin.TranslateBy(p.VectorFrom(axis.Origin).RotateAround(axis, angle))
}

// MirrorAcross returns the point mirrored across the given plane.
func (p Point) MirrorAcross(plane PlanarFrame) Point {
	return plane.Origin.TranslateBy(p.VectorFrom(plane.Origin).MirrorAcross(plane))
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

// ProjectOntoPlane returns the closest point on the given plane.
func (p Point) ProjectOntoPlane(plane PlanarFrame) Point {
	n := plane.Normal()
	return p.TranslateIn(n, -p.SignedDistanceFrom(plane))
}

// RelativeTo re-expresses a point given in global coordinates as
// coordinates relative to the given frame: the displacement from the frame
// origin, resolved against the frame's basis directions.
func (p Point) RelativeTo(frame Frame) Point {
	d := p.VectorFrom(frame.Origin)
	return Point{
		d.ComponentIn(frame.XDirection),
		d.ComponentIn(frame.YDirection),
		d.ComponentIn(frame.ZDirection),
	}
}

// PlaceIn is the inverse of RelativeTo: it takes frame-relative coordinates
// and returns the corresponding global point, frame origin plus the scaled
// basis directions.
func (p Point) PlaceIn(frame Frame) Point {
	return frame.Origin.TranslateBy(Vector{p.X, p.Y, p.Z}.PlaceIn(frame))
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

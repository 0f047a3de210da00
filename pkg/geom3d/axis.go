package geom3d

// Axis is an oriented line in 3D space: an origin point plus a unit
// direction.
type Axis struct {
	Origin    Point
	Direction Direction
}

// The global coordinate axes.
var (
	XAxis = Axis{Origin: Origin, Direction: PositiveX}
	YAxis = Axis{Origin: Origin, Direction: PositiveY}
	ZAxis = Axis{Origin: Origin, Direction: PositiveZ}
)

// AxisThrough returns the axis through the given origin in the given
// direction.
func AxisThrough(origin Point, direction Direction) Axis {
	return Axis{Origin: origin, Direction: direction}
}

// Reverse returns the axis pointing the opposite way, keeping its origin.
func (a Axis) Reverse() Axis {
	return Axis{Origin: a.Origin, Direction: a.Direction.Reverse()}
}

// TranslateBy returns the axis displaced by the given vector.
func (a Axis) TranslateBy(v Vector) Axis {
	return Axis{Origin: a.Origin.TranslateBy(v), Direction: a.Direction}
}

// RotateAround returns the axis rotated by the given angle around another
// axis.
func (a Axis) RotateAround(other Axis, angle float64) Axis {
	return Axis{
		Origin:    a.Origin.RotateAround(other, angle),
		Direction: a.Direction.RotateAround(other, angle),
	}
}

// MirrorAcross returns the axis mirrored across the given plane.
func (a Axis) MirrorAcross(plane PlanarFrame) Axis {
	return Axis{
		Origin:    a.Origin.MirrorAcross(plane),
		Direction: a.Direction.MirrorAcross(plane),
	}
}

// RelativeTo re-expresses an axis given in global coordinates relative to
// the given frame.
func (a Axis) RelativeTo(frame Frame) Axis {
	return Axis{
		Origin:    a.Origin.RelativeTo(frame),
		Direction: a.Direction.RelativeTo(frame),
	}
}

// PlaceIn re-expresses a frame-relative axis in global coordinates.
func (a Axis) PlaceIn(frame Frame) Axis {
	return Axis{
		Origin:    a.Origin.PlaceIn(frame),
		Direction: a.Direction.PlaceIn(frame),
	}
}

package geom3d

import "github.com/davcamer/elm-geometry/pkg/geom2d"

// PlanarFrame is a 2D coordinate system embedded in 3D space: an origin
// point plus two mutually perpendicular unit directions spanning a plane.
// It is the bridge between packages geom2d and geom3d: 2D values are
// interpreted as coordinates within the planar frame's basis.
//
// Like Frame, planar frames are plain data and are never validated on
// construction; the basis is expected to be orthonormal.
type PlanarFrame struct {
	Origin     Point
	XDirection Direction
	YDirection Direction
}

// The global coordinate planes. Normals point along +Z, +X and +Y
// respectively, following the right-hand rule.
var (
	XYPlane = PlanarFrame{Origin: Origin, XDirection: PositiveX, YDirection: PositiveY}
	YZPlane = PlanarFrame{Origin: Origin, XDirection: PositiveY, YDirection: PositiveZ}
	ZXPlane = PlanarFrame{Origin: Origin, XDirection: PositiveZ, YDirection: PositiveX}
)

// PlanarFrameAt returns the XY-aligned planar frame with the given origin.
func PlanarFrameAt(origin Point) PlanarFrame {
	return PlanarFrame{Origin: origin, XDirection: PositiveX, YDirection: PositiveY}
}

// Normal returns the plane's unit normal, the cross product of its basis
// directions. It is unit length whenever the basis is orthonormal.
func (p PlanarFrame) Normal() Direction {
	n := p.XDirection.Cross(p.YDirection)
	return Direction{n.X, n.Y, n.Z}
}

// PlacePoint lifts a 2D point into 3D: the plane origin displaced by the
// point's coordinates along the plane's basis directions.
func (p PlanarFrame) PlacePoint(point geom2d.Point) Point {
	return p.Origin.TranslateBy(
		p.XDirection.Scale(point.X).Add(p.YDirection.Scale(point.Y)))
}

// PlaceVector lifts a 2D vector into 3D using the plane's basis directions.
// No origin is involved; vectors are position independent.
func (p PlanarFrame) PlaceVector(v geom2d.Vector) Vector {
	return p.XDirection.Scale(v.X).Add(p.YDirection.Scale(v.Y))
}

// PlaceDirection lifts a 2D direction into 3D using the plane's basis
// directions. The result is unit length when the basis is orthonormal.
func (p PlanarFrame) PlaceDirection(d geom2d.Direction) Direction {
	v := p.PlaceVector(geom2d.Vector{X: d.X, Y: d.Y})
	return Direction{v.X, v.Y, v.Z}
}

// ProjectPoint projects a 3D point perpendicularly onto the plane and
// returns its 2D coordinates within the plane's basis. The out-of-plane
// component is discarded.
func (p PlanarFrame) ProjectPoint(point Point) geom2d.Point {
	d := point.VectorFrom(p.Origin)
	return geom2d.Point{X: d.ComponentIn(p.XDirection), Y: d.ComponentIn(p.YDirection)}
}

// ProjectVector projects a 3D vector onto the plane and returns its 2D
// components within the plane's basis.
func (p PlanarFrame) ProjectVector(v Vector) geom2d.Vector {
	return geom2d.Vector{X: v.ComponentIn(p.XDirection), Y: v.ComponentIn(p.YDirection)}
}

// TranslateBy returns the planar frame displaced by the given vector,
// keeping its basis.
func (p PlanarFrame) TranslateBy(v Vector) PlanarFrame {
	return PlanarFrame{
		Origin:     p.Origin.TranslateBy(v),
		XDirection: p.XDirection,
		YDirection: p.YDirection,
	}
}

// RotateAround returns the planar frame rotated by the given angle around
// the given axis.
func (p PlanarFrame) RotateAround(axis Axis, angle float64) PlanarFrame {
	return PlanarFrame{
		Origin:     p.Origin.RotateAround(axis, angle),
		XDirection: p.XDirection.RotateAround(axis, angle),
		YDirection: p.YDirection.RotateAround(axis, angle),
	}
}

// RelativeTo re-expresses a planar frame given in global coordinates
// relative to the given frame.
func (p PlanarFrame) RelativeTo(frame Frame) PlanarFrame {
	return PlanarFrame{
		Origin:     p.Origin.RelativeTo(frame),
		XDirection: p.XDirection.RelativeTo(frame),
		YDirection: p.YDirection.RelativeTo(frame),
	}
}

// PlaceIn re-expresses a frame-relative planar frame in global
// coordinates.
func (p PlanarFrame) PlaceIn(frame Frame) PlanarFrame {
	return PlanarFrame{
		Origin:     p.Origin.PlaceIn(frame),
		XDirection: p.XDirection.PlaceIn(frame),
		YDirection: p.YDirection.PlaceIn(frame),
	}
}

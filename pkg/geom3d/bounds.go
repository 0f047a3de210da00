package geom3d

import (
	"errors"
	"math"
)

// ErrEmptyInput is returned when a bounding box is requested for an empty
// collection of points.
var ErrEmptyInput = errors.New("geom3d: cannot bound an empty collection of points")

// BoundingBox is an axis-aligned rectangular volume stored as an interval
// per axis. Min is never greater than Max on any axis; zero-width
// (Min == Max) boxes are valid.
type BoundingBox struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64
}

// FromExtrema returns the bounding box with the given extrema, swapping any
// pair given in the wrong order so the interval invariant holds.
func FromExtrema(minX, maxX, minY, maxY, minZ, maxZ float64) BoundingBox {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	if minZ > maxZ {
		minZ, maxZ = maxZ, minZ
	}
	return BoundingBox{
		MinX: minX, MaxX: maxX,
		MinY: minY, MaxY: maxY,
		MinZ: minZ, MaxZ: maxZ,
	}
}

// Singleton returns the zero-width box containing exactly the given point.
func Singleton(p Point) BoundingBox {
	return BoundingBox{
		MinX: p.X, MaxX: p.X,
		MinY: p.Y, MaxY: p.Y,
		MinZ: p.Z, MaxZ: p.Z,
	}
}

// Containing returns the smallest box containing all given points. It fails
// with ErrEmptyInput when called with no points: there is no meaningful box,
// and a sentinel value would poison later hulls.
func Containing(points ...Point) (BoundingBox, error) {
	if len(points) == 0 {
		return BoundingBox{}, ErrEmptyInput
	}
	box := Singleton(points[0])
	for _, p := range points[1:] {
		box = box.Hull(Singleton(p))
	}
	return box, nil
}

// Hull returns the smallest box containing both boxes. Hull is associative,
// commutative and idempotent, so collections of boxes may be reduced in any
// grouping or order.
func (b BoundingBox) Hull(other BoundingBox) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, other.MinX),
		MaxX: math.Max(b.MaxX, other.MaxX),
		MinY: math.Min(b.MinY, other.MinY),
		MaxY: math.Max(b.MaxY, other.MaxY),
		MinZ: math.Min(b.MinZ, other.MinZ),
		MaxZ: math.Max(b.MaxZ, other.MaxZ),
	}
}

// Overlaps reports whether two boxes share any point. Boxes that merely
// touch along a boundary overlap.
func (b BoundingBox) Overlaps(other BoundingBox) bool {
	return b.MinX <= other.MaxX && other.MinX <= b.MaxX &&
		b.MinY <= other.MaxY && other.MinY <= b.MaxY &&
		b.MinZ <= other.MaxZ && other.MinZ <= b.MaxZ
}

// Intersection returns the box common to both boxes. The second result is
// false when the boxes are disjoint; the returned box is only meaningful
// when it is true.
func (b BoundingBox) Intersection(other BoundingBox) (BoundingBox, bool) {
	if !b.Overlaps(other) {
		return BoundingBox{}, false
	}
	return BoundingBox{
		MinX: math.Max(b.MinX, other.MinX),
		MaxX: math.Min(b.MaxX, other.MaxX),
		MinY: math.Max(b.MinY, other.MinY),
		MaxY: math.Min(b.MaxY, other.MaxY),
		MinZ: math.Max(b.MinZ, other.MinZ),
		MaxZ: math.Min(b.MaxZ, other.MaxZ),
	}, true
}

// IsContainedIn reports whether the box lies entirely inside outer.
// Touching the outer boundary counts as contained, so every box is
// contained in itself.
func (b BoundingBox) IsContainedIn(outer BoundingBox) bool {
	return outer.MinX <= b.MinX && b.MaxX <= outer.MaxX &&
		outer.MinY <= b.MinY && b.MaxY <= outer.MaxY &&
		outer.MinZ <= b.MinZ && b.MaxZ <= outer.MaxZ
}

// ContainsPoint reports whether the point lies inside the box, boundary
// included.
func (b BoundingBox) ContainsPoint(p Point) bool {
	return b.MinX <= p.X && p.X <= b.MaxX &&
		b.MinY <= p.Y && p.Y <= b.MaxY &&
		b.MinZ <= p.Z && p.Z <= b.MaxZ
}

// Centroid returns the center point of the box.
func (b BoundingBox) Centroid() Point {
	return Point{b.MidX(), b.MidY(), b.MidZ()}
}

// MidX returns the X coordinate of the box center.
func (b BoundingBox) MidX() float64 {
	return (b.MinX + b.MaxX) / 2
}

// MidY returns the Y coordinate of the box center.
func (b BoundingBox) MidY() float64 {
	return (b.MinY + b.MaxY) / 2
}

// MidZ returns the Z coordinate of the box center.
func (b BoundingBox) MidZ() float64 {
	return (b.MinZ + b.MaxZ) / 2
}

// Dimensions returns the box's extent along each axis.
func (b BoundingBox) Dimensions() (dx, dy, dz float64) {
	return b.MaxX - b.MinX, b.MaxY - b.MinY, b.MaxZ - b.MinZ
}

// ExpandBy returns the box grown by the given margin on every side.
// A negative margin shrinks the box; an axis whose interval would invert
// collapses to its midpoint instead.
func (b BoundingBox) ExpandBy(margin float64) BoundingBox {
	box := BoundingBox{
		MinX: b.MinX - margin, MaxX: b.MaxX + margin,
		MinY: b.MinY - margin, MaxY: b.MaxY + margin,
		MinZ: b.MinZ - margin, MaxZ: b.MaxZ + margin,
	}
	if box.MinX > box.MaxX {
		m := b.MidX()
		box.MinX, box.MaxX = m, m
	}
	if box.MinY > box.MaxY {
		m := b.MidY()
		box.MinY, box.MaxY = m, m
	}
	if box.MinZ > box.MaxZ {
		m := b.MidZ()
		box.MinZ, box.MaxZ = m, m
	}
	return box
}

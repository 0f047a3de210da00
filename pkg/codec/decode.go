package codec

import (
	"math"

	"github.com/davcamer/elm-geometry/pkg/geom2d"
	"github.com/davcamer/elm-geometry/pkg/geom3d"
)

// DecodePoint2D parses a 2D point from an [x, y] sequence.
func DecodePoint2D(f Format, data []byte) (geom2d.Point, error) {
	c, err := decodeCoords(f, data, 2)
	if err != nil {
		return geom2d.Point{}, err
	}
	return geom2d.Point{X: c[0], Y: c[1]}, nil
}

// DecodeVector2D parses a 2D vector from an [x, y] sequence.
func DecodeVector2D(f Format, data []byte) (geom2d.Vector, error) {
	c, err := decodeCoords(f, data, 2)
	if err != nil {
		return geom2d.Vector{}, err
	}
	return geom2d.Vector{X: c[0], Y: c[1]}, nil
}

// DecodeDirection2D parses a 2D direction from an [x, y] sequence,
// rejecting components that are not unit length.
func DecodeDirection2D(f Format, data []byte) (geom2d.Direction, error) {
	c, err := decodeCoords(f, data, 2)
	if err != nil {
		return geom2d.Direction{}, err
	}
	return direction2(c, "")
}

// DecodePoint3D parses a 3D point from an [x, y, z] sequence.
func DecodePoint3D(f Format, data []byte) (geom3d.Point, error) {
	c, err := decodeCoords(f, data, 3)
	if err != nil {
		return geom3d.Point{}, err
	}
	return geom3d.Point{X: c[0], Y: c[1], Z: c[2]}, nil
}

// DecodeVector3D parses a 3D vector from an [x, y, z] sequence.
func DecodeVector3D(f Format, data []byte) (geom3d.Vector, error) {
	c, err := decodeCoords(f, data, 3)
	if err != nil {
		return geom3d.Vector{}, err
	}
	return geom3d.Vector{X: c[0], Y: c[1], Z: c[2]}, nil
}

// DecodeDirection3D parses a 3D direction from an [x, y, z] sequence,
// rejecting components that are not unit length.
func DecodeDirection3D(f Format, data []byte) (geom3d.Direction, error) {
	c, err := decodeCoords(f, data, 3)
	if err != nil {
		return geom3d.Direction{}, err
	}
	return direction3(c, "")
}

// DecodeAxis2D parses a 2D axis from an {originPoint, direction} mapping.
func DecodeAxis2D(f Format, data []byte) (geom2d.Axis, error) {
	v, err := unmarshal(f, data)
	if err != nil {
		return geom2d.Axis{}, err
	}
	m, err := asRecord("", v, "originPoint", "direction")
	if err != nil {
		return geom2d.Axis{}, err
	}
	origin, err := asCoords("originPoint", m["originPoint"], 2)
	if err != nil {
		return geom2d.Axis{}, err
	}
	d, err := coordsDirection2(m["direction"], "direction")
	if err != nil {
		return geom2d.Axis{}, err
	}
	return geom2d.Axis{Origin: geom2d.Point{X: origin[0], Y: origin[1]}, Direction: d}, nil
}

// DecodeAxis3D parses a 3D axis from an {originPoint, direction} mapping.
func DecodeAxis3D(f Format, data []byte) (geom3d.Axis, error) {
	v, err := unmarshal(f, data)
	if err != nil {
		return geom3d.Axis{}, err
	}
	m, err := asRecord("", v, "originPoint", "direction")
	if err != nil {
		return geom3d.Axis{}, err
	}
	origin, err := asCoords("originPoint", m["originPoint"], 3)
	if err != nil {
		return geom3d.Axis{}, err
	}
	d, err := coordsDirection3(m["direction"], "direction")
	if err != nil {
		return geom3d.Axis{}, err
	}
	return geom3d.Axis{
		Origin:    geom3d.Point{X: origin[0], Y: origin[1], Z: origin[2]},
		Direction: d,
	}, nil
}

// DecodeFrame2D parses a 2D frame from an {originPoint, xDirection,
// yDirection} mapping, rejecting bases that are not orthonormal.
func DecodeFrame2D(f Format, data []byte) (geom2d.Frame, error) {
	v, err := unmarshal(f, data)
	if err != nil {
		return geom2d.Frame{}, err
	}
	m, err := asRecord("", v, "originPoint", "xDirection", "yDirection")
	if err != nil {
		return geom2d.Frame{}, err
	}
	origin, err := asCoords("originPoint", m["originPoint"], 2)
	if err != nil {
		return geom2d.Frame{}, err
	}
	x, err := coordsDirection2(m["xDirection"], "xDirection")
	if err != nil {
		return geom2d.Frame{}, err
	}
	y, err := coordsDirection2(m["yDirection"], "yDirection")
	if err != nil {
		return geom2d.Frame{}, err
	}
	frame := geom2d.Frame{
		Origin:     geom2d.Point{X: origin[0], Y: origin[1]},
		XDirection: x,
		YDirection: y,
	}
	if !frame.IsOrthonormal(unitTolerance) {
		return geom2d.Frame{}, decodeErrorf("", "frame basis is not orthonormal")
	}
	return frame, nil
}

// DecodeFrame3D parses a 3D frame from an {originPoint, xDirection,
// yDirection, zDirection} mapping, rejecting bases that are not
// orthonormal.
func DecodeFrame3D(f Format, data []byte) (geom3d.Frame, error) {
	v, err := unmarshal(f, data)
	if err != nil {
		return geom3d.Frame{}, err
	}
	m, err := asRecord("", v, "originPoint", "xDirection", "yDirection", "zDirection")
	if err != nil {
		return geom3d.Frame{}, err
	}
	origin, err := asCoords("originPoint", m["originPoint"], 3)
	if err != nil {
		return geom3d.Frame{}, err
	}
	x, err := coordsDirection3(m["xDirection"], "xDirection")
	if err != nil {
		return geom3d.Frame{}, err
	}
	y, err := coordsDirection3(m["yDirection"], "yDirection")
	if err != nil {
		return geom3d.Frame{}, err
	}
	z, err := coordsDirection3(m["zDirection"], "zDirection")
	if err != nil {
		return geom3d.Frame{}, err
	}
	frame := geom3d.Frame{
		Origin:     geom3d.Point{X: origin[0], Y: origin[1], Z: origin[2]},
		XDirection: x,
		YDirection: y,
		ZDirection: z,
	}
	if !frame.IsOrthonormal(unitTolerance) {
		return geom3d.Frame{}, decodeErrorf("", "frame basis is not orthonormal")
	}
	return frame, nil
}

// DecodePlanarFrame3D parses a planar frame from an {originPoint,
// xDirection, yDirection} mapping with 3D entries, rejecting bases that
// are not orthonormal.
func DecodePlanarFrame3D(f Format, data []byte) (geom3d.PlanarFrame, error) {
	v, err := unmarshal(f, data)
	if err != nil {
		return geom3d.PlanarFrame{}, err
	}
	m, err := asRecord("", v, "originPoint", "xDirection", "yDirection")
	if err != nil {
		return geom3d.PlanarFrame{}, err
	}
	origin, err := asCoords("originPoint", m["originPoint"], 3)
	if err != nil {
		return geom3d.PlanarFrame{}, err
	}
	x, err := coordsDirection3(m["xDirection"], "xDirection")
	if err != nil {
		return geom3d.PlanarFrame{}, err
	}
	y, err := coordsDirection3(m["yDirection"], "yDirection")
	if err != nil {
		return geom3d.PlanarFrame{}, err
	}
	if math.Abs(x.Dot(y)) > unitTolerance {
		return geom3d.PlanarFrame{}, decodeErrorf("", "planar frame basis is not orthonormal")
	}
	return geom3d.PlanarFrame{
		Origin:     geom3d.Point{X: origin[0], Y: origin[1], Z: origin[2]},
		XDirection: x,
		YDirection: y,
	}, nil
}

// DecodeBoundingBox2D parses a 2D bounding box from a {minX, maxX, minY,
// maxY} mapping, rejecting inverted intervals.
func DecodeBoundingBox2D(f Format, data []byte) (geom2d.BoundingBox, error) {
	v, err := unmarshal(f, data)
	if err != nil {
		return geom2d.BoundingBox{}, err
	}
	m, err := asRecord("", v, "minX", "maxX", "minY", "maxY")
	if err != nil {
		return geom2d.BoundingBox{}, err
	}
	bounds, err := boxFields(m, "minX", "maxX", "minY", "maxY")
	if err != nil {
		return geom2d.BoundingBox{}, err
	}
	return geom2d.BoundingBox{
		MinX: bounds[0], MaxX: bounds[1],
		MinY: bounds[2], MaxY: bounds[3],
	}, nil
}

// DecodeBoundingBox3D parses a 3D bounding box from a {minX, maxX, minY,
// maxY, minZ, maxZ} mapping, rejecting inverted intervals.
func DecodeBoundingBox3D(f Format, data []byte) (geom3d.BoundingBox, error) {
	v, err := unmarshal(f, data)
	if err != nil {
		return geom3d.BoundingBox{}, err
	}
	m, err := asRecord("", v, "minX", "maxX", "minY", "maxY", "minZ", "maxZ")
	if err != nil {
		return geom3d.BoundingBox{}, err
	}
	bounds, err := boxFields(m, "minX", "maxX", "minY", "maxY", "minZ", "maxZ")
	if err != nil {
		return geom3d.BoundingBox{}, err
	}
	return geom3d.BoundingBox{
		MinX: bounds[0], MaxX: bounds[1],
		MinY: bounds[2], MaxY: bounds[3],
		MinZ: bounds[4], MaxZ: bounds[5],
	}, nil
}

// ---------------------------------------------------------------------------
// Shared decode helpers
// ---------------------------------------------------------------------------

func decodeCoords(f Format, data []byte, arity int) ([]float64, error) {
	v, err := unmarshal(f, data)
	if err != nil {
		return nil, err
	}
	return asCoords("", v, arity)
}

func direction2(c []float64, field string) (geom2d.Direction, error) {
	if math.Abs(c[0]*c[0]+c[1]*c[1]-1) > unitTolerance {
		return geom2d.Direction{}, decodeErrorf(field, "direction is not unit length")
	}
	return geom2d.Direction{X: c[0], Y: c[1]}, nil
}

func direction3(c []float64, field string) (geom3d.Direction, error) {
	if math.Abs(c[0]*c[0]+c[1]*c[1]+c[2]*c[2]-1) > unitTolerance {
		return geom3d.Direction{}, decodeErrorf(field, "direction is not unit length")
	}
	return geom3d.Direction{X: c[0], Y: c[1], Z: c[2]}, nil
}

func coordsDirection2(v any, field string) (geom2d.Direction, error) {
	c, err := asCoords(field, v, 2)
	if err != nil {
		return geom2d.Direction{}, err
	}
	return direction2(c, field)
}

func coordsDirection3(v any, field string) (geom3d.Direction, error) {
	c, err := asCoords(field, v, 3)
	if err != nil {
		return geom3d.Direction{}, err
	}
	return direction3(c, field)
}

// boxFields reads interval bounds in min/max pairs and checks each
// interval is ordered.
func boxFields(m map[string]any, names ...string) ([]float64, error) {
	values := make([]float64, len(names))
	for i, name := range names {
		n, err := asNumber(name, m[name])
		if err != nil {
			return nil, err
		}
		values[i] = n
	}
	for i := 0; i < len(values); i += 2 {
		if values[i] > values[i+1] {
			return nil, decodeErrorf(names[i], "interval minimum exceeds maximum")
		}
	}
	return values, nil
}

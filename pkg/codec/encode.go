package codec

import (
	"fmt"

	"github.com/davcamer/elm-geometry/pkg/geom2d"
	"github.com/davcamer/elm-geometry/pkg/geom3d"
)

// Record structs fix the field order of encoded mappings.

type axisRecord struct {
	OriginPoint []float64 `json:"originPoint" yaml:"originPoint"`
	Direction   []float64 `json:"direction" yaml:"direction"`
}

type frame2Record struct {
	OriginPoint []float64 `json:"originPoint" yaml:"originPoint"`
	XDirection  []float64 `json:"xDirection" yaml:"xDirection"`
	YDirection  []float64 `json:"yDirection" yaml:"yDirection"`
}

type frame3Record struct {
	OriginPoint []float64 `json:"originPoint" yaml:"originPoint"`
	XDirection  []float64 `json:"xDirection" yaml:"xDirection"`
	YDirection  []float64 `json:"yDirection" yaml:"yDirection"`
	ZDirection  []float64 `json:"zDirection" yaml:"zDirection"`
}

type box2Record struct {
	MinX float64 `json:"minX" yaml:"minX"`
	MaxX float64 `json:"maxX" yaml:"maxX"`
	MinY float64 `json:"minY" yaml:"minY"`
	MaxY float64 `json:"maxY" yaml:"maxY"`
}

type box3Record struct {
	MinX float64 `json:"minX" yaml:"minX"`
	MaxX float64 `json:"maxX" yaml:"maxX"`
	MinY float64 `json:"minY" yaml:"minY"`
	MaxY float64 `json:"maxY" yaml:"maxY"`
	MinZ float64 `json:"minZ" yaml:"minZ"`
	MaxZ float64 `json:"maxZ" yaml:"maxZ"`
}

// Encode serializes any of the geometry value types in the given format.
// It fails for values outside the geometry type set.
func Encode(f Format, value any) ([]byte, error) {
	record, err := toRecord(value)
	if err != nil {
		return nil, err
	}
	return marshal(f, record)
}

func toRecord(value any) (any, error) {
	switch v := value.(type) {
	case geom2d.Point:
		return []float64{v.X, v.Y}, nil
	case geom2d.Vector:
		return []float64{v.X, v.Y}, nil
	case geom2d.Direction:
		return []float64{v.X, v.Y}, nil
	case geom3d.Point:
		return []float64{v.X, v.Y, v.Z}, nil
	case geom3d.Vector:
		return []float64{v.X, v.Y, v.Z}, nil
	case geom3d.Direction:
		return []float64{v.X, v.Y, v.Z}, nil
	case geom2d.Axis:
		return axisRecord{
			OriginPoint: []float64{v.Origin.X, v.Origin.Y},
			Direction:   []float64{v.Direction.X, v.Direction.Y},
		}, nil
	case geom3d.Axis:
		return axisRecord{
			OriginPoint: []float64{v.Origin.X, v.Origin.Y, v.Origin.Z},
			Direction:   []float64{v.Direction.X, v.Direction.Y, v.Direction.Z},
		}, nil
	case geom2d.Frame:
		return frame2Record{
			OriginPoint: []float64{v.Origin.X, v.Origin.Y},
			XDirection:  []float64{v.XDirection.X, v.XDirection.Y},
			YDirection:  []float64{v.YDirection.X, v.YDirection.Y},
		}, nil
	case geom3d.Frame:
		return frame3Record{
			OriginPoint: []float64{v.Origin.X, v.Origin.Y, v.Origin.Z},
			XDirection:  []float64{v.XDirection.X, v.XDirection.Y, v.XDirection.Z},
			YDirection:  []float64{v.YDirection.X, v.YDirection.Y, v.YDirection.Z},
			ZDirection:  []float64{v.ZDirection.X, v.ZDirection.Y, v.ZDirection.Z},
		}, nil
	case geom3d.PlanarFrame:
		return frame2Record{
			OriginPoint: []float64{v.Origin.X, v.Origin.Y, v.Origin.Z},
			XDirection:  []float64{v.XDirection.X, v.XDirection.Y, v.XDirection.Z},
			YDirection:  []float64{v.YDirection.X, v.YDirection.Y, v.YDirection.Z},
		}, nil
	case geom2d.BoundingBox:
		return box2Record{
			MinX: v.MinX, MaxX: v.MaxX,
			MinY: v.MinY, MaxY: v.MaxY,
		}, nil
	case geom3d.BoundingBox:
		return box3Record{
			MinX: v.MinX, MaxX: v.MaxX,
			MinY: v.MinY, MaxY: v.MaxY,
			MinZ: v.MinZ, MaxZ: v.MaxZ,
		}, nil
	default:
		return nil, fmt.Errorf("codec: cannot encode %T", value)
	}
}

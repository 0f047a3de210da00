package engine

import (
	"fmt"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/davcamer/elm-geometry/pkg/geom2d"
	"github.com/davcamer/elm-geometry/pkg/geom3d"
)

// operationBuiltins returns the arithmetic, query, transform and
// bounding-box builtins. Operations dispatch on the dynamic kind of
// their geometry arguments; mixing 2D and 3D operands is an error.
func operationBuiltins() map[string]builtin {
	return map[string]builtin{
		// (add v1 v2) - vector addition
		"add": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("add", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Vector:
				if b, ok := vs[1].(geom2d.Vector); ok {
					return wrap(a.Add(b)), nil
				}
			case geom3d.Vector:
				if b, ok := vs[1].(geom3d.Vector); ok {
					return wrap(a.Add(b)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("add: requires two vectors of the same dimension")
		},
		// (sub v1 v2) - vector difference; (sub p1 p2) - vector from p2 to p1
		"sub": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("sub", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Vector:
				if b, ok := vs[1].(geom2d.Vector); ok {
					return wrap(a.Sub(b)), nil
				}
			case geom3d.Vector:
				if b, ok := vs[1].(geom3d.Vector); ok {
					return wrap(a.Sub(b)), nil
				}
			case geom2d.Point:
				if b, ok := vs[1].(geom2d.Point); ok {
					return wrap(a.VectorFrom(b)), nil
				}
			case geom3d.Point:
				if b, ok := vs[1].(geom3d.Point); ok {
					return wrap(a.VectorFrom(b)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("sub: requires two vectors or two points of the same dimension")
		},
		// (scale v 2.5) - scale a vector or direction into a vector
		"scale": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("scale requires exactly 2 arguments, got %d", len(args))
			}
			v, err := toGeom(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("scale: %w", err)
			}
			k, err := toFloat64(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("scale: factor: %w", err)
			}
			switch a := v.(type) {
			case geom2d.Vector:
				return wrap(a.Scale(k)), nil
			case geom3d.Vector:
				return wrap(a.Scale(k)), nil
			case geom2d.Direction:
				return wrap(a.Scale(k)), nil
			case geom3d.Direction:
				return wrap(a.Scale(k)), nil
			}
			return zygo.SexpNull, fmt.Errorf("scale: requires a vector or direction")
		},
		// (negate v)
		"negate": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("negate", args, 1)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Vector:
				return wrap(a.Negate()), nil
			case geom3d.Vector:
				return wrap(a.Negate()), nil
			case geom2d.Direction:
				return wrap(a.Reverse()), nil
			case geom3d.Direction:
				return wrap(a.Reverse()), nil
			}
			return zygo.SexpNull, fmt.Errorf("negate: requires a vector or direction")
		},
		// (dot a b) - scalar product of two vectors or two directions
		"dot": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("dot", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Vector:
				if b, ok := vs[1].(geom2d.Vector); ok {
					return num(a.Dot(b)), nil
				}
			case geom3d.Vector:
				if b, ok := vs[1].(geom3d.Vector); ok {
					return num(a.Dot(b)), nil
				}
			case geom2d.Direction:
				if b, ok := vs[1].(geom2d.Direction); ok {
					return num(a.Dot(b)), nil
				}
			case geom3d.Direction:
				if b, ok := vs[1].(geom3d.Direction); ok {
					return num(a.Dot(b)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("dot: requires two vectors or two directions of the same dimension")
		},
		// (cross a b) - scalar in 2D, vector in 3D
		"cross": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("cross", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Vector:
				if b, ok := vs[1].(geom2d.Vector); ok {
					return num(a.Cross(b)), nil
				}
			case geom3d.Vector:
				if b, ok := vs[1].(geom3d.Vector); ok {
					return wrap(a.Cross(b)), nil
				}
			case geom3d.Direction:
				if b, ok := vs[1].(geom3d.Direction); ok {
					return wrap(a.Cross(b)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("cross: requires two vectors of the same dimension")
		},
		// (length v)
		"length": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("length", args, 1)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Vector:
				return num(a.Length()), nil
			case geom3d.Vector:
				return num(a.Length()), nil
			}
			return zygo.SexpNull, fmt.Errorf("length: requires a vector")
		},
		// (squared-length v)
		"squared_length": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("squared-length", args, 1)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Vector:
				return num(a.SquaredLength()), nil
			case geom3d.Vector:
				return num(a.SquaredLength()), nil
			}
			return zygo.SexpNull, fmt.Errorf("squared-length: requires a vector")
		},
		// (direction-of v) - normalize a vector, fails for zero length
		"direction_of": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("direction-of", args, 1)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Vector:
				d, err := a.Direction()
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("direction-of: %w", err)
				}
				return wrap(d), nil
			case geom3d.Vector:
				d, err := a.Direction()
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("direction-of: %w", err)
				}
				return wrap(d), nil
			}
			return zygo.SexpNull, fmt.Errorf("direction-of: requires a vector")
		},
		// (distance p1 p2)
		"distance": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("distance", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Point:
				if b, ok := vs[1].(geom2d.Point); ok {
					return num(a.DistanceFrom(b)), nil
				}
			case geom3d.Point:
				if b, ok := vs[1].(geom3d.Point); ok {
					return num(a.DistanceFrom(b)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("distance: requires two points of the same dimension")
		},
		// (midpoint p1 p2)
		"midpoint": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("midpoint", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Point:
				if b, ok := vs[1].(geom2d.Point); ok {
					return wrap(geom2d.Midpoint(a, b)), nil
				}
			case geom3d.Point:
				if b, ok := vs[1].(geom3d.Point); ok {
					return wrap(geom3d.Midpoint(a, b)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("midpoint: requires two points of the same dimension")
		},
		// (interpolate p1 p2 t) - t outside [0,1] extrapolates
		"interpolate": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 3 {
				return zygo.SexpNull, fmt.Errorf("interpolate requires exactly 3 arguments, got %d", len(args))
			}
			vs, err := argGeoms("interpolate", args[:2], 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			t, err := toFloat64(args[2])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("interpolate: parameter: %w", err)
			}
			switch a := vs[0].(type) {
			case geom2d.Point:
				if b, ok := vs[1].(geom2d.Point); ok {
					return wrap(geom2d.Interpolate(a, b, t)), nil
				}
			case geom3d.Point:
				if b, ok := vs[1].(geom3d.Point); ok {
					return wrap(geom3d.Interpolate(a, b, t)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("interpolate: requires two points of the same dimension")
		},
		// (translate-by value displacement)
		"translate_by": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("translate-by", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Point:
				if d, ok := vs[1].(geom2d.Vector); ok {
					return wrap(a.TranslateBy(d)), nil
				}
			case geom2d.Axis:
				if d, ok := vs[1].(geom2d.Vector); ok {
					return wrap(a.TranslateBy(d)), nil
				}
			case geom2d.Frame:
				if d, ok := vs[1].(geom2d.Vector); ok {
					return wrap(a.TranslateBy(d)), nil
				}
			case geom3d.Point:
				if d, ok := vs[1].(geom3d.Vector); ok {
					return wrap(a.TranslateBy(d)), nil
				}
			case geom3d.Axis:
				if d, ok := vs[1].(geom3d.Vector); ok {
					return wrap(a.TranslateBy(d)), nil
				}
			case geom3d.Frame:
				if d, ok := vs[1].(geom3d.Vector); ok {
					return wrap(a.TranslateBy(d)), nil
				}
			case geom3d.PlanarFrame:
				if d, ok := vs[1].(geom3d.Vector); ok {
					return wrap(a.TranslateBy(d)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("translate-by: requires a translatable value and a vector of the same dimension")
		},
		// (rotate v angle) - rotate a 2D vector or direction
		"rotate": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("rotate requires exactly 2 arguments, got %d", len(args))
			}
			v, err := toGeom(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate: %w", err)
			}
			angle, err := toFloat64(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate: angle: %w", err)
			}
			switch a := v.(type) {
			case geom2d.Vector:
				return wrap(a.Rotate(angle)), nil
			case geom2d.Direction:
				return wrap(a.Rotate(angle)), nil
			}
			return zygo.SexpNull, fmt.Errorf("rotate: requires a 2D vector or direction")
		},
		// 2D: (rotate-around value centerPoint angle)
		// 3D: (rotate-around value axis angle)
		"rotate_around": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 3 {
				return zygo.SexpNull, fmt.Errorf("rotate-around requires exactly 3 arguments, got %d", len(args))
			}
			vs, err := argGeoms("rotate-around", args[:2], 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			angle, err := toFloat64(args[2])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("rotate-around: angle: %w", err)
			}
			switch a := vs[0].(type) {
			case geom2d.Point:
				if c, ok := vs[1].(geom2d.Point); ok {
					return wrap(a.RotateAround(c, angle)), nil
				}
			case geom2d.Axis:
				if c, ok := vs[1].(geom2d.Point); ok {
					return wrap(a.RotateAround(c, angle)), nil
				}
			case geom2d.Frame:
				if c, ok := vs[1].(geom2d.Point); ok {
					return wrap(a.RotateAround(c, angle)), nil
				}
			case geom3d.Point:
				if ax, ok := vs[1].(geom3d.Axis); ok {
					return wrap(a.RotateAround(ax, angle)), nil
				}
			case geom3d.Vector:
				if ax, ok := vs[1].(geom3d.Axis); ok {
					return wrap(a.RotateAround(ax, angle)), nil
				}
			case geom3d.Direction:
				if ax, ok := vs[1].(geom3d.Axis); ok {
					return wrap(a.RotateAround(ax, angle)), nil
				}
			case geom3d.Axis:
				if ax, ok := vs[1].(geom3d.Axis); ok {
					return wrap(a.RotateAround(ax, angle)), nil
				}
			case geom3d.Frame:
				if ax, ok := vs[1].(geom3d.Axis); ok {
					return wrap(a.RotateAround(ax, angle)), nil
				}
			case geom3d.PlanarFrame:
				if ax, ok := vs[1].(geom3d.Axis); ok {
					return wrap(a.RotateAround(ax, angle)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("rotate-around: 2D values rotate around a point, 3D values around an axis")
		},
		// 2D: (mirror-across value axis); 3D: (mirror-across value plane)
		"mirror_across": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("mirror-across", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Point:
				if ax, ok := vs[1].(geom2d.Axis); ok {
					return wrap(a.MirrorAcross(ax)), nil
				}
			case geom2d.Vector:
				if ax, ok := vs[1].(geom2d.Axis); ok {
					return wrap(a.MirrorAcross(ax)), nil
				}
			case geom2d.Direction:
				if ax, ok := vs[1].(geom2d.Axis); ok {
					return wrap(a.MirrorAcross(ax)), nil
				}
			case geom2d.Axis:
				if ax, ok := vs[1].(geom2d.Axis); ok {
					return wrap(a.MirrorAcross(ax)), nil
				}
			case geom3d.Point:
				if pl, ok := vs[1].(geom3d.PlanarFrame); ok {
					return wrap(a.MirrorAcross(pl)), nil
				}
			case geom3d.Vector:
				if pl, ok := vs[1].(geom3d.PlanarFrame); ok {
					return wrap(a.MirrorAcross(pl)), nil
				}
			case geom3d.Direction:
				if pl, ok := vs[1].(geom3d.PlanarFrame); ok {
					return wrap(a.MirrorAcross(pl)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("mirror-across: 2D values mirror across an axis, 3D values across a plane")
		},
		// (project-onto point axisOrPlane)
		"project_onto": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("project-onto", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.Point:
				if ax, ok := vs[1].(geom2d.Axis); ok {
					return wrap(a.ProjectOnto(ax)), nil
				}
			case geom3d.Point:
				switch target := vs[1].(type) {
				case geom3d.Axis:
					return wrap(a.ProjectOnto(target)), nil
				case geom3d.PlanarFrame:
					return wrap(a.ProjectOntoPlane(target)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("project-onto: requires a point and an axis or plane")
		},
		// (scale-about point center factor)
		"scale_about": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 3 {
				return zygo.SexpNull, fmt.Errorf("scale-about requires exactly 3 arguments, got %d", len(args))
			}
			vs, err := argGeoms("scale-about", args[:2], 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			k, err := toFloat64(args[2])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("scale-about: factor: %w", err)
			}
			switch a := vs[0].(type) {
			case geom2d.Point:
				if c, ok := vs[1].(geom2d.Point); ok {
					return wrap(a.ScaleAbout(c, k)), nil
				}
			case geom3d.Point:
				if c, ok := vs[1].(geom3d.Point); ok {
					return wrap(a.ScaleAbout(c, k)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("scale-about: requires two points of the same dimension")
		},
		// (relative-to value frame) - express in frame coordinates
		"relative_to": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			return changeOfBasis("relative-to", args)
		},
		// (place-in value frame) - convert frame coordinates to global
		"place_in": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			return changeOfBasis("place-in", args)
		},
		// (hull box1 box2)
		"hull": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("hull", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.BoundingBox:
				if b, ok := vs[1].(geom2d.BoundingBox); ok {
					return wrap(a.Hull(b)), nil
				}
			case geom3d.BoundingBox:
				if b, ok := vs[1].(geom3d.BoundingBox); ok {
					return wrap(a.Hull(b)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("hull: requires two bounding boxes of the same dimension")
		},
		// (intersection box1 box2) - nil when the boxes do not overlap
		"intersection": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("intersection", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.BoundingBox:
				if b, ok := vs[1].(geom2d.BoundingBox); ok {
					box, ok := a.Intersection(b)
					if !ok {
						return zygo.SexpNull, nil
					}
					return wrap(box), nil
				}
			case geom3d.BoundingBox:
				if b, ok := vs[1].(geom3d.BoundingBox); ok {
					box, ok := a.Intersection(b)
					if !ok {
						return zygo.SexpNull, nil
					}
					return wrap(box), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("intersection: requires two bounding boxes of the same dimension")
		},
		// (overlaps box1 box2) - touching boxes overlap
		"overlaps": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("overlaps", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.BoundingBox:
				if b, ok := vs[1].(geom2d.BoundingBox); ok {
					return boolean(a.Overlaps(b)), nil
				}
			case geom3d.BoundingBox:
				if b, ok := vs[1].(geom3d.BoundingBox); ok {
					return boolean(a.Overlaps(b)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("overlaps: requires two bounding boxes of the same dimension")
		},
		// (contains box pointOrBox) - boundary inclusive
		"contains": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("contains", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.BoundingBox:
				switch b := vs[1].(type) {
				case geom2d.Point:
					return boolean(a.ContainsPoint(b)), nil
				case geom2d.BoundingBox:
					return boolean(b.IsContainedIn(a)), nil
				}
			case geom3d.BoundingBox:
				switch b := vs[1].(type) {
				case geom3d.Point:
					return boolean(a.ContainsPoint(b)), nil
				case geom3d.BoundingBox:
					return boolean(b.IsContainedIn(a)), nil
				}
			}
			return zygo.SexpNull, fmt.Errorf("contains: requires a bounding box and a point or box of the same dimension")
		},
		// (centroid box)
		"centroid": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("centroid", args, 1)
			if err != nil {
				return zygo.SexpNull, err
			}
			switch a := vs[0].(type) {
			case geom2d.BoundingBox:
				return wrap(a.Centroid()), nil
			case geom3d.BoundingBox:
				return wrap(a.Centroid()), nil
			}
			return zygo.SexpNull, fmt.Errorf("centroid: requires a bounding box")
		},
		// (expand-by box amount) - negative amounts shrink
		"expand_by": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) != 2 {
				return zygo.SexpNull, fmt.Errorf("expand-by requires exactly 2 arguments, got %d", len(args))
			}
			v, err := toGeom(args[0])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("expand-by: %w", err)
			}
			amount, err := toFloat64(args[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("expand-by: amount: %w", err)
			}
			switch a := v.(type) {
			case geom2d.BoundingBox:
				return wrap(a.ExpandBy(amount)), nil
			case geom3d.BoundingBox:
				return wrap(a.ExpandBy(amount)), nil
			}
			return zygo.SexpNull, fmt.Errorf("expand-by: requires a bounding box")
		},
		// (normal plane) - unit normal of a planar frame
		"normal": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("normal", args, 1)
			if err != nil {
				return zygo.SexpNull, err
			}
			pl, ok := vs[0].(geom3d.PlanarFrame)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("normal: requires a plane")
			}
			return wrap(pl.Normal()), nil
		},
		// (place-on plane value2d) - lift a 2D value onto a plane in 3D
		"place_on": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("place-on", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			pl, ok := vs[0].(geom3d.PlanarFrame)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("place-on: first argument must be a plane")
			}
			switch v := vs[1].(type) {
			case geom2d.Point:
				return wrap(pl.PlacePoint(v)), nil
			case geom2d.Vector:
				return wrap(pl.PlaceVector(v)), nil
			case geom2d.Direction:
				return wrap(pl.PlaceDirection(v)), nil
			}
			return zygo.SexpNull, fmt.Errorf("place-on: second argument must be a 2D point, vector or direction")
		},
		// (project-into plane value3d) - flatten a 3D value into plane coordinates
		"project_into": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("project-into", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			pl, ok := vs[0].(geom3d.PlanarFrame)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("project-into: first argument must be a plane")
			}
			switch v := vs[1].(type) {
			case geom3d.Point:
				return wrap(pl.ProjectPoint(v)), nil
			case geom3d.Vector:
				return wrap(pl.ProjectVector(v)), nil
			}
			return zygo.SexpNull, fmt.Errorf("project-into: second argument must be a 3D point or vector")
		},
	}
}

// changeOfBasis dispatches relative-to and place-in over every frame-aware
// kind. The two operations are inverses of each other.
func changeOfBasis(op string, args []zygo.Sexp) (zygo.Sexp, error) {
	vs, err := argGeoms(op, args, 2)
	if err != nil {
		return zygo.SexpNull, err
	}
	placing := op == "place-in"
	switch frame := vs[1].(type) {
	case geom2d.Frame:
		switch a := vs[0].(type) {
		case geom2d.Point:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		case geom2d.Vector:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		case geom2d.Direction:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		case geom2d.Axis:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		case geom2d.Frame:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		}
	case geom3d.Frame:
		switch a := vs[0].(type) {
		case geom3d.Point:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		case geom3d.Vector:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		case geom3d.Direction:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		case geom3d.Axis:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		case geom3d.Frame:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		case geom3d.PlanarFrame:
			if placing {
				return wrap(a.PlaceIn(frame)), nil
			}
			return wrap(a.RelativeTo(frame)), nil
		}
	default:
		return zygo.SexpNull, fmt.Errorf("%s: second argument must be a frame", op)
	}
	return zygo.SexpNull, fmt.Errorf("%s: value and frame dimensions do not match", op)
}

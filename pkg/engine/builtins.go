package engine

import (
	"fmt"
	"math"
	"strings"

	zygo "github.com/glycerine/zygomys/zygo"

	"github.com/davcamer/elm-geometry/pkg/geom2d"
	"github.com/davcamer/elm-geometry/pkg/geom3d"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// preprocessSource transforms geometry Lisp source before passing it to
// zygomys. It performs three transformations:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal).
//     This avoids registering keyword symbols as globals, which would
//     conflict with user-defined variables of the same name.
//
//  2. Kebab-case to underscore: relative-to -> relative_to. zygomys does
//     not allow hyphens in identifiers (it reads them as subtraction).
//
//  3. Lisp ; line comments become zygomys // comments.
//
// All transformations respect string literal boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Copy double-quoted string literals untouched.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments.
		if b[i] == ';' {
			result = append(result, '/', '/')
			i++
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword", preserving := assignment.
		if b[i] == ':' && i+1 < len(b) {
			if b[i+1] == '=' {
				result = append(result, b[i], b[i+1])
				i += 2
				continue
			}
			if isLetter(b[i+1]) {
				j := i + 1
				for j < len(b) && isKWChar(b[j]) {
					j++
				}
				result = append(result, '"')
				result = append(result, []byte(kwPrefix)...)
				result = append(result, b[i+1:j]...)
				result = append(result, '"')
				i = j
				continue
			}
		}
		// Transform kebab-case identifiers: alpha-alpha -> alpha_alpha.
		// Only when the hyphen sits between identifier characters, so a
		// minus operator is left alone.
		if b[i] == '-' && i > 0 && i+1 < len(b) &&
			isIdentChar(b[i-1]) && isLetter(b[i+1]) {
			result = append(result, '_')
			i++
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isIdentChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Geometry values inside the interpreter
// ---------------------------------------------------------------------------

// geomSexp is implemented by interpreter values that wrap a native
// geometry value.
type geomSexp interface {
	zygo.Sexp
	geomValue() any
}

// sexpGeom wraps any geom2d/geom3d value so builtins can pass it around.
type sexpGeom struct {
	v any
}

func (g *sexpGeom) geomValue() any             { return g.v }
func (g *sexpGeom) Type() *zygo.RegisteredType { return nil }
func (g *sexpGeom) SexpString(*zygo.PrintState) string {
	switch v := g.v.(type) {
	case geom2d.Point:
		return fmt.Sprintf("(point2 %g %g)", v.X, v.Y)
	case geom2d.Vector:
		return fmt.Sprintf("(vec2 %g %g)", v.X, v.Y)
	case geom2d.Direction:
		return fmt.Sprintf("(direction2 %g %g)", v.X, v.Y)
	case geom2d.Axis:
		return fmt.Sprintf("(axis2 (point2 %g %g) (direction2 %g %g))",
			v.Origin.X, v.Origin.Y, v.Direction.X, v.Direction.Y)
	case geom2d.Frame:
		return fmt.Sprintf("(frame2 :origin (point2 %g %g))", v.Origin.X, v.Origin.Y)
	case geom2d.BoundingBox:
		return fmt.Sprintf("(bbox2 %g %g %g %g)", v.MinX, v.MaxX, v.MinY, v.MaxY)
	case geom3d.Point:
		return fmt.Sprintf("(point3 %g %g %g)", v.X, v.Y, v.Z)
	case geom3d.Vector:
		return fmt.Sprintf("(vec3 %g %g %g)", v.X, v.Y, v.Z)
	case geom3d.Direction:
		return fmt.Sprintf("(direction3 %g %g %g)", v.X, v.Y, v.Z)
	case geom3d.Axis:
		return fmt.Sprintf("(axis3 (point3 %g %g %g) (direction3 %g %g %g))",
			v.Origin.X, v.Origin.Y, v.Origin.Z, v.Direction.X, v.Direction.Y, v.Direction.Z)
	case geom3d.Frame:
		return fmt.Sprintf("(frame3 :origin (point3 %g %g %g))",
			v.Origin.X, v.Origin.Y, v.Origin.Z)
	case geom3d.PlanarFrame:
		return fmt.Sprintf("(plane3 :origin (point3 %g %g %g))",
			v.Origin.X, v.Origin.Y, v.Origin.Z)
	case geom3d.BoundingBox:
		return fmt.Sprintf("(bbox3 %g %g %g %g %g %g)",
			v.MinX, v.MaxX, v.MinY, v.MaxY, v.MinZ, v.MaxZ)
	default:
		return fmt.Sprintf("(geom %v)", g.v)
	}
}

func wrap(v any) zygo.Sexp {
	return &sexpGeom{v: v}
}

func num(x float64) zygo.Sexp {
	return &zygo.SexpFloat{Val: x}
}

func boolean(b bool) zygo.Sexp {
	return &zygo.SexpBool{Val: b}
}

// ---------------------------------------------------------------------------
// Keyword argument parsing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// isKW checks if a Sexp is a preprocessed keyword string.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds the result of parsing a mixed positional+keyword argument
// list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		name, ok := isKW(args[i])
		if ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
		} else {
			result.positional = append(result.positional, args[i])
			i++
		}
	}
	return result
}

// ---------------------------------------------------------------------------
// Value extraction helpers
// ---------------------------------------------------------------------------

// toFloat64 extracts a float64 from a Sexp (SexpInt or SexpFloat).
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toGeom extracts the wrapped geometry value from a Sexp.
func toGeom(s zygo.Sexp) (any, error) {
	if g, ok := s.(geomSexp); ok {
		return g.geomValue(), nil
	}
	return nil, fmt.Errorf("expected geometry value, got %T (%s)", s, s.SexpString(nil))
}

func argFloats(op string, args []zygo.Sexp, n int) ([]float64, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires exactly %d arguments, got %d", op, n, len(args))
	}
	out := make([]float64, n)
	for i, a := range args {
		f, err := toFloat64(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", op, i+1, err)
		}
		out[i] = f
	}
	return out, nil
}

func argGeoms(op string, args []zygo.Sexp, n int) ([]any, error) {
	if len(args) != n {
		return nil, fmt.Errorf("%s requires exactly %d arguments, got %d", op, n, len(args))
	}
	out := make([]any, n)
	for i, a := range args {
		v, err := toGeom(a)
		if err != nil {
			return nil, fmt.Errorf("%s: argument %d: %w", op, i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func kwGeom(op, name string, pa kwArgs) (any, bool, error) {
	s, ok := pa.kw[name]
	if !ok {
		return nil, false, nil
	}
	v, err := toGeom(s)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %s: %w", op, name, err)
	}
	return v, true, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// builtin is a zygomys user function.
type builtin = func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error)

// registerBuiltins installs the geometry builtins into a zygomys
// environment. Source code must be preprocessed with preprocessSource()
// before evaluation so that :keyword tokens and kebab-case names are
// recognizable.
func registerBuiltins(env *zygo.Zlisp) {
	for name, fn := range constructorBuiltins() {
		env.AddFunction(name, fn)
	}
	for name, fn := range operationBuiltins() {
		env.AddFunction(name, fn)
	}
}

func constructorBuiltins() map[string]builtin {
	return map[string]builtin{
		// (point2 1 2)
		"point2": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			c, err := argFloats("point2", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			return wrap(geom2d.Point{X: c[0], Y: c[1]}), nil
		},
		// (point3 1 2 3)
		"point3": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			c, err := argFloats("point3", args, 3)
			if err != nil {
				return zygo.SexpNull, err
			}
			return wrap(geom3d.Point{X: c[0], Y: c[1], Z: c[2]}), nil
		},
		// (vec2 1 2)
		"vec2": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			c, err := argFloats("vec2", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			return wrap(geom2d.Vector{X: c[0], Y: c[1]}), nil
		},
		// (vec3 1 2 3)
		"vec3": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			c, err := argFloats("vec3", args, 3)
			if err != nil {
				return zygo.SexpNull, err
			}
			return wrap(geom3d.Vector{X: c[0], Y: c[1], Z: c[2]}), nil
		},
		// (direction2 1 1) - normalizes, fails for zero components
		"direction2": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			c, err := argFloats("direction2", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			d, err := geom2d.NewDirection(c[0], c[1])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("direction2: %w", err)
			}
			return wrap(d), nil
		},
		// (direction3 1 1 0)
		"direction3": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			c, err := argFloats("direction3", args, 3)
			if err != nil {
				return zygo.SexpNull, err
			}
			d, err := geom3d.NewDirection(c[0], c[1], c[2])
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("direction3: %w", err)
			}
			return wrap(d), nil
		},
		// (axis2 (point2 0 0) (direction2 1 0))
		"axis2": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("axis2", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			origin, ok := vs[0].(geom2d.Point)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("axis2: origin must be a point2")
			}
			dir, ok := vs[1].(geom2d.Direction)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("axis2: direction must be a direction2")
			}
			return wrap(geom2d.AxisThrough(origin, dir)), nil
		},
		// (axis3 (point3 0 0 0) (direction3 0 0 1))
		"axis3": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			vs, err := argGeoms("axis3", args, 2)
			if err != nil {
				return zygo.SexpNull, err
			}
			origin, ok := vs[0].(geom3d.Point)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("axis3: origin must be a point3")
			}
			dir, ok := vs[1].(geom3d.Direction)
			if !ok {
				return zygo.SexpNull, fmt.Errorf("axis3: direction must be a direction3")
			}
			return wrap(geom3d.AxisThrough(origin, dir)), nil
		},
		// (frame2 :origin (point2 1 2) :x-direction (direction2 0 1))
		"frame2": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			frame := geom2d.GlobalFrame
			if v, ok, err := kwGeom("frame2", "origin", pa); err != nil {
				return zygo.SexpNull, err
			} else if ok {
				p, isPoint := v.(geom2d.Point)
				if !isPoint {
					return zygo.SexpNull, fmt.Errorf("frame2: origin must be a point2")
				}
				frame = geom2d.FrameAt(p)
			}
			if v, ok, err := kwGeom("frame2", "x-direction", pa); err != nil {
				return zygo.SexpNull, err
			} else if ok {
				d, isDir := v.(geom2d.Direction)
				if !isDir {
					return zygo.SexpNull, fmt.Errorf("frame2: x-direction must be a direction2")
				}
				frame = geom2d.FrameWithXDirection(frame.Origin, d)
			}
			return wrap(frame), nil
		},
		// (frame3 :origin (point3 1 2 3) :z-direction (direction3 0 0 1))
		"frame3": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			frame := geom3d.GlobalFrame
			if v, ok, err := kwGeom("frame3", "origin", pa); err != nil {
				return zygo.SexpNull, err
			} else if ok {
				p, isPoint := v.(geom3d.Point)
				if !isPoint {
					return zygo.SexpNull, fmt.Errorf("frame3: origin must be a point3")
				}
				frame = geom3d.FrameAt(p)
			}
			if v, ok, err := kwGeom("frame3", "z-direction", pa); err != nil {
				return zygo.SexpNull, err
			} else if ok {
				d, isDir := v.(geom3d.Direction)
				if !isDir {
					return zygo.SexpNull, fmt.Errorf("frame3: z-direction must be a direction3")
				}
				frame = geom3d.FrameWithZDirection(frame.Origin, d)
			}
			return wrap(frame), nil
		},
		// (plane3 :origin (point3 0 0 5))
		"plane3": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			pa := parseArgs(args)
			plane := geom3d.XYPlane
			if v, ok, err := kwGeom("plane3", "origin", pa); err != nil {
				return zygo.SexpNull, err
			} else if ok {
				p, isPoint := v.(geom3d.Point)
				if !isPoint {
					return zygo.SexpNull, fmt.Errorf("plane3: origin must be a point3")
				}
				plane = geom3d.PlanarFrameAt(p)
			}
			return wrap(plane), nil
		},
		// (bbox2 minX maxX minY maxY)
		"bbox2": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			c, err := argFloats("bbox2", args, 4)
			if err != nil {
				return zygo.SexpNull, err
			}
			return wrap(geom2d.FromExtrema(c[0], c[1], c[2], c[3])), nil
		},
		// (bbox3 minX maxX minY maxY minZ maxZ)
		"bbox3": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			c, err := argFloats("bbox3", args, 6)
			if err != nil {
				return zygo.SexpNull, err
			}
			return wrap(geom3d.FromExtrema(c[0], c[1], c[2], c[3], c[4], c[5])), nil
		},
		// (containing p1 p2 ...) - bounding box of one or more points
		"containing": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			if len(args) == 0 {
				return zygo.SexpNull, fmt.Errorf("containing requires at least one point")
			}
			vs, err := argGeoms("containing", args, len(args))
			if err != nil {
				return zygo.SexpNull, err
			}
			switch vs[0].(type) {
			case geom2d.Point:
				points := make([]geom2d.Point, len(vs))
				for i, v := range vs {
					p, ok := v.(geom2d.Point)
					if !ok {
						return zygo.SexpNull, fmt.Errorf("containing: mixed 2D/3D points")
					}
					points[i] = p
				}
				box, err := geom2d.Containing(points...)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("containing: %w", err)
				}
				return wrap(box), nil
			case geom3d.Point:
				points := make([]geom3d.Point, len(vs))
				for i, v := range vs {
					p, ok := v.(geom3d.Point)
					if !ok {
						return zygo.SexpNull, fmt.Errorf("containing: mixed 2D/3D points")
					}
					points[i] = p
				}
				box, err := geom3d.Containing(points...)
				if err != nil {
					return zygo.SexpNull, fmt.Errorf("containing: %w", err)
				}
				return wrap(box), nil
			default:
				return zygo.SexpNull, fmt.Errorf("containing: arguments must be points")
			}
		},
		// (degrees 45) - convert degrees to radians
		"degrees": func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
			c, err := argFloats("degrees", args, 1)
			if err != nil {
				return zygo.SexpNull, err
			}
			return num(c[0] * math.Pi / 180), nil
		},
	}
}

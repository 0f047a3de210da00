// Package codec encodes and decodes the geometry value types to and from
// JSON and YAML records.
//
// Points, vectors and directions serialize as ordered numeric sequences
// ([x, y] or [x, y, z]); composite types serialize as mappings whose field
// names match the data model (an Axis has "originPoint" and "direction", a
// 2D Frame has "originPoint", "xDirection" and "yDirection", and so on).
//
// Decoding is strict: wrong arity, missing or unknown fields, non-numeric
// or non-finite entries, inverted bounding-box intervals, non-unit
// directions and non-orthonormal frame bases are all rejected with a
// DecodeError. Decoding never silently repairs a malformed basis.
package codec

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Format selects the wire syntax used by Encode and the Decode functions.
type Format int

const (
	JSON Format = iota
	YAML
)

// unitTolerance bounds the acceptable deviation of decoded basis dot
// products from their ideal values.
const unitTolerance = 1e-9

// DecodeError describes a malformed serialized record.
type DecodeError struct {
	Field  string // path of the offending field, empty for the root value
	Reason string
}

func (e *DecodeError) Error() string {
	if e.Field == "" {
		return "codec: " + e.Reason
	}
	return fmt.Sprintf("codec: %s: %s", e.Field, e.Reason)
}

func decodeErrorf(field, format string, args ...any) error {
	return &DecodeError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// marshal serializes an already-assembled record in the requested format.
func marshal(f Format, record any) ([]byte, error) {
	switch f {
	case JSON:
		return json.Marshal(record)
	case YAML:
		return yaml.Marshal(record)
	default:
		return nil, fmt.Errorf("codec: unknown format %d", f)
	}
}

// unmarshal parses raw bytes in the requested format into a generic value
// tree (maps, slices and numbers) for shape validation.
func unmarshal(f Format, data []byte) (any, error) {
	var v any
	switch f {
	case JSON:
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, &DecodeError{Reason: err.Error()}
		}
	case YAML:
		if err := yaml.Unmarshal(data, &v); err != nil {
			return nil, &DecodeError{Reason: err.Error()}
		}
	default:
		return nil, fmt.Errorf("codec: unknown format %d", f)
	}
	return v, nil
}

// asNumber extracts a finite float64 from a decoded scalar. JSON yields
// float64; YAML yields int or float64 depending on the literal.
func asNumber(field string, v any) (float64, error) {
	var n float64
	switch x := v.(type) {
	case float64:
		n = x
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	default:
		return 0, decodeErrorf(field, "expected number, got %T", v)
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, decodeErrorf(field, "number is not finite")
	}
	return n, nil
}

// asCoords extracts an ordered numeric sequence of exactly the given arity.
func asCoords(field string, v any, arity int) ([]float64, error) {
	seq, ok := v.([]any)
	if !ok {
		return nil, decodeErrorf(field, "expected sequence of %d numbers, got %T", arity, v)
	}
	if len(seq) != arity {
		return nil, decodeErrorf(field, "expected %d components, got %d", arity, len(seq))
	}
	coords := make([]float64, arity)
	for i, entry := range seq {
		n, err := asNumber(fmt.Sprintf("%s[%d]", field, i), entry)
		if err != nil {
			return nil, err
		}
		coords[i] = n
	}
	return coords, nil
}

// asRecord extracts a mapping with exactly the given field names, rejecting
// missing and unknown fields.
func asRecord(field string, v any, names ...string) (map[string]any, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, decodeErrorf(field, "expected mapping, got %T", v)
	}
	for _, name := range names {
		if _, present := m[name]; !present {
			return nil, decodeErrorf(join(field, name), "missing field")
		}
	}
	if len(m) != len(names) {
		for key := range m {
			if !contains(names, key) {
				return nil, decodeErrorf(join(field, key), "unknown field")
			}
		}
	}
	return m, nil
}

func join(field, name string) string {
	if field == "" {
		return name
	}
	return field + "." + name
}

func contains(names []string, key string) bool {
	for _, n := range names {
		if n == key {
			return true
		}
	}
	return false
}

package core

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/landsense/chartkit/schema"
	"github.com/spf13/cast"
)

// Number reads a numeric property. Missing keys, nulls, blank strings,
// booleans and anything cast cannot turn into a finite float report false.
func Number(props schema.Properties, key string) (float64, bool) {
	v, ok := props[key]
	if !ok || v == nil {
		return 0, false
	}
	switch t := v.(type) {
	case bool:
		return 0, false
	case string:
		if strings.TrimSpace(t) == "" {
			return 0, false
		}
	}
	f, err := cast.ToFloat64E(v)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// NumberOr reads a numeric property and substitutes fallback on any failure.
func NumberOr(props schema.Properties, key string, fallback float64) float64 {
	if f, ok := Number(props, key); ok {
		return f
	}
	return fallback
}

// NumberPtr reads a numeric property as series data, nil on any failure.
func NumberPtr(props schema.Properties, key string) *float64 {
	if f, ok := Number(props, key); ok {
		return schema.Float(f)
	}
	return nil
}

// Text stringifies a property. Only missing keys and nulls report false,
// so an empty string is still a present value.
func Text(props schema.Properties, key string) (string, bool) {
	v, ok := props[key]
	if !ok || v == nil {
		return "", false
	}
	return stringify(v), true
}

// TextOr stringifies a property and substitutes fallback when it is missing.
func TextOr(props schema.Properties, key string, fallback string) string {
	if s, ok := Text(props, key); ok {
		return s
	}
	return fallback
}

// FeatureName returns the Name property or "Unknown".
func FeatureName(props schema.Properties) string {
	return TextOr(props, schema.PropName, schema.UnknownName)
}

// Truthy reports whether a property value would count as set in a table cell.
// nil, false, zero, NaN and the empty string do not.
func Truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0 && !math.IsNaN(t)
	case float32:
		return t != 0 && !math.IsNaN(float64(t))
	case json.Number:
		f, err := t.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return cast.ToInt64(t) != 0
	default:
		return true
	}
}

// stringify renders scalars the way they read in the source JSON and
// encodes anything structured back to JSON.
func stringify(v any) string {
	switch v.(type) {
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
	return s
}

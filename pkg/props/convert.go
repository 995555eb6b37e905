package props

import (
	"encoding/json"
	"math"
)

// Codec decodes a serialized prop map.
type Codec interface {
	Decode(data []byte) (any, error)
}

// JSONCodec decodes props from JSON. Numbers decode as float64 and objects as
// map[string]any.
type JSONCodec struct{}

// Decode deserializes JSON bytes to a Go value.
func (JSONCodec) Decode(data []byte) (any, error) {
	if len(data) == 0 {
		return nil, nil
	}
	var result any
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// toFloat64 converts various numeric types to float64.
func toFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

// toInt converts a whole number to int. Fractions are truncated the way a
// native int prop read would truncate them.
func toInt(v any) (int, bool) {
	f, ok := toFloat64(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// toColorBits converts a packed ARGB number to its 32 bits. Values written as
// signed 32-bit integers are accepted as well as unsigned ones.
func toColorBits(v any) (uint32, bool) {
	f, ok := toFloat64(v)
	if !ok || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxUint32 {
		return 0, false
	}
	return uint32(int64(f)), true
}

// parseMap extracts a map[string]any from an any value.
func parseMap(value any) map[string]any {
	if value == nil {
		return nil
	}
	if m, ok := value.(map[string]any); ok {
		return m
	}
	if m, ok := value.(map[any]any); ok {
		converted := make(map[string]any, len(m))
		for key, val := range m {
			if keyString, ok := key.(string); ok {
				converted[keyString] = val
			}
		}
		return converted
	}
	return nil
}

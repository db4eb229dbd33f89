package workout

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Coerce converts arbitrary input into a finite number. Anything that does
// not yield a finite value becomes 0.
func Coerce(v any) float64 {
	var n float64
	switch val := v.(type) {
	case nil:
		return 0
	case float64:
		n = val
	case float32:
		n = float64(val)
	case int:
		n = float64(val)
	case int8:
		n = float64(val)
	case int16:
		n = float64(val)
	case int32:
		n = float64(val)
	case int64:
		n = float64(val)
	case uint:
		n = float64(val)
	case uint8:
		n = float64(val)
	case uint16:
		n = float64(val)
	case uint32:
		n = float64(val)
	case uint64:
		n = float64(val)
	case bool:
		if val {
			n = 1
		}
	case json.Number:
		f, err := val.Float64()
		if err != nil {
			return 0
		}
		n = f
	case string:
		s := strings.TrimSpace(val)
		if s == "" {
			return 0
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		n = f
	default:
		return 0
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0
	}
	return n
}

// CoerceNonNegative is Coerce with negative results clamped to 0.
func CoerceNonNegative(v any) float64 {
	n := Coerce(v)
	if n < 0 {
		return 0
	}
	return n
}

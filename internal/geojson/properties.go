package geojson

import (
	"math"
	"strconv"
)

// String coerces a property value to its string form. JSON numbers render
// without a forced decimal point, so a numeric code 12 becomes "12".
func String(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return ""
	}
}

// Number coerces a property value to a float64. The second return reports
// whether the value was numeric (or a numeric string).
func Number(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case int:
		return float64(val), true
	case int64:
		return float64(val), true
	case string:
		f, err := strconv.ParseFloat(val, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Int coerces a property value to a rounded integer.
func Int(v interface{}) (int, bool) {
	f, ok := Number(v)
	if !ok {
		return 0, false
	}
	return int(math.Round(f)), true
}

// Bool coerces a property value to a boolean. Numeric values follow the
// usual truthiness convention (non-zero is true).
func Bool(v interface{}) (bool, bool) {
	switch val := v.(type) {
	case bool:
		return val, true
	case float64:
		return val != 0, true
	case int:
		return val != 0, true
	case string:
		b, err := strconv.ParseBool(val)
		return b, err == nil
	default:
		return false, false
	}
}

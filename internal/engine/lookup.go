package engine

import (
	"strings"

	"github.com/Fi1osof/hotels-booking-demo/internal/model"
)

// Lookup resolves a dotted path ("availability.checkIn") inside a record.
// The second return is false when any segment is missing or the path walks
// through a non-map value.
func Lookup(rec model.GenericRecord, path string) (interface{}, bool) {
	var current interface{} = map[string]interface{}(rec)

	for _, segment := range strings.Split(path, ".") {
		node, ok := asMap(current)
		if !ok {
			return nil, false
		}
		value, exists := node[segment]
		if !exists {
			return nil, false
		}
		current = value
	}
	return current, true
}

func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		return m, true
	case model.GenericRecord:
		return m, true
	default:
		return nil, false
	}
}

// numericValue reports a record value as a float64 when it carries a numeric
// type. Strings are deliberately not coerced: a "120" price string does not
// contribute to an aggregate.
func numericValue(v interface{}) (float64, bool) {
	switch val := v.(type) {
	case float64:
		return val, true
	case float32:
		return float64(val), true
	case int:
		return float64(val), true
	case int32:
		return float64(val), true
	case int64:
		return float64(val), true
	default:
		return 0, false
	}
}

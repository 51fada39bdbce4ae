package cloverpit

import (
	"math"

	"github.com/iancoleman/orderedmap"
)

// GetByte reads a "ByteArray" field: a scalar the game stores as the first
// element of an array. defaultValue is returned when the field is absent, is not
// an array or does not start with a finite number.
func GetByte(container *orderedmap.OrderedMap, key string, defaultValue float64) float64 {
	value, ok := container.Get(key)
	if !ok {
		return defaultValue
	}
	array, ok := value.([]any)
	if !ok || len(array) == 0 {
		return defaultValue
	}
	number, ok := toFinite(array[0])
	if !ok {
		return defaultValue
	}
	return number
}

// SetByte overwrites the first element of a "ByteArray" field, creating a
// one-element array when the field is absent or not an array. Existing arrays
// keep their length.
func SetByte(container *orderedmap.OrderedMap, key string, value float64) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		value = 0
	}
	current, _ := container.Get(key)
	array, ok := current.([]any)
	if !ok || len(array) == 0 {
		container.Set(key, []any{value})
		return
	}
	array[0] = value
}

func toFinite(value any) (float64, bool) {
	number := 0.0
	switch v := value.(type) {
	case float64:
		number = v
	case float32:
		number = float64(v)
	case int:
		number = float64(v)
	case int64:
		number = float64(v)
	default:
		return 0, false
	}
	if math.IsNaN(number) || math.IsInf(number, 0) {
		return 0, false
	}
	return number, true
}

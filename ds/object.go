package ds

import (
	"bytes"
	"encoding/json"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
)

// NewObject creates an empty ordered map that does not escape HTML characters
// when marshalled. Every nested map decoded through the returned map inherits
// that setting.
func NewObject() *orderedmap.OrderedMap {
	object := orderedmap.New()
	object.SetEscapeHTML(false)
	return object
}

// ParseObject decodes JSON bytes whose top-level value is an object, keeping
// the order of keys at every level.
func ParseObject(bs []byte) (*orderedmap.OrderedMap, error) {
	trimmed := bytes.TrimSpace(bs)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, errors.New("ParseObject error: top-level value is not an object")
	}
	object := NewObject()
	if err := json.Unmarshal(trimmed, object); err != nil {
		return nil, errors.Wrap(err, "ParseObject error")
	}
	return object, nil
}

// GetObject returns the nested object stored at key. Both the value form produced
// by decoding and the pointer form produced by callers are accepted.
func GetObject(parent *orderedmap.OrderedMap, key string) (orderedmap.OrderedMap, bool) {
	value, ok := parent.Get(key)
	if !ok {
		return orderedmap.OrderedMap{}, false
	}
	switch object := value.(type) {
	case orderedmap.OrderedMap:
		return object, true
	case *orderedmap.OrderedMap:
		if object == nil {
			return orderedmap.OrderedMap{}, false
		}
		return *object, true
	default:
		return orderedmap.OrderedMap{}, false
	}
}

// UpdateObject applies replacer to the nested object at key and writes the result
// back into parent. Writing back is required: nested objects are stored by value,
// so keys added to a copy are not visible from the parent otherwise.
func UpdateObject(parent *orderedmap.OrderedMap, key string, replacer func(object *orderedmap.OrderedMap)) bool {
	object, ok := GetObject(parent, key)
	if !ok {
		return false
	}
	replacer(&object)
	parent.Set(key, object)
	return true
}

func GetNumber(object *orderedmap.OrderedMap, key string) (float64, bool) {
	value, ok := object.Get(key)
	if !ok {
		return 0, false
	}
	number, ok := value.(float64)
	return number, ok
}

func GetArray(object *orderedmap.OrderedMap, key string) ([]any, bool) {
	value, ok := object.Get(key)
	if !ok {
		return nil, false
	}
	array, ok := value.([]any)
	return array, ok
}

func GetStrings(object *orderedmap.OrderedMap, key string) []string {
	array, _ := GetArray(object, key)
	strs := make([]string, 0, len(array))
	for _, item := range array {
		if str, ok := item.(string); ok {
			strs = append(strs, str)
		}
	}
	return strs
}

// ToAnySlice converts ts into the []any shape that decoded JSON arrays have.
func ToAnySlice[T any](ts []T) []any {
	values := make([]any, 0, len(ts))
	for _, t := range ts {
		values = append(values, t)
	}
	return values
}

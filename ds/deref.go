package ds

import (
	"github.com/iancoleman/orderedmap"
)

// Deref walks value recursively and replaces every *orderedmap.OrderedMap with the
// map it points to, so that a model built partly by hand compares equal to one
// produced by decoding.
func Deref(value any) any {
	switch v := value.(type) {
	case *orderedmap.OrderedMap:
		if v == nil {
			return nil
		}
		return Deref(*v)
	case orderedmap.OrderedMap:
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			v.Set(key, Deref(child))
		}
		return v
	case []any:
		for i := range v {
			v[i] = Deref(v[i])
		}
		return v
	default:
		return value
	}
}

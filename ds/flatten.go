package ds

import (
	"fmt"

	"github.com/iancoleman/orderedmap"
)

type (
	// Leaf is a scalar value of a model together with the path that reaches it.
	Leaf struct {
		Path  string
		Value any
	}
)

// Flatten lists every scalar of value in document order. Object keys are joined
// with "." and array positions are written as "[i]". Empty objects and arrays
// are reported as leaves so that they stay visible.
func Flatten(value any) []Leaf {
	return flatten("", Deref(value))
}

func flatten(path string, value any) []Leaf {
	switch v := value.(type) {
	case orderedmap.OrderedMap:
		if len(v.Keys()) == 0 {
			return []Leaf{{Path: path, Value: "{}"}}
		}
		leaves := make([]Leaf, 0, len(v.Keys()))
		for _, key := range v.Keys() {
			child, _ := v.Get(key)
			childPath := key
			if path != "" {
				childPath = path + "." + key
			}
			leaves = append(leaves, flatten(childPath, child)...)
		}
		return leaves
	case []any:
		if len(v) == 0 {
			return []Leaf{{Path: path, Value: "[]"}}
		}
		leaves := make([]Leaf, 0, len(v))
		for i, child := range v {
			leaves = append(leaves, flatten(fmt.Sprintf("%s[%d]", path, i), child)...)
		}
		return leaves
	default:
		return []Leaf{{Path: path, Value: v}}
	}
}

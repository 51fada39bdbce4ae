package save

import (
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
)

func asObject(model any) (*orderedmap.OrderedMap, error) {
	object, ok := model.(*orderedmap.OrderedMap)
	if !ok || object == nil {
		return nil, errors.Errorf("save.Encode error: want *orderedmap.OrderedMap, got %T", model)
	}
	return object, nil
}

package cloverpit

import (
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"

	"saveworks/ds"
)

// Encode writes model as compact JSON, narrows it to Latin-1 and applies the
// keystream.
func Encode(model *orderedmap.OrderedMap, password string) ([]byte, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	if model == nil {
		return nil, errors.New("cloverpit.Encode error: nil model")
	}
	text, err := ds.MarshalCompact(model)
	if err != nil {
		return nil, errors.Wrap(err, "cloverpit.Encode error")
	}
	return Transform(toLatin1(text), password), nil
}

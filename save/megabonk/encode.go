package megabonk

import (
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"

	"saveworks/ds"
)

// Encode returns the Base64 text of the encrypted model.
func Encode(model *orderedmap.OrderedMap, config Config) ([]byte, error) {
	if model == nil {
		return nil, errors.New("megabonk.Encode error: nil model")
	}
	plaintext, err := ds.MarshalCompact(model)
	if err != nil {
		return nil, errors.Wrap(err, "megabonk.Encode error")
	}
	text, err := Encrypt(plaintext, config)
	if err != nil {
		return nil, err
	}
	return []byte(text), nil
}

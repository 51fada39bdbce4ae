package megabonk

import (
	"github.com/iancoleman/orderedmap"

	"saveworks/ds"
	"saveworks/save/saveerr"
)

func Decode(text []byte, config Config) (*orderedmap.OrderedMap, error) {
	plaintext, err := Decrypt(text, config)
	if err != nil {
		return nil, err
	}
	model, err := ds.ParseObject(plaintext)
	if err != nil {
		return nil, saveerr.NewFormatError(Game, "megabonk.Decode", err)
	}
	return model, nil
}

package cloverpit

import (
	"github.com/iancoleman/orderedmap"

	"saveworks/ds"
	"saveworks/save/saveerr"
)

// Decode reverses the keystream over the raw file bytes and parses the Latin-1
// JSON document inside. A wrong password surfaces as a FormatError since the result
// is not JSON.
func Decode(bs []byte, password string) (*orderedmap.OrderedMap, error) {
	if password == "" {
		return nil, ErrEmptyPassword
	}
	text, err := fromLatin1(Transform(bs, password))
	if err != nil {
		return nil, err
	}
	model, err := ds.ParseObject(text)
	if err != nil {
		return nil, saveerr.NewFormatError(Game, "cloverpit.Decode", err)
	}
	return model, nil
}

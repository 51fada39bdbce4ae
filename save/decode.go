package save

import (
	"github.com/pkg/errors"

	"saveworks/ds"
	"saveworks/save/cloverpit"
	"saveworks/save/megabonk"
	"saveworks/save/sworn"
)

// Decode returns the editable model of bs: an *orderedmap.OrderedMap for the JSON
// based games and a *sworn.Save for Sworn.
func Decode(game Game, bs []byte, opts Options) (any, error) {
	switch game {
	case GameCloverpit:
		model, err := cloverpit.Decode(bs, opts.Password)
		if err != nil {
			return nil, err
		}
		return model, nil
	case GameMegabonk:
		model, err := megabonk.Decode(bs, opts.AES)
		if err != nil {
			return nil, err
		}
		return model, nil
	case GameSworn:
		save, err := sworn.Decode(bs)
		if err != nil {
			return nil, err
		}
		return save, nil
	default:
		return nil, errors.Wrapf(ErrUnknownGame, "save.Decode error: %q", game)
	}
}

// DecodeSave returns the model of bs as indented JSON.
func DecodeSave(game Game, bs []byte, opts Options) ([]byte, error) {
	model, err := Decode(game, bs, opts)
	if err != nil {
		return nil, err
	}
	jsonBytes, err := ds.MarshalIndent(model, opts.Indent)
	if err != nil {
		return nil, errors.Wrap(err, "DecodeSave error")
	}
	return jsonBytes, nil
}

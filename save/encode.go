package save

import (
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tidwall/jsonc"

	"saveworks/ds"
	"saveworks/save/cloverpit"
	"saveworks/save/megabonk"
	"saveworks/save/sworn"
)

// EncodeSave turns an edited JSON document back into the bytes of a save.
// Comments and trailing commas are allowed in the input. Sworn saves are patched
// into original, which must be the file the JSON was decoded from; the other
// games ignore it.
func EncodeSave(game Game, input []byte, original []byte, opts Options) ([]byte, error) {
	jsonBytes := jsonc.ToJSON(input)

	switch game {
	case GameCloverpit, GameMegabonk:
		model, err := ds.ParseObject(jsonBytes)
		if err != nil {
			return nil, errors.Wrap(err, "EncodeSave error")
		}
		return Encode(game, model, original, opts)
	case GameSworn:
		save := sworn.Save{}
		if err := json.Unmarshal(jsonBytes, &save); err != nil {
			return nil, errors.Wrap(err, "EncodeSave error")
		}
		return Encode(game, &save, original, opts)
	default:
		return nil, errors.Wrapf(ErrUnknownGame, "EncodeSave error: %q", game)
	}
}

// Encode is the inverse of Decode. model must have the type Decode returns for
// game.
func Encode(game Game, model any, original []byte, opts Options) ([]byte, error) {
	switch game {
	case GameCloverpit:
		object, err := asObject(model)
		if err != nil {
			return nil, err
		}
		return cloverpit.Encode(object, opts.Password)
	case GameMegabonk:
		object, err := asObject(model)
		if err != nil {
			return nil, err
		}
		return megabonk.Encode(object, opts.AES)
	case GameSworn:
		save, ok := model.(*sworn.Save)
		if !ok {
			return nil, errors.Errorf("save.Encode error: want *sworn.Save, got %T", model)
		}
		if len(original) == 0 {
			return nil, ErrMissingOriginal
		}
		return sworn.Encode(save, original)
	default:
		return nil, errors.Wrapf(ErrUnknownGame, "save.Encode error: %q", game)
	}
}

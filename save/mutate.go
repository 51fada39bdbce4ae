package save

import (
	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"

	"saveworks/save/cloverpit"
	"saveworks/save/megabonk"
	"saveworks/save/sworn"
)

// Presets lists the preset names MutateSave accepts for game.
func Presets(game Game) []string {
	switch game {
	case GameCloverpit:
		return cloverpit.PresetNames()
	case GameMegabonk:
		return megabonk.PresetNames()
	case GameSworn:
		return sworn.PresetNames()
	default:
		return []string{}
	}
}

func lookupPresets[M any](game Game, presets map[string]M, names []string) ([]M, error) {
	mutations := make([]M, 0, len(names))
	for _, name := range names {
		mutation, ok := presets[name]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownPreset, "%s has no preset %q", game, name)
		}
		mutations = append(mutations, mutation)
	}
	return mutations, nil
}

// MutateSave decodes bs, applies the named presets in order and encodes the
// result. Unknown preset names are rejected before anything is decoded.
func MutateSave(game Game, bs []byte, presets []string, opts Options) ([]byte, error) {
	switch game {
	case GameCloverpit:
		mutations, err := lookupPresets(game, cloverpit.Presets, presets)
		if err != nil {
			return nil, err
		}
		return mutateObject(game, bs, opts, applyAll(mutations))
	case GameMegabonk:
		mutations, err := lookupPresets(game, megabonk.Presets, presets)
		if err != nil {
			return nil, err
		}
		return mutateObject(game, bs, opts, applyAll(mutations))
	case GameSworn:
		mutations, err := lookupPresets(game, sworn.Presets, presets)
		if err != nil {
			return nil, err
		}
		save, err := sworn.Decode(bs)
		if err != nil {
			return nil, err
		}
		for _, mutation := range mutations {
			if err := mutation(save); err != nil {
				return nil, errors.Wrap(err, "MutateSave error")
			}
		}
		return sworn.Encode(save, bs)
	default:
		return nil, errors.Wrapf(ErrUnknownGame, "MutateSave error: %q", game)
	}
}

func applyAll[M ~func(*orderedmap.OrderedMap) error](mutations []M) func(*orderedmap.OrderedMap) error {
	return func(model *orderedmap.OrderedMap) error {
		for _, mutation := range mutations {
			if err := mutation(model); err != nil {
				return err
			}
		}
		return nil
	}
}

func mutateObject(game Game, bs []byte, opts Options, mutate func(model *orderedmap.OrderedMap) error) ([]byte, error) {
	model, err := Decode(game, bs, opts)
	if err != nil {
		return nil, err
	}
	object, err := asObject(model)
	if err != nil {
		return nil, err
	}
	if err := mutate(object); err != nil {
		return nil, errors.Wrap(err, "MutateSave error")
	}
	return Encode(game, object, bs, opts)
}

// Package save decodes, encodes and mutates the saves of every supported game.
package save

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"saveworks/save/cloverpit"
	"saveworks/save/megabonk"
	"saveworks/save/saveerr"
	"saveworks/save/sworn"
)

type Game string

const (
	GameCloverpit Game = cloverpit.Game
	GameMegabonk  Game = megabonk.Game
	GameSworn     Game = sworn.Game
)

var Games = []Game{GameCloverpit, GameMegabonk, GameSworn}

type (
	FormatError = saveerr.FormatError

	Options struct {
		// Password is the Cloverpit keystream password.
		Password string
		AES      megabonk.Config
		// Indent is used for every JSON document DecodeSave produces.
		Indent string
	}
)

var (
	ErrUnknownGame     = errors.New("unknown game")
	ErrUnknownPreset   = errors.New("unknown preset")
	ErrMissingOriginal = errors.New("sworn saves are encoded by patching the original file, which was not given")
)

func DefaultOptions() Options {
	return Options{
		Password: cloverpit.DefaultPassword,
		AES:      megabonk.DefaultConfig,
		Indent:   "  ",
	}
}

func ParseGame(s string) (Game, error) {
	game := Game(strings.ToLower(strings.TrimSpace(s)))
	if !lo.Contains(Games, game) {
		return "", errors.Wrapf(ErrUnknownGame, "ParseGame error: %q", s)
	}
	return game, nil
}

func IsFormatError(err error) bool {
	return saveerr.IsFormatError(err)
}

// Package megabonk decodes and encodes Megabonk saves: a JSON document encrypted
// with AES-256-CBC under a fixed key and IV, stored as Base64 text.
//
// The IV never changes between saves. That is a property of the game's own save
// routine and must be kept for the game to load the file; it also means two saves
// with the same plaintext prefix share a ciphertext prefix.
package megabonk

import (
	"encoding/hex"

	"github.com/pkg/errors"
)

const (
	Game = "megabonk"

	keySize = 32
)

const (
	KeyGold                 = "gold"
	KeySilver               = "silver"
	KeyShopItems            = "shopItems"
	KeyCharacterProgression = "characterProgression"
	KeyXP                   = "xp"
	KeyNumRuns              = "numRuns"
	KeyAchievements         = "achievements"
	KeyClaimedAchievements  = "claimedAchievements"
	KeyPurchases            = "purchases"
	KeyMenuMeta             = "menuMeta"
	KeyMapsProgress         = "mapsProgress"

	KeyTierCompletions  = "tierCompletionsWithCharacters"
	KeyNumRunsByTier    = "numRunsByTier"
	KeyTierHighscores   = "tierHighscores"
	KeyTierFastestTimes = "tierFastestTimes"
)

type (
	// Config holds the AES key and IV as hex strings.
	Config struct {
		KeyHex string `json:"key_hex"`
		IVHex  string `json:"iv_hex"`
	}
)

// DefaultConfig holds the key and IV shipped inside the game.
var DefaultConfig = Config{
	KeyHex: "d940840d5ae7c7907b092437bc0c5b44aaf70e273e12d0fb4da2b8c767cc911d",
	IVHex:  "37864ef15c24bc0acbc60e3978ef1f06",
}

// Keys decodes and validates the hex key (32 bytes) and IV (16 bytes).
func (r Config) Keys() (key []byte, iv []byte, err error) {
	key, err = hex.DecodeString(r.KeyHex)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Config.Keys error: key_hex")
	}
	if len(key) != keySize {
		return nil, nil, errors.Errorf("Config.Keys error: key must be %d bytes, got %d", keySize, len(key))
	}
	iv, err = hex.DecodeString(r.IVHex)
	if err != nil {
		return nil, nil, errors.Wrap(err, "Config.Keys error: iv_hex")
	}
	if len(iv) != blockSize {
		return nil, nil, errors.Errorf("Config.Keys error: iv must be %d bytes, got %d", blockSize, len(iv))
	}
	return key, iv, nil
}

// Package cloverpit decodes and encodes Cloverpit "GameDataFull.json" saves: a
// JSON document obfuscated with a password-derived XOR keystream.
package cloverpit

import (
	"github.com/pkg/errors"
)

const (
	Game = "cloverpit"

	// DefaultPassword is the password the game itself uses for its saves.
	DefaultPassword = "uoiyiuh_+=-5216gh;lj??!/345"

	minIterations = 8
	maxIterations = 16
)

const (
	KeyGameplayData            = "gameplayData"
	KeyCoins                   = "coins_ByteArray"
	KeyDepositedCoins          = "depositedCoins_ByteArray"
	KeyCloverTickets           = "cloverTickets"
	KeySpinsLeft               = "spinsLeft"
	KeyMaxSpins                = "maxSpins"
	KeyExtraSpins              = "extraSpins"
	KeyPowerupLuck             = "powerupLuck"
	KeyActivationLuck          = "activationLuck"
	KeyStoreLuck               = "storeLuck"
	KeyPowerupsData            = "powerupsData"
	KeyBoughtTimes             = "boughtTimes"
	KeyEquippedPowerups        = "equippedPowerups"
	KeyStorePowerups           = "storePowerups"
	KeyDrawerPowerups          = "drawerPowerups"
	KeyDrawersUnlocked         = "drawersUnlocked"
	KeyHasEverUnlockedAPowerup = "hasEverUnlockedAPowerup"
	KeyAllCardsUnlocked        = "_allCardsUnlocked"
	KeyRunModSavingList        = "_runModSavingList"
	KeyRunModifierIdentifier   = "runModifierIdentifierAsString"
)

// EmptyPowerupSlot is how the game marks an unused powerup slot.
const EmptyPowerupSlot = "undefined"

var (
	ErrEmptyPassword       = errors.New("cloverpit: password must not be empty")
	ErrMissingGameplayData = errors.New("cloverpit: save has no gameplayData object")
)

package cloverpit

import (
	"math"
	"sort"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"

	"saveworks/ds"
)

type (
	Mutation func(save *orderedmap.OrderedMap) error
)

// StandardRunModifiers are the run modifiers a finished game knows about.
var StandardRunModifiers = []string{
	"defaultModifier",
	"phoneEnhancer",
	"redButtonOverload",
	"smallerStore",
	"smallItemPool",
	"interestsGrow",
	"lessSpaceMoreDiscount",
	"smallRoundsMoreRounds",
	"oneRoundPerDeadline",
	"headStart",
	"extraPacks",
	"_666BigBetDouble_SmallBetNoone",
	"_666DoubleChances_JackpotRecovers",
	"_666LastRoundGuaranteed",
	"drawerTableModifications",
	"drawerModGamble",
	"halven2SymbolsChances",
	"charmsRecycling",
	"allCharmsStoreModded",
	"bigDebt",
}

const holyAbilities = "holyGeneric_SpawnSacredCharm,holyPatternsValue_3LessElements," +
	"holyGeneric_MultiplierSymbols_1,holyGeneric_ReduceChargesNeeded_ForRedButtonCharms"

// Presets maps the names accepted by the CLI to mutations.
var Presets = map[string]Mutation{
	"max-currencies":        MaxAllCurrencies,
	"max-spins":             MaxSpins,
	"unlock-all-powerups":   UnlockAllPowerups,
	"unlock-all-drawers":    UnlockAllDrawers,
	"max-luck":              MaxLuck,
	"disable-666":           Disable666,
	"force-666":             Force666,
	"holy-phone":            TransformPhoneToHoly,
	"clear-equipped":        ClearEquippedPowerups,
	"clear-store":           ClearStorePowerups,
	"clear-drawers":         ClearDrawerPowerups,
	"add-all-run-modifiers": AddAllRunModifiers,
}

func PresetNames() []string {
	names := lo.Keys(Presets)
	sort.Strings(names)
	return names
}

func updateGameplayData(save *orderedmap.OrderedMap, replacer func(gd *orderedmap.OrderedMap)) error {
	if !ds.UpdateObject(save, KeyGameplayData, replacer) {
		return ErrMissingGameplayData
	}
	return nil
}

func MaxAllCurrencies(save *orderedmap.OrderedMap) error {
	return updateGameplayData(save, func(gd *orderedmap.OrderedMap) {
		SetByte(gd, KeyCoins, 255)
		SetByte(gd, KeyDepositedCoins, 255)
		gd.Set(KeyCloverTickets, 999999.0)
	})
}

func MaxSpins(save *orderedmap.OrderedMap) error {
	return updateGameplayData(save, func(gd *orderedmap.OrderedMap) {
		gd.Set(KeySpinsLeft, 999.0)
		gd.Set(KeyMaxSpins, 999.0)
		gd.Set(KeyExtraSpins, 999.0)
	})
}

// UnlockAllPowerups marks every known powerup as bought at least once.
func UnlockAllPowerups(save *orderedmap.OrderedMap) error {
	err := updateGameplayData(save, func(gd *orderedmap.OrderedMap) {
		powerups, ok := ds.GetArray(gd, KeyPowerupsData)
		if !ok {
			return
		}
		for i, item := range powerups {
			powerup, ok := ds.Deref(item).(orderedmap.OrderedMap)
			if !ok {
				continue
			}
			boughtTimes, _ := ds.GetNumber(&powerup, KeyBoughtTimes)
			powerup.Set(KeyBoughtTimes, math.Max(1, boughtTimes))
			powerups[i] = powerup
		}
	})
	if err != nil {
		return err
	}
	save.Set(KeyHasEverUnlockedAPowerup, true)
	save.Set(KeyAllCardsUnlocked, true)
	return nil
}

func UnlockAllDrawers(save *orderedmap.OrderedMap) error {
	save.Set(KeyDrawersUnlocked, []any{true, true, true, true})
	return nil
}

func MaxLuck(save *orderedmap.OrderedMap) error {
	return updateGameplayData(save, func(gd *orderedmap.OrderedMap) {
		gd.Set(KeyPowerupLuck, 10.0)
		gd.Set(KeyActivationLuck, 10.0)
		gd.Set(KeyStoreLuck, 10.0)
	})
}

func Disable666(save *orderedmap.OrderedMap) error {
	return updateGameplayData(save, func(gd *orderedmap.OrderedMap) {
		gd.Set("_666Chance", 0.0)
		gd.Set("_666BookedSpin", -1.0)
		gd.Set("_666SuppressedSpinsLeft", 999.0)
	})
}

func Force666(save *orderedmap.OrderedMap) error {
	return updateGameplayData(save, func(gd *orderedmap.OrderedMap) {
		gd.Set("_666Chance", 1.0)
		gd.Set("_666BookedSpin", 1.0)
	})
}

func TransformPhoneToHoly(save *orderedmap.OrderedMap) error {
	return updateGameplayData(save, func(gd *orderedmap.OrderedMap) {
		specialCalls, _ := ds.GetNumber(gd, "_phone_SpecialCalls_Counter")
		gd.Set("_phoneAlreadyTransformed", true)
		gd.Set("_phone_bookSpecialCall", true)
		gd.Set("_phone_EvilCallsIgnored_Counter", 3.0)
		gd.Set("phoneEasyCounter_SkippedCalls_Evil", 3.0)
		gd.Set("_phone_SpecialCalls_Counter", math.Max(specialCalls, 1))
		gd.Set("_phone_AbilitiesToPick_String", holyAbilities)
		gd.Set("_phone_lastAbilityCategory", 2.0)
	})
}

func ClearEquippedPowerups(save *orderedmap.OrderedMap) error {
	return clearPowerupSlots(save, KeyEquippedPowerups, 30)
}

func ClearStorePowerups(save *orderedmap.OrderedMap) error {
	return clearPowerupSlots(save, KeyStorePowerups, 4)
}

func ClearDrawerPowerups(save *orderedmap.OrderedMap) error {
	return clearPowerupSlots(save, KeyDrawerPowerups, 4)
}

func clearPowerupSlots(save *orderedmap.OrderedMap, key string, n int) error {
	return updateGameplayData(save, func(gd *orderedmap.OrderedMap) {
		gd.Set(key, ds.ToAnySlice(ds.Repeat(n, EmptyPowerupSlot)))
	})
}

// AddAllRunModifiers appends an empty record for every standard run modifier the
// save does not list yet. Existing records are left untouched.
func AddAllRunModifiers(save *orderedmap.OrderedMap) error {
	modifiers, _ := ds.GetArray(save, KeyRunModSavingList)
	existingNames := lo.FilterMap(
		modifiers,
		func(item any, _ int) (string, bool) {
			modifier, ok := ds.Deref(item).(orderedmap.OrderedMap)
			if !ok {
				return "", false
			}
			name, _ := modifier.Get(KeyRunModifierIdentifier)
			nameStr, ok := name.(string)
			return nameStr, ok
		},
	)
	for _, name := range StandardRunModifiers {
		if lo.Contains(existingNames, name) {
			continue
		}
		modifier := ds.NewObject()
		modifier.Set(KeyRunModifierIdentifier, name)
		modifier.Set("ownedCount", 0.0)
		modifier.Set("unlockedTimes", 0.0)
		modifier.Set("playedTimes", 0.0)
		modifier.Set("wonTimes", 0.0)
		modifier.Set("foilLevel", 0.0)
		modifiers = append(modifiers, *modifier)
	}
	if modifiers == nil {
		modifiers = []any{}
	}
	save.Set(KeyRunModSavingList, modifiers)
	return nil
}

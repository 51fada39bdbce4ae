package megabonk

import (
	"sort"

	"github.com/iancoleman/orderedmap"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"saveworks/ds"
)

type (
	Mutation func(save *orderedmap.OrderedMap) error
)

var ErrMissingMenuMeta = errors.New("megabonk: save has no menuMeta object")

// Presets maps the names accepted by the CLI to the mutations that need no
// further argument.
var Presets = map[string]Mutation{
	"max-currencies":     MaxAllCurrencies,
	"max-shop-items":     MaxAllShopItems,
	"max-characters":     MaxAllCharacters,
	"unlock-characters":  UnlockAllCharacters,
	"claim-achievements": UnlockAllAchievements,
}

func PresetNames() []string {
	names := lo.Keys(Presets)
	sort.Strings(names)
	return names
}

func MaxAllCurrencies(save *orderedmap.OrderedMap) error {
	save.Set(KeyGold, 999999.0)
	save.Set(KeySilver, 999999.0)
	return nil
}

func MaxAllShopItems(save *orderedmap.OrderedMap) error {
	ds.UpdateObject(save, KeyShopItems, func(items *orderedmap.OrderedMap) {
		for _, item := range items.Keys() {
			items.Set(item, 999.0)
		}
	})
	return nil
}

func MaxAllCharacters(save *orderedmap.OrderedMap) error {
	setAllCharacters(save, 999999, 100)
	return nil
}

// UnlockAllCharacters gives every known character the minimum progress that
// counts as unlocked.
func UnlockAllCharacters(save *orderedmap.OrderedMap) error {
	setAllCharacters(save, 100, 1)
	return nil
}

func setAllCharacters(save *orderedmap.OrderedMap, xp float64, numRuns float64) {
	ds.UpdateObject(save, KeyCharacterProgression, func(characters *orderedmap.OrderedMap) {
		for _, character := range characters.Keys() {
			progress := ds.NewObject()
			progress.Set(KeyXP, xp)
			progress.Set(KeyNumRuns, numRuns)
			characters.Set(character, *progress)
		}
	})
}

// UnlockAllAchievements claims every achievement the save has earned.
func UnlockAllAchievements(save *orderedmap.OrderedMap) error {
	achievements := ds.GetStrings(save, KeyAchievements)
	save.Set(KeyClaimedAchievements, ds.ToAnySlice(achievements))
	return nil
}

func UnlockAllPurchases(save *orderedmap.OrderedMap, availablePurchases []string) error {
	save.Set(KeyPurchases, ds.ToAnySlice(availablePurchases))
	return nil
}

func newMapProgress() orderedmap.OrderedMap {
	completions := ds.NewObject()
	completions.Set("0", []any{})

	progress := ds.NewObject()
	progress.Set("tierNotifications", []any{})
	progress.Set("tierChallengeNotifications", []any{})
	progress.Set("newMapNotification", true)
	progress.Set("lastSelectTier", 0.0)
	progress.Set("completedTiers", []any{})
	progress.Set(KeyTierCompletions, *completions)
	progress.Set(KeyNumRunsByTier, *ds.NewObject())
	progress.Set(KeyTierHighscores, *ds.NewObject())
	progress.Set(KeyTierFastestTimes, *ds.NewObject())
	return *progress
}

func updateMapsProgress(save *orderedmap.OrderedMap, replacer func(maps *orderedmap.OrderedMap)) error {
	ok := ds.UpdateObject(save, KeyMenuMeta, func(menuMeta *orderedmap.OrderedMap) {
		if _, ok := ds.GetObject(menuMeta, KeyMapsProgress); !ok {
			menuMeta.Set(KeyMapsProgress, *ds.NewObject())
		}
		ds.UpdateObject(menuMeta, KeyMapsProgress, replacer)
	})
	if !ok {
		return ErrMissingMenuMeta
	}
	return nil
}

// UnlockMap adds a fresh progress record for mapName. Maps that already have
// one are left as they are.
func UnlockMap(save *orderedmap.OrderedMap, mapName string) error {
	return updateMapsProgress(save, func(maps *orderedmap.OrderedMap) {
		if existing, ok := maps.Get(mapName); ok && existing != nil {
			return
		}
		maps.Set(mapName, newMapProgress())
	})
}

// updateMapProgress applies replacer to the progress record of mapName. Unknown
// maps are ignored.
func updateMapProgress(save *orderedmap.OrderedMap, mapName string, replacer func(progress *orderedmap.OrderedMap)) error {
	return updateMapsProgress(save, func(maps *orderedmap.OrderedMap) {
		ds.UpdateObject(maps, mapName, replacer)
	})
}

func setTierValue(progress *orderedmap.OrderedMap, field string, tier string, value any) {
	if _, ok := ds.GetObject(progress, field); !ok {
		progress.Set(field, *ds.NewObject())
	}
	ds.UpdateObject(progress, field, func(tiers *orderedmap.OrderedMap) {
		tiers.Set(tier, value)
	})
}

func UpdateMapTierCompletions(save *orderedmap.OrderedMap, mapName string, tier string, characters []string) error {
	return updateMapProgress(save, mapName, func(progress *orderedmap.OrderedMap) {
		setTierValue(progress, KeyTierCompletions, tier, ds.ToAnySlice(characters))
	})
}

func UpdateMapTierRuns(save *orderedmap.OrderedMap, mapName string, tier string, runs float64) error {
	return updateMapProgress(save, mapName, func(progress *orderedmap.OrderedMap) {
		setTierValue(progress, KeyNumRunsByTier, tier, runs)
	})
}

func UpdateMapTierHighscore(save *orderedmap.OrderedMap, mapName string, tier string, score float64) error {
	return updateMapProgress(save, mapName, func(progress *orderedmap.OrderedMap) {
		setTierValue(progress, KeyTierHighscores, tier, score)
	})
}

func UpdateMapTierFastestTime(save *orderedmap.OrderedMap, mapName string, tier string, time float64) error {
	return updateMapProgress(save, mapName, func(progress *orderedmap.OrderedMap) {
		setTierValue(progress, KeyTierFastestTimes, tier, time)
	})
}

// AddTierToMap resets every per-tier record of tier on mapName.
func AddTierToMap(save *orderedmap.OrderedMap, mapName string, tier string) error {
	return updateMapProgress(save, mapName, func(progress *orderedmap.OrderedMap) {
		setTierValue(progress, KeyTierCompletions, tier, []any{})
		setTierValue(progress, KeyNumRunsByTier, tier, 0.0)
		setTierValue(progress, KeyTierHighscores, tier, 0.0)
		setTierValue(progress, KeyTierFastestTimes, tier, 0.0)
	})
}

func RemoveTierFromMap(save *orderedmap.OrderedMap, mapName string, tier string) error {
	return updateMapProgress(save, mapName, func(progress *orderedmap.OrderedMap) {
		for _, field := range []string{KeyTierCompletions, KeyNumRunsByTier, KeyTierHighscores, KeyTierFastestTimes} {
			ds.UpdateObject(progress, field, func(tiers *orderedmap.OrderedMap) {
				tiers.Delete(tier)
			})
		}
	})
}

// ToggleCharacterInTier adds character to the completions of tier, or removes it
// when it is already there.
func ToggleCharacterInTier(save *orderedmap.OrderedMap, mapName string, tier string, character string) error {
	return updateMapProgress(save, mapName, func(progress *orderedmap.OrderedMap) {
		characters := []string{}
		if tiers, ok := ds.GetObject(progress, KeyTierCompletions); ok {
			characters = ds.GetStrings(&tiers, tier)
		}
		if lo.Contains(characters, character) {
			characters = lo.Without(characters, character)
		} else {
			characters = append(characters, character)
		}
		setTierValue(progress, KeyTierCompletions, tier, ds.ToAnySlice(characters))
	})
}

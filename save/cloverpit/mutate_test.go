package cloverpit

import (
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saveworks/ds"
)

func parseSave(t *testing.T, s string) *orderedmap.OrderedMap {
	save, err := ds.ParseObject([]byte(s))
	require.NoError(t, err)
	return save
}

func dump(t *testing.T, save *orderedmap.OrderedMap) string {
	bs, err := ds.MarshalCompact(save)
	require.NoError(t, err)
	return string(bs)
}

func TestMaxAllCurrencies(t *testing.T) {
	save := parseSave(t, `{"gameplayData":{"coins_ByteArray":[3,0],"cloverTickets":1}}`)

	require.NoError(t, MaxAllCurrencies(save))

	assert.Equal(
		t,
		`{"gameplayData":{"coins_ByteArray":[255,0],"cloverTickets":999999,"depositedCoins_ByteArray":[255]}}`,
		dump(t, save),
	)
}

func TestMutations_MissingGameplayData(t *testing.T) {
	for _, name := range []string{"max-currencies", "max-spins", "max-luck", "disable-666", "clear-store"} {
		save := parseSave(t, `{"runsDone":1}`)
		assert.ErrorIs(t, Presets[name](save), ErrMissingGameplayData, name)
	}
}

func TestUnlockAllPowerups(t *testing.T) {
	save := parseSave(t, `{"gameplayData":{"powerupsData":[{"boughtTimes":0},{"boughtTimes":4},{"x":1}]}}`)

	require.NoError(t, UnlockAllPowerups(save))

	assert.Equal(
		t,
		`{"gameplayData":{"powerupsData":[{"boughtTimes":1},{"boughtTimes":4},{"x":1,"boughtTimes":1}]},`+
			`"hasEverUnlockedAPowerup":true,"_allCardsUnlocked":true}`,
		dump(t, save),
	)
}

func TestTransformPhoneToHoly_KeepsHigherCounter(t *testing.T) {
	save := parseSave(t, `{"gameplayData":{"_phone_SpecialCalls_Counter":5}}`)

	require.NoError(t, TransformPhoneToHoly(save))

	gd, _ := ds.GetObject(save, KeyGameplayData)
	counter, _ := ds.GetNumber(&gd, "_phone_SpecialCalls_Counter")
	assert.Equal(t, 5.0, counter)
	category, _ := ds.GetNumber(&gd, "_phone_lastAbilityCategory")
	assert.Equal(t, 2.0, category)
}

func TestClearPowerupSlots(t *testing.T) {
	save := parseSave(t, `{"gameplayData":{"equippedPowerups":["a"]}}`)

	require.NoError(t, ClearEquippedPowerups(save))
	require.NoError(t, ClearDrawerPowerups(save))

	gd, _ := ds.GetObject(save, KeyGameplayData)
	assert.Equal(t, ds.Repeat(30, EmptyPowerupSlot), ds.GetStrings(&gd, KeyEquippedPowerups))
	assert.Equal(t, ds.Repeat(4, EmptyPowerupSlot), ds.GetStrings(&gd, KeyDrawerPowerups))
}

func TestAddAllRunModifiers(t *testing.T) {
	save := parseSave(t, `{"_runModSavingList":[{"runModifierIdentifierAsString":"headStart","ownedCount":3}]}`)

	require.NoError(t, AddAllRunModifiers(save))
	require.NoError(t, AddAllRunModifiers(save))

	modifiers, _ := ds.GetArray(save, KeyRunModSavingList)
	assert.Len(t, modifiers, len(StandardRunModifiers))
	first := modifiers[0].(orderedmap.OrderedMap)
	owned, _ := ds.GetNumber(&first, "ownedCount")
	assert.Equal(t, 3.0, owned)

	names := lo.Map(modifiers, func(item any, _ int) string {
		modifier := item.(orderedmap.OrderedMap)
		name, _ := modifier.Get(KeyRunModifierIdentifier)
		return name.(string)
	})
	assert.ElementsMatch(t, StandardRunModifiers, names)
}

func TestPresetNames(t *testing.T) {
	names := PresetNames()
	assert.Len(t, names, len(Presets))
	assert.Contains(t, names, "max-currencies")
}

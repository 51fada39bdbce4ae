package megabonk

import (
	"testing"

	"github.com/iancoleman/orderedmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saveworks/ds"
)

const emptyMapProgress = `{"tierNotifications":[],"tierChallengeNotifications":[],` +
	`"newMapNotification":true,"lastSelectTier":0,"completedTiers":[],` +
	`"tierCompletionsWithCharacters":{"0":[]},"numRunsByTier":{},"tierHighscores":{},"tierFastestTimes":{}}`

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

func TestPresets(t *testing.T) {
	tests := map[string]struct {
		input    string
		expected string
	}{
		"max-currencies": {
			input:    `{"gold":1,"silver":2,"other":3}`,
			expected: `{"gold":999999,"silver":999999,"other":3}`,
		},
		"max-shop-items": {
			input:    `{"shopItems":{"magnet":1,"armor":0}}`,
			expected: `{"shopItems":{"magnet":999,"armor":999}}`,
		},
		"max-characters": {
			input:    `{"characterProgression":{"fox":{"xp":3,"numRuns":1,"skin":1},"cat":{}}}`,
			expected: `{"characterProgression":{"fox":{"xp":999999,"numRuns":100},"cat":{"xp":999999,"numRuns":100}}}`,
		},
		"unlock-characters": {
			input:    `{"characterProgression":{"fox":{}}}`,
			expected: `{"characterProgression":{"fox":{"xp":100,"numRuns":1}}}`,
		},
		"claim-achievements": {
			input:    `{"achievements":["a","b"],"claimedAchievements":["a"]}`,
			expected: `{"achievements":["a","b"],"claimedAchievements":["a","b"]}`,
		},
	}
	for name, test := range tests {
		save := parseSave(t, test.input)
		require.NoError(t, Presets[name](save), name)
		assert.Equal(t, test.expected, dump(t, save), name)
	}
	assert.Equal(
		t,
		[]string{"claim-achievements", "max-characters", "max-currencies", "max-shop-items", "unlock-characters"},
		PresetNames(),
	)
}

func TestUnlockAllPurchases(t *testing.T) {
	save := parseSave(t, `{"purchases":["x"]}`)
	require.NoError(t, UnlockAllPurchases(save, []string{"a", "b"}))
	assert.Equal(t, `{"purchases":["a","b"]}`, dump(t, save))
}

func TestUnlockMap(t *testing.T) {
	save := parseSave(t, `{"menuMeta":{"volume":1}}`)
	require.NoError(t, UnlockMap(save, "forest"))
	assert.Equal(
		t,
		`{"menuMeta":{"volume":1,"mapsProgress":{"forest":`+emptyMapProgress+`}}}`,
		dump(t, save),
	)

	existing := `{"menuMeta":{"mapsProgress":{"forest":{"lastSelectTier":2}}}}`
	save = parseSave(t, existing)
	require.NoError(t, UnlockMap(save, "forest"))
	assert.Equal(t, existing, dump(t, save))
}

func TestUnlockMap_MissingMenuMeta(t *testing.T) {
	save := parseSave(t, `{}`)
	assert.ErrorIs(t, UnlockMap(save, "forest"), ErrMissingMenuMeta)
}

func TestMapTierHelpers(t *testing.T) {
	save := parseSave(t, `{"menuMeta":{"mapsProgress":{}}}`)
	require.NoError(t, UnlockMap(save, "forest"))

	require.NoError(t, AddTierToMap(save, "forest", "1"))
	require.NoError(t, UpdateMapTierRuns(save, "forest", "1", 5))
	require.NoError(t, UpdateMapTierHighscore(save, "forest", "1", 1200))
	require.NoError(t, UpdateMapTierFastestTime(save, "forest", "1", 93.5))
	require.NoError(t, UpdateMapTierCompletions(save, "forest", "1", []string{"fox"}))
	require.NoError(t, ToggleCharacterInTier(save, "forest", "1", "cat"))
	require.NoError(t, ToggleCharacterInTier(save, "forest", "1", "fox"))

	progress := dump(t, save)
	assert.Contains(t, progress, `"tierCompletionsWithCharacters":{"0":[],"1":["cat"]}`)
	assert.Contains(t, progress, `"numRunsByTier":{"1":5}`)
	assert.Contains(t, progress, `"tierHighscores":{"1":1200}`)
	assert.Contains(t, progress, `"tierFastestTimes":{"1":93.5}`)

	require.NoError(t, RemoveTierFromMap(save, "forest", "1"))
	assert.Equal(
		t,
		`{"menuMeta":{"mapsProgress":{"forest":`+emptyMapProgress+`}}}`,
		dump(t, save),
	)
}

func TestMapTierHelpers_UnknownMap(t *testing.T) {
	input := `{"menuMeta":{"mapsProgress":{"forest":{}}}}`
	save := parseSave(t, input)

	require.NoError(t, AddTierToMap(save, "desert", "1"))
	require.NoError(t, ToggleCharacterInTier(save, "desert", "1", "fox"))
	assert.Equal(t, input, dump(t, save))
}

func TestToggleCharacterInTier_CreatesTier(t *testing.T) {
	save := parseSave(t, `{"menuMeta":{"mapsProgress":{"forest":{}}}}`)
	require.NoError(t, ToggleCharacterInTier(save, "forest", "2", "fox"))
	assert.Equal(
		t,
		`{"menuMeta":{"mapsProgress":{"forest":{"tierCompletionsWithCharacters":{"2":["fox"]}}}}}`,
		dump(t, save),
	)
}

package sworn

import (
	"sort"

	"github.com/samber/lo"
)

type (
	Mutation func(save *Save) error

	Currencies struct {
		CrystalShards int64 `json:"crystalShards"`
		FairyEmbers   int64 `json:"fairyEmbers"`
		GrailWater    int64 `json:"grailWater"`
		Moonstone     int64 `json:"moonstone"`
		Silk          int64 `json:"silk"`
	}
)

// CurrencyIdentifiers maps currency names to the text of their medal segments.
var CurrencyIdentifiers = map[string]string{
	"crystalShards": "medaocebbencincbicdalchabd",
	"fairyEmbers":   "medaocebbencinfaibiembeb",
	"grailWater":    "medaocebbencincingbailgadeb",
	"moonstone":     "medaocebbencinmooncdone",
	"silk":          "medaocebbencincilk",
}

const maxCurrency = 999999

var Presets = map[string]Mutation{
	"max-currencies": MaxAllCurrencies,
}

func PresetNames() []string {
	names := lo.Keys(Presets)
	sort.Strings(names)
	return names
}

func MaxAllCurrencies(save *Save) error {
	return UpdateCurrencies(save, Currencies{
		CrystalShards: maxCurrency,
		FairyEmbers:   maxCurrency,
		GrailWater:    maxCurrency,
		Moonstone:     maxCurrency,
		Silk:          maxCurrency,
	})
}

// UpdateCurrencies sets the value of every currency medal segment.
func UpdateCurrencies(save *Save, currencies Currencies) error {
	values := map[string]int64{
		CurrencyIdentifiers["crystalShards"]: currencies.CrystalShards,
		CurrencyIdentifiers["fairyEmbers"]:   currencies.FairyEmbers,
		CurrencyIdentifiers["grailWater"]:    currencies.GrailWater,
		CurrencyIdentifiers["moonstone"]:     currencies.Moonstone,
		CurrencyIdentifiers["silk"]:          currencies.Silk,
	}
	save.Segments = lo.Map(save.Segments, func(segment Segment, _ int) Segment {
		if segment.Category != CategoryMedal {
			return segment
		}
		if value, ok := values[segment.Text]; ok {
			segment.Value = lo.ToPtr(value)
		}
		return segment
	})
	return nil
}

package sworn

import (
	"strings"

	"github.com/samber/lo"
)

type (
	categoryRule struct {
		Matches  func(text string) bool
		Category Category
	}
)

func hasPrefix(prefix string) func(string) bool {
	return func(text string) bool {
		return strings.HasPrefix(text, prefix)
	}
}

func contains(substr string) func(string) bool {
	return func(text string) bool {
		return strings.Contains(text, substr)
	}
}

func equals(s string) func(string) bool {
	return func(text string) bool {
		return text == s
	}
}

// categoryRules are tried in order; the first match wins.
var categoryRules = []categoryRule{
	{hasPrefix("accolade"), CategoryAchievement},
	{hasPrefix("codehn"), CategoryCode},
	{hasPrefix("meda"), CategoryMedal},
	{hasPrefix(" laieb"), CategoryPlayer},
	{hasPrefix(" ebchace"), CategoryPurchase},
	{contains("dialog"), CategoryDialog},
	{contains("loadoedn"), CategorySaveState},
	{hasPrefix("dbackedc"), CategoryTracked},
	{hasPrefix("biome"), CategoryBiome},
	{equals("dada"), CategoryCurrency},
	{equals("febcion"), CategoryMetadata},
	{equals(""), CategorySeparator},
}

func Categorize(text string) Category {
	rule, ok := lo.Find(categoryRules, func(rule categoryRule) bool {
		return rule.Matches(text)
	})
	if !ok {
		return CategoryOther
	}
	return rule.Category
}

package usecase

import (
	"sort"
	"strings"

	"insight-srv/internal/analysis"
)

const (
	trendCategoryPoints = 10
	trendyMinCategories = 2
)

// matchTrends matches the text against the trigger-phrase table. A
// category matches iff at least one of its trigger phrases occurs.
func (uc *implUseCase) matchTrends(text string) analysis.TrendFeatures {
	lower := strings.ToLower(text)

	categories := make([]string, 0, len(uc.lex.TrendTriggers))
	for category, triggers := range uc.lex.TrendTriggers {
		if containsAny(lower, triggers) {
			categories = append(categories, category)
		}
	}
	sort.Strings(categories)

	return analysis.TrendFeatures{
		Categories: categories,
		Score:      len(categories) * trendCategoryPoints,
		IsTrendy:   len(categories) >= trendyMinCategories,
	}
}

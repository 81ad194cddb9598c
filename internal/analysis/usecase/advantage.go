package usecase

import (
	"strings"

	"insight-srv/internal/analysis"
)

const noAdvantageMessage = "Standard video without clear advantages"

// competitiveAdvantage collects the matched advantage clauses,
// pipe-joined, or the fixed no-advantage sentence.
func (uc *implUseCase) competitiveAdvantage(input analysis.AnalyzeInput) string {
	var advantages []string

	if input.Views > 100_000 {
		advantages = append(advantages, "Mass audience reach")
	}
	if input.EngagementRate > 5 {
		advantages = append(advantages, "Exceptionally high engagement")
	}
	if input.IsShort && input.Views > 50_000 {
		advantages = append(advantages, "Successful Shorts format")
	}
	if input.CommentRatio > 1 {
		advantages = append(advantages, "Active discussion in comments")
	}
	if input.HasChapters {
		advantages = append(advantages, "Convenient chapter navigation")
	}

	minutes := input.DurationSeconds / 60
	if minutes > 10 && input.Views > 10_000 {
		advantages = append(advantages, "Long format with strong retention")
	} else if input.DurationSeconds > 0 && minutes < 1 && input.Views > 50_000 {
		advantages = append(advantages, "Viral short format")
	}

	if len(advantages) == 0 {
		return noAdvantageMessage
	}
	return strings.Join(advantages, " | ")
}

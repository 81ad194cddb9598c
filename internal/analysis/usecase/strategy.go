package usecase

import (
	"fmt"
	"strings"

	"insight-srv/internal/analysis"
)

// contentStrategy assembles the fixed strategy-text blocks keyed by the
// classifications computed upstream. No free-form generation.
func (uc *implUseCase) contentStrategy(input analysis.AnalyzeInput, result analysis.AnalysisResult) string {
	var b []string

	// Niche
	b = append(b, "NICHE AND POSITIONING:")
	if len(result.TopKeywords) > 0 {
		b = append(b, fmt.Sprintf("- Key topics: %s", strings.Join(result.TopKeywords, ", ")))
		b = append(b, "- Build a series of 5-7 videos around these topics")
	}

	// Format
	b = append(b, "", "OPTIMAL FORMAT:")
	if input.IsShort {
		b = append(b,
			"- Focus on Shorts - publish 1-2 per day",
			"- Duration: 15-30 seconds",
			"- Vertical 9:16 format",
			"- Hook the viewer in the first 3 seconds")
	} else if input.DurationSeconds > 0 {
		b = append(b,
			fmt.Sprintf("- Target duration: around %d minutes", input.DurationSeconds/60),
			"- Structure: intro (15s) -> content -> call to action")
	}

	// Schedule
	b = append(b, "", "PUBLISHING SCHEDULE:")
	if input.PublishedAt != nil {
		b = append(b,
			fmt.Sprintf("- Best slot: %s at %d:00", input.PublishedAt.Weekday(), input.PublishedAt.Hour()),
			"- Cadence: at least 2-3 videos per week")
	} else {
		b = append(b, "- Cadence: at least 2-3 videos per week")
	}

	// Algorithm optimization
	b = append(b, "", "ALGORITHM OPTIMIZATION:")
	if result.Title.HasClickbait || result.Title.HasPowerWords {
		b = append(b,
			"- Keep using emotional titles",
			"- Formula: [Number] + [Outcome] + [Timeframe]")
	}
	b = append(b,
		"- Custom thumbnail with large text",
		"- A/B test your titles")

	// Content mix
	b = append(b, "", "MONTHLY CONTENT MIX:")
	matched := make(map[string]bool, len(result.Trends.Categories))
	for _, cat := range result.Trends.Categories {
		matched[cat] = true
	}
	// Fixed 40/30/20 presentation order, independent of category sort.
	if matched["tutorial"] {
		b = append(b, "- Tutorials (40%)")
	}
	if matched["review"] {
		b = append(b, "- Reviews and unboxings (30%)")
	}
	if matched["reaction"] {
		b = append(b, "- Reactions and opinions (20%)")
	}
	b = append(b, "- Entertainment content (10%)")

	// Monetization
	b = append(b, "", "MONETIZATION:")
	if input.Views > 100_000 {
		b = append(b,
			"- Sponsorship potential: high",
			"- Typical rate: $20-50 per 1000 views")
	} else if input.Views > 10_000 {
		b = append(b,
			"- Affiliate potential: medium",
			"- Focus on affiliate links")
	}
	b = append(b, "- Build a funnel: YouTube -> Email -> Product")

	// Growth
	b = append(b, "", "GROWTH PLAN:")
	if result.Metrics.GrowthRate == analysis.GrowthExplosive || result.Metrics.GrowthRate == analysis.GrowthRapid {
		b = append(b,
			"- Double the publishing cadence",
			"- Launch follow-up series in the same vein")
	}
	b = append(b,
		"- Collaborate with similar channels",
		"- Cross-promote on other platforms",
		"- Build playlists to extend watch sessions")

	// KPIs
	b = append(b, "", "KPIS TO TRACK:",
		"- Thumbnail CTR: target >10%",
		"- Retention: >50% at the 30% mark",
		"- Engagement: >5%",
		"- Subscriber growth: +10-20% per month")

	return strings.Join(b, "\n")
}

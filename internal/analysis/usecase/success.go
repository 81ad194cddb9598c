package usecase

import (
	"fmt"
	"strings"
	"time"

	"insight-srv/internal/analysis"
)

const noSuccessFactorsMessage = "Standard video without clear virality factors. Success depends on content quality."

const successMaxScore = 20

// successFactors builds the weighted, explainable success report:
// a percentage, the factor list and replication tips gated on the
// per-axis scores.
func (uc *implUseCase) successFactors(input analysis.AnalyzeInput, result analysis.AnalysisResult) string {
	var factors []string
	scores := map[string]int{}

	// Title
	if result.Title.HasClickbait {
		factors = append(factors, "Intriguing title with clickbait elements")
		scores["title"] = 3
	} else if result.Title.HasPowerWords {
		factors = append(factors, "Power words in the title attract attention")
		scores["title"] = 2
	}
	if result.Title.HasNumbers {
		factors = append(factors, "Numbers in the title build trust and CTR")
		scores["title"]++
	}

	// Publish timing
	if input.PublishedAt != nil {
		weekday := input.PublishedAt.Weekday()
		hour := input.PublishedAt.Hour()
		if weekday == time.Friday || weekday == time.Saturday || weekday == time.Sunday {
			factors = append(factors, "Published on a weekend, when viewers have more free time")
			scores["timing"] = 2
		}
		if hour >= 18 && hour <= 22 {
			factors = append(factors, "Published in prime time (18:00-22:00)")
			scores["timing"]++
		}
	}

	// Engagement
	quality := result.Metrics.EngagementQuality
	if quality == analysis.EngagementExcellent || quality == analysis.EngagementExceptional {
		factors = append(factors, fmt.Sprintf("%s engagement pushes the algorithm to promote the video", strings.ToUpper(quality)))
		scores["engagement"] = 3
	}
	if result.Metrics.DiscussionLevel == analysis.DiscussionHigh {
		factors = append(factors, "High discussion level means more comments and better ranking")
		scores["engagement"]++
	}

	// Format
	viewLevel := result.Metrics.ViewLevel
	if input.IsShort {
		if viewLevel == analysis.ViewLevelViral || viewLevel == analysis.ViewLevelMegaViral {
			factors = append(factors, "Shorts plus virality means exponential growth")
			scores["format"] = 3
		}
	} else if input.DurationSeconds > 0 &&
		(viewLevel == analysis.ViewLevelPopular || viewLevel == analysis.ViewLevelViral || viewLevel == analysis.ViewLevelMegaViral) {
		factors = append(factors, "Long format with strong retention")
		scores["format"] = 2
	}

	// Trends
	if result.Trends.IsTrendy {
		factors = append(factors, fmt.Sprintf("Matches current trends: %s", strings.Join(result.Trends.Categories, ", ")))
		scores["trends"] = 2
	}

	// Content type
	for _, cat := range result.Trends.Categories {
		if cat == "tutorial" || cat == "review" {
			factors = append(factors, "Educational content holds lasting value")
			scores["content"] = 2
			break
		}
	}

	// Technical
	if input.HasCC {
		factors = append(factors, "Captions widen the reach (accessibility plus SEO)")
		scores["technical"] = 1
	}
	if input.HasChapters {
		factors = append(factors, "Chapters improve the viewing experience")
		scores["technical"]++
	}

	// Viral indicators
	viral := result.Metrics.ViralScore
	if viral >= 70 {
		factors = append(factors, fmt.Sprintf("Viral potential: %d/100", viral))
		scores["viral"] = 3
	} else if viral >= 50 {
		factors = append(factors, fmt.Sprintf("High growth potential: %d/100", viral))
		scores["viral"] = 2
	}

	if len(factors) == 0 {
		return noSuccessFactorsMessage
	}

	total := 0
	for _, s := range scores {
		total += s
	}
	// The axis maxima sum past successMaxScore, keep the percentage in [0,100].
	if total > successMaxScore {
		total = successMaxScore
	}
	percentage := float64(total) / float64(successMaxScore) * 100

	var b strings.Builder
	fmt.Fprintf(&b, "Success score: %.0f%%\n\n", percentage)
	b.WriteString("KEY SUCCESS FACTORS:\n")
	b.WriteString(strings.Join(factors, "\n"))

	b.WriteString("\n\nTO REPLICATE THE SUCCESS:\n")
	if scores["title"] >= 2 {
		b.WriteString("- Reuse a similar title structure\n")
	}
	if scores["timing"] >= 2 {
		b.WriteString("- Publish at the same time and weekday\n")
	}
	if scores["engagement"] >= 2 {
		b.WriteString("- Provoke discussion with questions\n")
	}
	if scores["trends"] >= 2 {
		b.WriteString("- Track the trends in your niche\n")
	}

	return b.String()
}

package usecase

import (
	"math"
	"time"

	"insight-srv/internal/analysis"
)

// analyzeMetrics maps the raw counters into categorical tiers and the
// viral score. Threshold ladders evaluate highest-first; the first
// match wins. Missing inputs degrade to documented fallback labels.
func (uc *implUseCase) analyzeMetrics(input analysis.AnalyzeInput, asOf time.Time) analysis.MetricFeatures {
	views := input.Views
	likes := input.Likes
	comments := input.Comments

	f := analysis.MetricFeatures{
		ViewLevel:  viewLevel(views),
		GrowthRate: analysis.GrowthUnknown,
	}

	if views > 0 {
		f.LikeRate = float64(likes) / float64(views) * 100
		f.CommentRate = float64(comments) / float64(views) * 100
		f.EngagementQuality = engagementQuality(f.LikeRate)

		switch {
		case likes == 0:
			f.DiscussionLevel = analysis.DiscussionNone
		default:
			f.DiscussionLevel = discussionLevel(float64(comments) / float64(likes))
		}
	} else {
		f.EngagementQuality = analysis.EngagementNoData
		f.DiscussionLevel = analysis.DiscussionNoData
	}

	if input.PublishedAt != nil {
		days := int64(asOf.Sub(*input.PublishedAt).Hours() / 24)
		if days > 0 {
			viewsPerDay := float64(views) / float64(days)
			f.ViewsPerDay = math.Round(viewsPerDay*100) / 100
			f.GrowthRate = growthRate(viewsPerDay)
		}
	}

	f.ViralScore = viralScore(views, input.EngagementRate, input.CommentRatio, f.GrowthRate)

	return f
}

func viewLevel(views int64) string {
	switch {
	case views >= 1_000_000:
		return analysis.ViewLevelMegaViral
	case views >= 100_000:
		return analysis.ViewLevelViral
	case views >= 10_000:
		return analysis.ViewLevelPopular
	case views >= 1_000:
		return analysis.ViewLevelModerate
	default:
		return analysis.ViewLevelLow
	}
}

func engagementQuality(likeRate float64) string {
	switch {
	case likeRate >= 10:
		return analysis.EngagementExceptional
	case likeRate >= 5:
		return analysis.EngagementExcellent
	case likeRate >= 3:
		return analysis.EngagementGood
	case likeRate >= 1:
		return analysis.EngagementAverage
	default:
		return analysis.EngagementPoor
	}
}

func discussionLevel(commentToLikeRatio float64) string {
	switch {
	case commentToLikeRatio >= 0.1:
		return analysis.DiscussionHigh
	case commentToLikeRatio >= 0.05:
		return analysis.DiscussionModerate
	default:
		return analysis.DiscussionLow
	}
}

func growthRate(viewsPerDay float64) string {
	switch {
	case viewsPerDay >= 10_000:
		return analysis.GrowthExplosive
	case viewsPerDay >= 1_000:
		return analysis.GrowthRapid
	case viewsPerDay >= 100:
		return analysis.GrowthSteady
	default:
		return analysis.GrowthSlow
	}
}

// viralScore is additive and capped at 100: view tier 30/20/10/5,
// engagement rate tier 30/20/10, comment ratio tier 20/10, growth
// tier 20/10.
func viralScore(views int64, engagementRate, commentRatio float64, growth string) int {
	score := 0

	switch {
	case views >= 1_000_000:
		score += 30
	case views >= 100_000:
		score += 20
	case views >= 10_000:
		score += 10
	case views >= 1_000:
		score += 5
	}

	switch {
	case engagementRate >= 10:
		score += 30
	case engagementRate >= 5:
		score += 20
	case engagementRate >= 2:
		score += 10
	}

	switch {
	case commentRatio >= 1:
		score += 20
	case commentRatio >= 0.5:
		score += 10
	}

	switch growth {
	case analysis.GrowthExplosive:
		score += 20
	case analysis.GrowthRapid:
		score += 10
	}

	if score > 100 {
		score = 100
	}
	return score
}

package usecase

import (
	"math"

	"insight-srv/internal/analysis"
)

// Sub-score weights of the composite potential score. Tunable, kept
// exactly as calibrated.
const (
	viralWeight        = 30.0
	optimizationWeight = 20.0
	trendinessCap      = 15.0
	technicalBonus     = 5.0
	technicalCap       = 15.0
)

var engagementPoints = map[string]float64{
	analysis.EngagementExceptional: 20,
	analysis.EngagementExcellent:   15,
	analysis.EngagementGood:        10,
	analysis.EngagementAverage:     5,
	analysis.EngagementPoor:        2,
}

const engagementDefaultPoints = 5.0

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// potentialScore merges the five independent sub-scores into the final
// 0-100 value. Absence of one input never poisons the others: each
// contributes its documented default.
func (uc *implUseCase) potentialScore(input analysis.AnalyzeInput, result analysis.AnalysisResult) analysis.PotentialScore {
	p := analysis.PotentialScore{}

	// 1. Viral potential (30 points)
	p.ViralPotential = round1(float64(result.Metrics.ViralScore) / 100 * viralWeight)

	// 2. Optimization quality (20 points)
	p.Optimization = round1(float64(result.Title.Score+result.Description.Score) / 20 * optimizationWeight)

	// 3. Trendiness (15 points)
	p.Trendiness = math.Min(float64(result.Trends.Score), trendinessCap)

	// 4. Engagement (20 points)
	points, ok := engagementPoints[result.Metrics.EngagementQuality]
	if !ok {
		points = engagementDefaultPoints
	}
	p.Engagement = points

	// 5. Technical quality (15 points)
	technical := 0.0
	if input.HasCC {
		technical += technicalBonus
	}
	if input.HasChapters {
		technical += technicalBonus
	}
	if input.VideoQuality == analysis.QualityHD || input.VideoQuality == analysis.Quality4K {
		technical += technicalBonus
	}
	if technical > technicalCap {
		technical = technicalCap
	}
	p.Technical = technical

	total := p.ViralPotential + p.Optimization + p.Trendiness + p.Engagement + p.Technical
	if total > 100 {
		total = 100
	}
	if total < 0 {
		total = 0
	}
	p.Total = round1(total)

	// Boundary values belong to the higher tier.
	switch {
	case p.Total >= 80:
		p.Recommendation = analysis.VerdictMustReplicate
	case p.Total >= 60:
		p.Recommendation = analysis.VerdictRecommended
	case p.Total >= 40:
		p.Recommendation = analysis.VerdictPossible
	default:
		p.Recommendation = analysis.VerdictNotRecommended
	}

	return p
}

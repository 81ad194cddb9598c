package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"insight-srv/internal/analysis"
)

// Analyze runs the full scoring pipeline over one video snapshot.
// Each section is isolated: a failure inside one detector leaves its
// fallback value in place instead of aborting the whole analysis.
func (uc *implUseCase) Analyze(ctx context.Context, input analysis.AnalyzeInput) (analysis.AnalysisResult, error) {
	input.ComputeDerivedRates()

	asOf := input.AsOf
	if asOf.IsZero() {
		asOf = time.Now()
	}

	result := analysis.AnalysisResult{
		VideoID:    input.VideoID,
		ChannelID:  input.ChannelID,
		AnalyzedAt: asOf,
	}

	allText := strings.TrimSpace(fmt.Sprintf("%s %s %s", input.Title, input.Description, input.Transcript))

	uc.section(ctx, "keywords", func() {
		frequency := uc.extractKeywordsFrequency(allText, topKeywordsFrequency)
		weighted := uc.extractKeywordsWeighted(allText)
		result.Keywords = mergeKeywords(weighted, frequency, maxKeywords)
		result.TopKeywords = topN(result.Keywords, topKeywordsCount)
	})

	uc.section(ctx, "title", func() {
		result.Title = uc.analyzeTitle(input.Title)
	})

	uc.section(ctx, "description", func() {
		result.Description = uc.analyzeDescription(input.Description)
	})

	uc.section(ctx, "metrics", func() {
		result.Metrics = uc.analyzeMetrics(input, asOf)
	})

	uc.section(ctx, "trends", func() {
		result.Trends = uc.matchTrends(allText)
	})

	result.CompetitiveAdvantage = noAdvantageMessage
	uc.section(ctx, "advantage", func() {
		result.CompetitiveAdvantage = uc.competitiveAdvantage(input)
	})

	result.Recommendations = wellOptimizedMessage
	uc.section(ctx, "recommendations", func() {
		result.Recommendations = uc.recommendations(input, result)
	})

	result.SuccessAnalysis = noSuccessFactorsMessage
	uc.section(ctx, "success", func() {
		result.SuccessAnalysis = uc.successFactors(input, result)
	})

	uc.section(ctx, "strategy", func() {
		result.ContentStrategy = uc.contentStrategy(input, result)
	})

	result.Potential = analysis.PotentialScore{Recommendation: analysis.VerdictNotRecommended}
	uc.section(ctx, "potential", func() {
		result.Potential = uc.potentialScore(input, result)
	})

	return result, nil
}

// section runs one pipeline stage and swallows its panic, so a single
// broken detector cannot poison the rest of the result or the batch.
func (uc *implUseCase) section(ctx context.Context, name string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "analysis.usecase.Analyze: %s: recovered: %v", name, r)
		}
	}()
	fn()
}

package analysis

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// Analyze scores one video snapshot. It never fails on degenerate
	// input; missing metrics degrade to documented fallback labels.
	Analyze(ctx context.Context, input AnalyzeInput) (AnalysisResult, error)
}

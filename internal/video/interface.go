package video

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Detail(ctx context.Context, input DetailInput) (DetailOutput, error)
	Analyze(ctx context.Context, input AnalyzeInput) (AnalyzeOutput, error)
}

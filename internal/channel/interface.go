package channel

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Track(ctx context.Context, input TrackInput) (TrackOutput, error)
	Detail(ctx context.Context, input DetailInput) (DetailOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
}

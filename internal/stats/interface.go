package stats

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Overview(ctx context.Context, input OverviewInput) (OverviewOutput, error)
	ChannelStats(ctx context.Context, input ChannelStatsInput) (ChannelStatsOutput, error)
}

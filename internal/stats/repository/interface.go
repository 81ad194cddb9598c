package repository

import "context"

// VideoAggregate holds the counters computed in one pass.
type VideoAggregate struct {
	TotalVideos    int64
	AnalyzedVideos int64
	ShortsCount    int64
	TotalViews     int64
	TotalLikes     int64
	TotalComments  int64
}

// An empty channelID aggregates over all channels.
//
//go:generate mockery --name StatsRepository
type StatsRepository interface {
	GetVideoAggregate(ctx context.Context, channelID string) (VideoAggregate, error)
	GetVerdictDistribution(ctx context.Context, channelID string) (map[string]int64, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	StatsRepository
}

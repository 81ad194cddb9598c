package stats

import "insight-srv/internal/model"

type ChannelStatsInput struct {
	ChannelID string
	// TopVideos bounds the "best performing" list. Zero means the default.
	TopVideos int
}

type ChannelStatsOutput struct {
	ChannelID string

	TotalVideos    int64
	AnalyzedVideos int64
	ShortsCount    int64

	TotalViews        int64
	TotalLikes        int64
	TotalComments     int64
	AvgViews          float64
	AvgEngagementRate float64

	// VerdictDistribution counts analyzed videos per recommendation label.
	VerdictDistribution map[string]int64

	TopVideos []*model.Video
}

type OverviewInput struct {
	// TopVideos bounds the "best performing" list. Zero means the default.
	TopVideos int
}

// OverviewOutput aggregates every stored video regardless of channel.
type OverviewOutput struct {
	TotalVideos    int64
	AnalyzedVideos int64
	ShortsCount    int64

	TotalViews        int64
	TotalLikes        int64
	TotalComments     int64
	AvgViews          float64
	AvgEngagementRate float64

	VerdictDistribution map[string]int64

	TopVideos []*model.Video
}

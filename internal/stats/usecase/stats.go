package usecase

import (
	"context"
	"errors"
	"math"

	channelRepo "insight-srv/internal/channel/repository"
	"insight-srv/internal/model"
	"insight-srv/internal/stats"
	"insight-srv/internal/stats/repository"
	videoRepo "insight-srv/internal/video/repository"
)

// Overview aggregates every stored video across all channels.
func (uc *implUseCase) Overview(ctx context.Context, input stats.OverviewInput) (stats.OverviewOutput, error) {
	if input.TopVideos <= 0 {
		input.TopVideos = defaultTopVideos
	}

	agg, distribution, topVideos, err := uc.collect(ctx, "", input.TopVideos)
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.Overview: Failed to collect stats: %v", err)
		return stats.OverviewOutput{}, err
	}

	return stats.OverviewOutput{
		TotalVideos:         agg.TotalVideos,
		AnalyzedVideos:      agg.AnalyzedVideos,
		ShortsCount:         agg.ShortsCount,
		TotalViews:          agg.TotalViews,
		TotalLikes:          agg.TotalLikes,
		TotalComments:       agg.TotalComments,
		AvgViews:            avgViews(agg),
		AvgEngagementRate:   avgEngagementRate(agg),
		VerdictDistribution: distribution,
		TopVideos:           topVideos,
	}, nil
}

// ChannelStats aggregates the stored videos of one channel.
func (uc *implUseCase) ChannelStats(ctx context.Context, input stats.ChannelStatsInput) (stats.ChannelStatsOutput, error) {
	if input.ChannelID == "" {
		return stats.ChannelStatsOutput{}, stats.ErrChannelIDRequired
	}
	if input.TopVideos <= 0 {
		input.TopVideos = defaultTopVideos
	}

	if _, err := uc.channels.GetChannelByID(ctx, input.ChannelID); err != nil {
		if errors.Is(err, channelRepo.ErrChannelNotFound) {
			return stats.ChannelStatsOutput{}, stats.ErrChannelNotFound
		}
		uc.l.Errorf(ctx, "stats.usecase.ChannelStats: Failed to get channel: %v", err)
		return stats.ChannelStatsOutput{}, err
	}

	agg, distribution, topVideos, err := uc.collect(ctx, input.ChannelID, input.TopVideos)
	if err != nil {
		uc.l.Errorf(ctx, "stats.usecase.ChannelStats: Failed to collect stats: %v", err)
		return stats.ChannelStatsOutput{}, err
	}

	return stats.ChannelStatsOutput{
		ChannelID:           input.ChannelID,
		TotalVideos:         agg.TotalVideos,
		AnalyzedVideos:      agg.AnalyzedVideos,
		ShortsCount:         agg.ShortsCount,
		TotalViews:          agg.TotalViews,
		TotalLikes:          agg.TotalLikes,
		TotalComments:       agg.TotalComments,
		AvgViews:            avgViews(agg),
		AvgEngagementRate:   avgEngagementRate(agg),
		VerdictDistribution: distribution,
		TopVideos:           topVideos,
	}, nil
}

// collect runs the three aggregate reads behind both stats operations.
// An empty channelID spans all channels.
func (uc *implUseCase) collect(ctx context.Context, channelID string, topN int) (repository.VideoAggregate, map[string]int64, []*model.Video, error) {
	agg, err := uc.repo.GetVideoAggregate(ctx, channelID)
	if err != nil {
		return repository.VideoAggregate{}, nil, nil, err
	}

	distribution, err := uc.repo.GetVerdictDistribution(ctx, channelID)
	if err != nil {
		return repository.VideoAggregate{}, nil, nil, err
	}

	topVideos, err := uc.videos.ListVideos(ctx, videoRepo.ListVideosOptions{
		ChannelID: channelID,
		Sort:      "views",
		Limit:     topN,
	})
	if err != nil {
		return repository.VideoAggregate{}, nil, nil, err
	}

	return agg, distribution, topVideos, nil
}

func avgViews(agg repository.VideoAggregate) float64 {
	if agg.TotalVideos == 0 {
		return 0
	}
	return round2(float64(agg.TotalViews) / float64(agg.TotalVideos))
}

func avgEngagementRate(agg repository.VideoAggregate) float64 {
	if agg.TotalViews == 0 {
		return 0
	}
	return round2(float64(agg.TotalLikes+agg.TotalComments) / float64(agg.TotalViews) * 100)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

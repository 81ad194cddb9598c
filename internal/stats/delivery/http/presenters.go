package http

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/internal/stats"
)

// Request DTOs

type getStatsReq struct {
	TopVideos int
}

func (r getStatsReq) toInput() stats.OverviewInput {
	return stats.OverviewInput{TopVideos: r.TopVideos}
}

type getChannelStatsReq struct {
	ChannelID string
	TopVideos int
}

func (r getChannelStatsReq) toInput() stats.ChannelStatsInput {
	return stats.ChannelStatsInput{
		ChannelID: r.ChannelID,
		TopVideos: r.TopVideos,
	}
}

// Response DTOs

type topVideoResp struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	ViewCount    int64  `json:"view_count"`
	LikeCount    int64  `json:"like_count"`
	CommentCount int64  `json:"comment_count"`
	IsShort      bool   `json:"is_short"`
	PublishedAt  string `json:"published_at"`
}

type channelStatsResp struct {
	ChannelID           string           `json:"channel_id"`
	TotalVideos         int64            `json:"total_videos"`
	AnalyzedVideos      int64            `json:"analyzed_videos"`
	ShortsCount         int64            `json:"shorts_count"`
	TotalViews          int64            `json:"total_views"`
	TotalLikes          int64            `json:"total_likes"`
	TotalComments       int64            `json:"total_comments"`
	AvgViews            float64          `json:"avg_views"`
	AvgEngagementRate   float64          `json:"avg_engagement_rate"`
	VerdictDistribution map[string]int64 `json:"verdict_distribution"`
	TopVideos           []topVideoResp   `json:"top_videos"`
}

type overviewResp struct {
	TotalVideos         int64            `json:"total_videos"`
	AnalyzedVideos      int64            `json:"analyzed_videos"`
	ShortsCount         int64            `json:"shorts_count"`
	TotalViews          int64            `json:"total_views"`
	TotalLikes          int64            `json:"total_likes"`
	TotalComments       int64            `json:"total_comments"`
	AvgViews            float64          `json:"avg_views"`
	AvgEngagementRate   float64          `json:"avg_engagement_rate"`
	VerdictDistribution map[string]int64 `json:"verdict_distribution"`
	TopVideos           []topVideoResp   `json:"top_videos"`
}

func (h *handler) newOverviewResp(o stats.OverviewOutput) overviewResp {
	topVideos := make([]topVideoResp, 0, len(o.TopVideos))
	for _, v := range o.TopVideos {
		topVideos = append(topVideos, newTopVideoResp(v))
	}

	return overviewResp{
		TotalVideos:         o.TotalVideos,
		AnalyzedVideos:      o.AnalyzedVideos,
		ShortsCount:         o.ShortsCount,
		TotalViews:          o.TotalViews,
		TotalLikes:          o.TotalLikes,
		TotalComments:       o.TotalComments,
		AvgViews:            o.AvgViews,
		AvgEngagementRate:   o.AvgEngagementRate,
		VerdictDistribution: o.VerdictDistribution,
		TopVideos:           topVideos,
	}
}

func (h *handler) newChannelStatsResp(o stats.ChannelStatsOutput) channelStatsResp {
	topVideos := make([]topVideoResp, 0, len(o.TopVideos))
	for _, v := range o.TopVideos {
		topVideos = append(topVideos, newTopVideoResp(v))
	}

	return channelStatsResp{
		ChannelID:           o.ChannelID,
		TotalVideos:         o.TotalVideos,
		AnalyzedVideos:      o.AnalyzedVideos,
		ShortsCount:         o.ShortsCount,
		TotalViews:          o.TotalViews,
		TotalLikes:          o.TotalLikes,
		TotalComments:       o.TotalComments,
		AvgViews:            o.AvgViews,
		AvgEngagementRate:   o.AvgEngagementRate,
		VerdictDistribution: o.VerdictDistribution,
		TopVideos:           topVideos,
	}
}

func newTopVideoResp(v *model.Video) topVideoResp {
	return topVideoResp{
		ID:           v.ID,
		Title:        v.Title,
		ViewCount:    v.ViewCount,
		LikeCount:    v.LikeCount,
		CommentCount: v.CommentCount,
		IsShort:      v.IsShort(),
		PublishedAt:  v.PublishedAt.Format(time.RFC3339),
	}
}

package http

import (
	"encoding/json"
	"time"

	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
	"insight-srv/internal/video"
	"insight-srv/pkg/paginator"
)

// Request DTOs

type listVideosReq struct {
	ChannelID string `form:"channel_id"`
	IsShort   *bool  `form:"is_short"`
	MinViews  int64  `form:"min_views"`
	Sort      string `form:"sort"`
	Page      int    `form:"page"`
	Limit     int64  `form:"limit"`
}

func (r listVideosReq) toInput() video.ListInput {
	return video.ListInput{
		ChannelID: r.ChannelID,
		IsShort:   r.IsShort,
		MinViews:  r.MinViews,
		Sort:      r.Sort,
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

type getVideoReq struct {
	VideoID string
}

func (r getVideoReq) toInput() video.DetailInput {
	return video.DetailInput{VideoID: r.VideoID}
}

type analyzeVideoReq struct {
	VideoID string
	Force   bool
}

func (r analyzeVideoReq) toInput() video.AnalyzeInput {
	return video.AnalyzeInput{VideoID: r.VideoID, Force: r.Force}
}

// Response DTOs

type videoResp struct {
	ID              string   `json:"id"`
	ChannelID       string   `json:"channel_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	CategoryID      string   `json:"category_id,omitempty"`
	DurationSeconds int64    `json:"duration_seconds"`
	Definition      string   `json:"definition,omitempty"`
	HasCaptions     bool     `json:"has_captions"`
	IsShort         bool     `json:"is_short"`
	ViewCount       int64    `json:"view_count"`
	LikeCount       int64    `json:"like_count"`
	CommentCount    int64    `json:"comment_count"`
	PublishedAt     string   `json:"published_at"`
	FetchedAt       string   `json:"fetched_at"`
	AnalyzedAt      *string  `json:"analyzed_at,omitempty"`
}

type listVideosResp struct {
	Videos    []videoResp                  `json:"videos"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

type videoDetailResp struct {
	videoResp
	Analysis json.RawMessage `json:"analysis,omitempty"`
}

type analyzeVideoResp struct {
	VideoID string                  `json:"video_id"`
	Cached  bool                    `json:"cached"`
	Result  analysis.AnalysisResult `json:"result"`
}

func (h *handler) newVideoResp(v *model.Video) videoResp {
	resp := videoResp{
		ID:              v.ID,
		ChannelID:       v.ChannelID,
		Title:           v.Title,
		Description:     v.Description,
		Tags:            v.Tags,
		CategoryID:      v.CategoryID,
		DurationSeconds: v.DurationSeconds,
		Definition:      v.Definition,
		HasCaptions:     v.HasCaptions,
		IsShort:         v.IsShort(),
		ViewCount:       v.ViewCount,
		LikeCount:       v.LikeCount,
		CommentCount:    v.CommentCount,
		PublishedAt:     v.PublishedAt.Format(time.RFC3339),
		FetchedAt:       v.FetchedAt.Format(time.RFC3339),
	}
	if v.AnalyzedAt != nil {
		analyzedAt := v.AnalyzedAt.Format(time.RFC3339)
		resp.AnalyzedAt = &analyzedAt
	}
	return resp
}

func (h *handler) newListVideosResp(o video.ListOutput) listVideosResp {
	videos := make([]videoResp, 0, len(o.Videos))
	for _, v := range o.Videos {
		videos = append(videos, h.newVideoResp(v))
	}
	return listVideosResp{
		Videos:    videos,
		Paginator: o.Paginator.ToResponse(),
	}
}

func (h *handler) newVideoDetailResp(o video.DetailOutput) videoDetailResp {
	return videoDetailResp{
		videoResp: h.newVideoResp(o.Video),
		Analysis:  o.Video.Analysis,
	}
}

func (h *handler) newAnalyzeVideoResp(o video.AnalyzeOutput) analyzeVideoResp {
	return analyzeVideoResp{
		VideoID: o.VideoID,
		Cached:  o.Cached,
		Result:  o.Result,
	}
}

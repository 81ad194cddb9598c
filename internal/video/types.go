package video

import (
	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

// Sort keys accepted by List.
const (
	SortPublishedAt = "published_at"
	SortViews       = "views"
	SortLikes       = "likes"
	SortComments    = "comments"
)

type ListInput struct {
	ChannelID     string
	IsShort       *bool
	MinViews      int64
	Sort          string
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Videos    []*model.Video
	Paginator paginator.Paginator
}

type DetailInput struct {
	VideoID string
}

type DetailOutput struct {
	Video *model.Video
}

type AnalyzeInput struct {
	VideoID string
	// Force skips the cached result and recomputes.
	Force bool
}

type AnalyzeOutput struct {
	VideoID string
	Result  analysis.AnalysisResult
	Cached  bool
}

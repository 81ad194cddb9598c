package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"insight-srv/internal/analysis"
	"insight-srv/internal/model"
	"insight-srv/internal/video"
	"insight-srv/internal/video/repository"
	"insight-srv/pkg/paginator"
)

// List returns a page of stored videos with filters applied.
func (uc *implUseCase) List(ctx context.Context, input video.ListInput) (video.ListOutput, error) {
	if input.Sort != "" && !isValidSort(input.Sort) {
		return video.ListOutput{}, video.ErrInvalidSort
	}

	pq := input.PaginateQuery
	pq.Adjust()

	opts := repository.ListVideosOptions{
		ChannelID: input.ChannelID,
		IsShort:   input.IsShort,
		MinViews:  input.MinViews,
		Sort:      input.Sort,
		Limit:     int(pq.Limit),
		Offset:    int(pq.Offset()),
	}

	total, err := uc.repo.CountVideos(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "video.usecase.List: Failed to count videos: %v", err)
		return video.ListOutput{}, err
	}

	videos, err := uc.repo.ListVideos(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "video.usecase.List: Failed to list videos: %v", err)
		return video.ListOutput{}, err
	}

	return video.ListOutput{
		Videos: videos,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(videos)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
	}, nil
}

// Detail returns one video with its stored analysis, if any.
func (uc *implUseCase) Detail(ctx context.Context, input video.DetailInput) (video.DetailOutput, error) {
	if input.VideoID == "" {
		return video.DetailOutput{}, video.ErrVideoIDRequired
	}

	v, err := uc.repo.GetVideoByID(ctx, input.VideoID)
	if errors.Is(err, repository.ErrVideoNotFound) {
		return video.DetailOutput{}, video.ErrVideoNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "video.usecase.Detail: Failed to get video: %v", err)
		return video.DetailOutput{}, err
	}

	return video.DetailOutput{Video: v}, nil
}

// Analyze scores one stored video on demand. Results are cached; Force
// bypasses the cache and recomputes.
func (uc *implUseCase) Analyze(ctx context.Context, input video.AnalyzeInput) (video.AnalyzeOutput, error) {
	if input.VideoID == "" {
		return video.AnalyzeOutput{}, video.ErrVideoIDRequired
	}

	if !input.Force {
		if cached, err := uc.cache.GetAnalysis(ctx, input.VideoID); err == nil {
			var result analysis.AnalysisResult
			if err := json.Unmarshal(cached, &result); err == nil {
				return video.AnalyzeOutput{
					VideoID: input.VideoID,
					Result:  result,
					Cached:  true,
				}, nil
			}
			uc.l.Warnf(ctx, "video.usecase.Analyze: Failed to unmarshal cached analysis: %v", err)
		}
	}

	v, err := uc.repo.GetVideoByID(ctx, input.VideoID)
	if errors.Is(err, repository.ErrVideoNotFound) {
		return video.AnalyzeOutput{}, video.ErrVideoNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "video.usecase.Analyze: Failed to get video: %v", err)
		return video.AnalyzeOutput{}, err
	}

	result, err := uc.analysisUC.Analyze(ctx, BuildAnalyzeInput(v))
	if err != nil {
		uc.l.Errorf(ctx, "video.usecase.Analyze: Analysis failed: %v", err)
		return video.AnalyzeOutput{}, video.ErrAnalysisFailed
	}

	data, err := json.Marshal(result)
	if err != nil {
		uc.l.Errorf(ctx, "video.usecase.Analyze: Failed to marshal result: %v", err)
		return video.AnalyzeOutput{}, video.ErrAnalysisFailed
	}

	if err := uc.repo.UpdateAnalysis(ctx, repository.UpdateAnalysisOptions{
		VideoID:    input.VideoID,
		Analysis:   data,
		AnalyzedAt: result.AnalyzedAt,
	}); err != nil {
		uc.l.Errorf(ctx, "video.usecase.Analyze: Failed to persist analysis: %v", err)
		return video.AnalyzeOutput{}, err
	}

	// Cache failures are not fatal, the result is already persisted.
	if err := uc.cache.SaveAnalysis(ctx, input.VideoID, data); err != nil {
		uc.l.Warnf(ctx, "video.usecase.Analyze: Failed to cache result: %v", err)
	}

	return video.AnalyzeOutput{
		VideoID: input.VideoID,
		Result:  result,
	}, nil
}

// BuildAnalyzeInput maps a stored video snapshot to the scoring input.
func BuildAnalyzeInput(v *model.Video) analysis.AnalyzeInput {
	in := analysis.AnalyzeInput{
		VideoID:         v.ID,
		ChannelID:       v.ChannelID,
		Title:           v.Title,
		Description:     v.Description,
		Views:           v.ViewCount,
		Likes:           v.LikeCount,
		Comments:        v.CommentCount,
		IsShort:         v.IsShort(),
		DurationSeconds: v.DurationSeconds,
		HasCC:           v.HasCaptions,
		HasChapters:     hasChapterMarkers(v.Description),
		VideoQuality:    v.Definition,
	}
	if !v.PublishedAt.IsZero() {
		publishedAt := v.PublishedAt
		in.PublishedAt = &publishedAt
	}
	in.ComputeDerivedRates()
	return in
}

func hasChapterMarkers(description string) bool {
	return strings.Contains(description, "0:00") || strings.Contains(description, "00:00")
}

func isValidSort(sort string) bool {
	switch sort {
	case video.SortPublishedAt, video.SortViews, video.SortLikes, video.SortComments:
		return true
	}
	return false
}

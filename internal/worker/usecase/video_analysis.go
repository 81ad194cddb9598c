package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"insight-srv/internal/model"
	videoRepo "insight-srv/internal/video/repository"
	videoUC "insight-srv/internal/video/usecase"
	"insight-srv/internal/worker"
)

// processVideoAnalysis scores an explicit list of videos. IDs missing
// from storage are fetched first.
func (uc *implUseCase) processVideoAnalysis(ctx context.Context, input worker.ProcessTaskInput) (worker.ProcessTaskOutput, error) {
	out := worker.ProcessTaskOutput{TotalItems: len(input.VideoIDs)}
	if len(input.VideoIDs) == 0 {
		return out, nil
	}

	var processed, failed int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(analysisConcurrency)

	for _, id := range input.VideoIDs {
		videoID := id
		eg.Go(func() error {
			if err := uc.analyzeByID(egCtx, videoID); err != nil {
				uc.l.Warnf(egCtx, "worker.usecase.processVideoAnalysis: Video %s failed: %v", videoID, err)
				atomic.AddInt64(&failed, 1)
			} else {
				atomic.AddInt64(&processed, 1)
			}

			done := atomic.LoadInt64(&processed) + atomic.LoadInt64(&failed)
			if done%progressEvery == 0 {
				uc.reportProgress(egCtx, input.TaskID, int(atomic.LoadInt64(&processed)), int(atomic.LoadInt64(&failed)), out.TotalItems)
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return out, err
	}

	out.ProcessedItems = int(processed)
	out.FailedItems = int(failed)
	return out, nil
}

// analyzeByID loads or fetches one video and persists its score.
func (uc *implUseCase) analyzeByID(ctx context.Context, videoID string) error {
	v, err := uc.videos.GetVideoByID(ctx, videoID)
	if errors.Is(err, videoRepo.ErrVideoNotFound) {
		v, err = uc.fetchAndStore(ctx, videoID)
	}
	if err != nil {
		return err
	}

	return uc.analyzeStored(ctx, v)
}

// fetchAndStore pulls a single video from the API into storage.
func (uc *implUseCase) fetchAndStore(ctx context.Context, videoID string) (*model.Video, error) {
	fetched, err := uc.youtube.GetVideos(ctx, []string{videoID})
	if err != nil {
		return nil, err
	}
	if len(fetched) == 0 {
		return nil, videoRepo.ErrVideoNotFound
	}

	v := fetched[0]
	return uc.videos.UpsertVideo(ctx, videoRepo.UpsertVideoOptions{
		ID:              v.ID,
		ChannelID:       v.ChannelID,
		Title:           v.Title,
		Description:     v.Description,
		Tags:            v.Tags,
		CategoryID:      v.CategoryID,
		DurationSeconds: int64(v.Duration.Seconds()),
		Definition:      v.Definition,
		HasCaptions:     v.HasCaptions,
		ViewCount:       v.ViewCount,
		LikeCount:       v.LikeCount,
		CommentCount:    v.CommentCount,
		PublishedAt:     v.PublishedAt,
		FetchedAt:       time.Now(),
	})
}

// analyzeStored scores a stored video and writes the result back.
func (uc *implUseCase) analyzeStored(ctx context.Context, v *model.Video) error {
	result, err := uc.analysisUC.Analyze(ctx, videoUC.BuildAnalyzeInput(v))
	if err != nil {
		return err
	}

	data, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return uc.videos.UpdateAnalysis(ctx, videoRepo.UpdateAnalysisOptions{
		VideoID:    v.ID,
		Analysis:   data,
		AnalyzedAt: result.AnalyzedAt,
	})
}

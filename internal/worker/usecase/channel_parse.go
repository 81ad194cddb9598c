package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	channelRepo "insight-srv/internal/channel/repository"
	videoRepo "insight-srv/internal/video/repository"
	"insight-srv/internal/worker"
	"insight-srv/pkg/youtube"
)

// videosBatchSize is the maximum IDs the videos.list endpoint accepts per call.
const videosBatchSize = 50

// processChannelParse fetches a channel with its recent uploads, stores
// everything and scores each video.
func (uc *implUseCase) processChannelParse(ctx context.Context, input worker.ProcessTaskInput) (worker.ProcessTaskOutput, error) {
	channelID, err := uc.youtube.ResolveChannelID(ctx, input.ChannelID)
	if err != nil {
		uc.l.Errorf(ctx, "worker.usecase.processChannelParse: Failed to resolve channel %s: %v", input.ChannelID, err)
		return worker.ProcessTaskOutput{}, worker.ErrChannelFetch
	}

	ch, err := uc.youtube.GetChannel(ctx, channelID)
	if err != nil {
		uc.l.Errorf(ctx, "worker.usecase.processChannelParse: Failed to fetch channel %s: %v", channelID, err)
		return worker.ProcessTaskOutput{}, worker.ErrChannelFetch
	}

	now := time.Now()
	if _, err := uc.channels.UpsertChannel(ctx, channelRepo.UpsertChannelOptions{
		ID:              ch.ID,
		Title:           ch.Title,
		Description:     ch.Description,
		CustomURL:       ch.CustomURL,
		Country:         ch.Country,
		SubscriberCount: ch.SubscriberCount,
		VideoCount:      ch.VideoCount,
		ViewCount:       ch.ViewCount,
		PublishedAt:     ch.PublishedAt,
		FetchedAt:       now,
	}); err != nil {
		uc.l.Errorf(ctx, "worker.usecase.processChannelParse: Failed to upsert channel %s: %v", ch.ID, err)
		return worker.ProcessTaskOutput{}, err
	}

	maxVideos := input.MaxVideos
	if maxVideos <= 0 {
		maxVideos = defaultMaxVideos
	}

	uploads, err := uc.youtube.ListChannelVideos(ctx, ch.ID, maxVideos)
	if err != nil {
		uc.l.Errorf(ctx, "worker.usecase.processChannelParse: Failed to list uploads of %s: %v", ch.ID, err)
		return worker.ProcessTaskOutput{}, worker.ErrChannelFetch
	}

	ids := make([]string, 0, len(uploads))
	for _, v := range uploads {
		ids = append(ids, v.ID)
	}

	// Playlist items carry no statistics, refetch the full video resources.
	videos, err := uc.fetchVideosBatched(ctx, ids)
	if err != nil {
		return worker.ProcessTaskOutput{}, err
	}

	out := worker.ProcessTaskOutput{TotalItems: len(videos)}
	if len(videos) == 0 {
		return out, nil
	}

	var processed, failed int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(analysisConcurrency)

	for i := range videos {
		v := videos[i]
		eg.Go(func() error {
			if err := uc.ingestAndAnalyze(egCtx, v, now); err != nil {
				uc.l.Warnf(egCtx, "worker.usecase.processChannelParse: Video %s failed: %v", v.ID, err)
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

// fetchVideosBatched splits the ID list into API-sized batches.
func (uc *implUseCase) fetchVideosBatched(ctx context.Context, ids []string) ([]youtube.Video, error) {
	var videos []youtube.Video
	for start := 0; start < len(ids); start += videosBatchSize {
		end := start + videosBatchSize
		if end > len(ids) {
			end = len(ids)
		}

		batch, err := uc.youtube.GetVideos(ctx, ids[start:end])
		if err != nil {
			uc.l.Errorf(ctx, "worker.usecase.fetchVideosBatched: Failed to fetch videos: %v", err)
			return nil, worker.ErrChannelFetch
		}
		videos = append(videos, batch...)
	}
	return videos, nil
}

// ingestAndAnalyze stores one fetched video and persists its score.
// Scoring panics are contained so one bad video cannot sink the task.
func (uc *implUseCase) ingestAndAnalyze(ctx context.Context, v youtube.Video, fetchedAt time.Time) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing video %s: %v", v.ID, r)
		}
	}()

	stored, err := uc.videos.UpsertVideo(ctx, videoRepo.UpsertVideoOptions{
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
		FetchedAt:       fetchedAt,
	})
	if err != nil {
		return err
	}

	return uc.analyzeStored(ctx, stored)
}

package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"insight-srv/internal/video/repository"
)

const analysisTTL = 1 * time.Hour

func analysisKey(videoID string) string {
	return fmt.Sprintf("video_analysis:%s", videoID)
}

func (r *implCacheRepository) GetAnalysis(ctx context.Context, videoID string) ([]byte, error) {
	data, err := r.redis.GetClient().Get(ctx, analysisKey(videoID)).Result()
	if err == goredis.Nil {
		return nil, repository.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}
	return []byte(data), nil
}

func (r *implCacheRepository) SaveAnalysis(ctx context.Context, videoID string, data []byte) error {
	if err := r.redis.GetClient().Set(ctx, analysisKey(videoID), data, analysisTTL).Err(); err != nil {
		r.l.Errorf(ctx, "video.repository.redis.SaveAnalysis: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) InvalidateAnalysis(ctx context.Context, videoID string) error {
	if err := r.redis.GetClient().Del(ctx, analysisKey(videoID)).Err(); err != nil {
		r.l.Errorf(ctx, "video.repository.redis.InvalidateAnalysis: Failed to delete cache key: %v", err)
		return err
	}
	return nil
}

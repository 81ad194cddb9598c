package repository

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name VideoRepository
type VideoRepository interface {
	UpsertVideo(ctx context.Context, opts UpsertVideoOptions) (*model.Video, error)
	GetVideoByID(ctx context.Context, id string) (*model.Video, error)
	ListVideos(ctx context.Context, opts ListVideosOptions) ([]*model.Video, error)
	CountVideos(ctx context.Context, opts ListVideosOptions) (int64, error)
	UpdateAnalysis(ctx context.Context, opts UpdateAnalysisOptions) error
	ListVideosByChannel(ctx context.Context, channelID string) ([]*model.Video, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	VideoRepository
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	GetAnalysis(ctx context.Context, videoID string) ([]byte, error)
	SaveAnalysis(ctx context.Context, videoID string, data []byte) error
	InvalidateAnalysis(ctx context.Context, videoID string) error
}

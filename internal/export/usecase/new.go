package usecase

import (
	"insight-srv/internal/export"
	"insight-srv/internal/export/repository"
	videoRepo "insight-srv/internal/video/repository"
	"insight-srv/pkg/log"
	"insight-srv/pkg/minio"
)

const (
	defaultExportBucket = "insight-exports"
	defaultMaxRows      = 5000
)

// Config holds configuration for export generation.
type Config struct {
	ExportBucket string
	MaxRows      int
}

type implUseCase struct {
	repo   repository.PostgresRepository
	videos videoRepo.VideoRepository
	minio  minio.MinIO
	l      log.Logger
	config Config
}

// New creates a new export UseCase implementation.
func New(
	repo repository.PostgresRepository,
	videos videoRepo.VideoRepository,
	minioClient minio.MinIO,
	l log.Logger,
	cfg Config,
) export.UseCase {
	if cfg.ExportBucket == "" {
		cfg.ExportBucket = defaultExportBucket
	}
	if cfg.MaxRows <= 0 {
		cfg.MaxRows = defaultMaxRows
	}

	return &implUseCase{
		repo:   repo,
		videos: videos,
		minio:  minioClient,
		l:      l,
		config: cfg,
	}
}

package usecase

import (
	"insight-srv/internal/analysis"
	"insight-srv/internal/video"
	"insight-srv/internal/video/repository"
	"insight-srv/pkg/log"
)

type implUseCase struct {
	repo       repository.PostgresRepository
	cache      repository.CacheRepository
	analysisUC analysis.UseCase
	l          log.Logger
}

// New creates a new video UseCase implementation.
func New(
	repo repository.PostgresRepository,
	cache repository.CacheRepository,
	analysisUC analysis.UseCase,
	l log.Logger,
) video.UseCase {
	return &implUseCase{
		repo:       repo,
		cache:      cache,
		analysisUC: analysisUC,
		l:          l,
	}
}

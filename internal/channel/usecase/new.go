package usecase

import (
	"insight-srv/internal/channel"
	"insight-srv/internal/channel/repository"
	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"
)

type implUseCase struct {
	repo    repository.PostgresRepository
	youtube youtube.IYouTube
	l       log.Logger
}

// New creates a new channel UseCase implementation.
func New(
	repo repository.PostgresRepository,
	yt youtube.IYouTube,
	l log.Logger,
) channel.UseCase {
	return &implUseCase{
		repo:    repo,
		youtube: yt,
		l:       l,
	}
}

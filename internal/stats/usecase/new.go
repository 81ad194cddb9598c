package usecase

import (
	channelRepo "insight-srv/internal/channel/repository"
	"insight-srv/internal/stats"
	"insight-srv/internal/stats/repository"
	videoRepo "insight-srv/internal/video/repository"
	"insight-srv/pkg/log"
)

const defaultTopVideos = 5

type implUseCase struct {
	repo     repository.PostgresRepository
	channels channelRepo.ChannelRepository
	videos   videoRepo.VideoRepository
	l        log.Logger
}

// New creates a new stats UseCase implementation.
func New(
	repo repository.PostgresRepository,
	channels channelRepo.ChannelRepository,
	videos videoRepo.VideoRepository,
	l log.Logger,
) stats.UseCase {
	return &implUseCase{
		repo:     repo,
		channels: channels,
		videos:   videos,
		l:        l,
	}
}

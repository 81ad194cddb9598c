package usecase

import (
	"insight-srv/internal/analysis"
	channelRepo "insight-srv/internal/channel/repository"
	"insight-srv/internal/task"
	videoRepo "insight-srv/internal/video/repository"
	"insight-srv/internal/worker"
	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"
)

const (
	// analysisConcurrency bounds how many videos are scored in parallel.
	analysisConcurrency = 8
	// progressEvery is the counter step between progress updates.
	progressEvery = 10

	defaultMaxVideos = 50
)

type implUseCase struct {
	taskUC     task.UseCase
	channels   channelRepo.ChannelRepository
	videos     videoRepo.VideoRepository
	analysisUC analysis.UseCase
	youtube    youtube.IYouTube
	l          log.Logger
}

// New creates a new worker UseCase implementation.
func New(
	taskUC task.UseCase,
	channels channelRepo.ChannelRepository,
	videos videoRepo.VideoRepository,
	analysisUC analysis.UseCase,
	yt youtube.IYouTube,
	l log.Logger,
) worker.UseCase {
	return &implUseCase{
		taskUC:     taskUC,
		channels:   channels,
		videos:     videos,
		analysisUC: analysisUC,
		youtube:    yt,
		l:          l,
	}
}

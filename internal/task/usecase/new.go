package usecase

import (
	"insight-srv/internal/task"
	"insight-srv/internal/task/repository"
	"insight-srv/pkg/log"
)

const defaultMaxVideos = 50

type implUseCase struct {
	repo     repository.PostgresRepository
	producer task.Producer
	notifier task.Notifier
	l        log.Logger
}

// New creates a new task UseCase implementation.
func New(
	repo repository.PostgresRepository,
	producer task.Producer,
	notifier task.Notifier,
	l log.Logger,
) task.UseCase {
	return &implUseCase{
		repo:     repo,
		producer: producer,
		notifier: notifier,
		l:        l,
	}
}

package repository

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name TaskRepository
type TaskRepository interface {
	CreateTask(ctx context.Context, opts CreateTaskOptions) (*model.Task, error)
	GetTaskByID(ctx context.Context, id string) (*model.Task, error)
	ListTasks(ctx context.Context, opts ListTasksOptions) ([]*model.Task, error)
	CountTasks(ctx context.Context, opts ListTasksOptions) (int64, error)
	UpdateStatus(ctx context.Context, opts UpdateStatusOptions) error
	UpdateProgress(ctx context.Context, opts UpdateProgressOptions) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	TaskRepository
}

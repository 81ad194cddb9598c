package worker

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ProcessTask(ctx context.Context, input ProcessTaskInput) (ProcessTaskOutput, error)
}

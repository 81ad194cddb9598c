package task

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, input CreateInput) (CreateOutput, error)
	Get(ctx context.Context, input GetInput) (GetOutput, error)
	List(ctx context.Context, input ListInput) (ListOutput, error)
	Cancel(ctx context.Context, input CancelInput) (CancelOutput, error)

	// Worker-side progress transitions.
	MarkRunning(ctx context.Context, taskID string) error
	UpdateProgress(ctx context.Context, input UpdateProgressInput) error
	MarkCompleted(ctx context.Context, input MarkCompletedInput) error
	MarkFailed(ctx context.Context, taskID, errorMessage string) error
}

//go:generate mockery --name Producer
type Producer interface {
	PublishTaskDispatch(ctx context.Context, msg DispatchMessage) error
}

//go:generate mockery --name Notifier
type Notifier interface {
	NotifyProgress(ctx context.Context, event ProgressEvent) error
}

package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"

	"insight-srv/internal/model"
	"insight-srv/internal/task"
	"insight-srv/internal/task/repository"
	"insight-srv/pkg/paginator"
)

// Create validates the task input, stores a PENDING record and
// dispatches it to the worker pool.
func (uc *implUseCase) Create(ctx context.Context, input task.CreateInput) (task.CreateOutput, error) {
	switch input.Type {
	case model.TaskTypeChannelParse:
		if input.ChannelID == "" {
			return task.CreateOutput{}, task.ErrChannelIDRequired
		}
	case model.TaskTypeVideoAnalysis:
		if len(input.VideoIDs) == 0 {
			return task.CreateOutput{}, task.ErrVideoIDsRequired
		}
	default:
		return task.CreateOutput{}, task.ErrInvalidTaskType
	}

	if input.MaxVideos <= 0 {
		input.MaxVideos = defaultMaxVideos
	}

	payload, err := json.Marshal(map[string]any{"max_videos": input.MaxVideos})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: Failed to marshal payload: %v", err)
		return task.CreateOutput{}, task.ErrDispatchFailed
	}

	taskID := uuid.New().String()
	t, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		ID:        taskID,
		Type:      input.Type,
		ChannelID: input.ChannelID,
		VideoIDs:  input.VideoIDs,
		Payload:   payload,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: Failed to create task: %v", err)
		return task.CreateOutput{}, task.ErrDispatchFailed
	}

	if err := uc.producer.PublishTaskDispatch(ctx, task.DispatchMessage{
		TaskID:    t.ID,
		Type:      t.Type,
		ChannelID: t.ChannelID,
		VideoIDs:  t.VideoIDs,
		MaxVideos: input.MaxVideos,
	}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Create: Failed to dispatch task: %v", err)
		if failErr := uc.MarkFailed(ctx, t.ID, "dispatch failed"); failErr != nil {
			uc.l.Errorf(ctx, "task.usecase.Create: Failed to mark task failed: %v", failErr)
		}
		return task.CreateOutput{}, task.ErrDispatchFailed
	}

	return task.CreateOutput{
		TaskID:  t.ID,
		Status:  t.Status,
		Message: "Task accepted",
	}, nil
}

// Get returns one task with its progress counters.
func (uc *implUseCase) Get(ctx context.Context, input task.GetInput) (task.GetOutput, error) {
	t, err := uc.repo.GetTaskByID(ctx, input.TaskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return task.GetOutput{}, task.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Get: Failed to get task: %v", err)
		return task.GetOutput{}, err
	}

	return task.GetOutput{Task: t}, nil
}

// List returns a page of tasks with filters applied.
func (uc *implUseCase) List(ctx context.Context, input task.ListInput) (task.ListOutput, error) {
	pq := input.PaginateQuery
	pq.Adjust()

	opts := repository.ListTasksOptions{
		Type:      input.Type,
		Status:    input.Status,
		ChannelID: input.ChannelID,
		Limit:     int(pq.Limit),
		Offset:    int(pq.Offset()),
	}

	total, err := uc.repo.CountTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: Failed to count tasks: %v", err)
		return task.ListOutput{}, err
	}

	tasks, err := uc.repo.ListTasks(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.List: Failed to list tasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{
		Tasks: tasks,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(tasks)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
	}, nil
}

// Cancel transitions a pending or running task to CANCELLED. The worker
// checks the status before picking the task up, a task already mid-flight
// finishes its current item and stops at the next status check.
func (uc *implUseCase) Cancel(ctx context.Context, input task.CancelInput) (task.CancelOutput, error) {
	t, err := uc.repo.GetTaskByID(ctx, input.TaskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return task.CancelOutput{}, task.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.Cancel: Failed to get task: %v", err)
		return task.CancelOutput{}, err
	}

	if t.IsTerminal() {
		return task.CancelOutput{}, task.ErrTaskNotCancellable
	}

	now := time.Now()
	if err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		TaskID:      input.TaskID,
		Status:      model.TaskStatusCancelled,
		CompletedAt: &now,
	}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.Cancel: Failed to update status: %v", err)
		return task.CancelOutput{}, err
	}

	uc.notify(ctx, input.TaskID, model.TaskStatusCancelled, t.Progress, t.ProcessedItems, t.FailedItems, "")

	t.Status = model.TaskStatusCancelled
	t.CompletedAt = &now
	return task.CancelOutput{Task: t}, nil
}

// MarkRunning transitions the task to RUNNING. A task cancelled while
// still queued is rejected with ErrTaskCancelled so the worker skips it.
func (uc *implUseCase) MarkRunning(ctx context.Context, taskID string) error {
	t, err := uc.repo.GetTaskByID(ctx, taskID)
	if errors.Is(err, repository.ErrTaskNotFound) {
		return task.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.usecase.MarkRunning: Failed to get task: %v", err)
		return err
	}
	if t.Status == model.TaskStatusCancelled {
		return task.ErrTaskCancelled
	}

	now := time.Now()
	if err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		TaskID:    taskID,
		Status:    model.TaskStatusRunning,
		StartedAt: &now,
	}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.MarkRunning: Failed to update status: %v", err)
		return err
	}

	uc.notify(ctx, taskID, model.TaskStatusRunning, 0, 0, 0, "")
	return nil
}

// UpdateProgress refreshes the progress counters of a running task.
func (uc *implUseCase) UpdateProgress(ctx context.Context, input task.UpdateProgressInput) error {
	if err := uc.repo.UpdateProgress(ctx, repository.UpdateProgressOptions{
		TaskID:         input.TaskID,
		Progress:       input.Progress,
		ProcessedItems: input.ProcessedItems,
		FailedItems:    input.FailedItems,
	}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.UpdateProgress: Failed to update progress: %v", err)
		return err
	}

	uc.notify(ctx, input.TaskID, model.TaskStatusRunning, input.Progress, input.ProcessedItems, input.FailedItems, "")
	return nil
}

// MarkCompleted transitions the task to COMPLETED with final counters.
func (uc *implUseCase) MarkCompleted(ctx context.Context, input task.MarkCompletedInput) error {
	now := time.Now()
	if err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		TaskID:         input.TaskID,
		Status:         model.TaskStatusCompleted,
		TotalItems:     input.TotalItems,
		ProcessedItems: input.ProcessedItems,
		FailedItems:    input.FailedItems,
		CompletedAt:    &now,
	}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.MarkCompleted: Failed to update status: %v", err)
		return err
	}

	uc.notify(ctx, input.TaskID, model.TaskStatusCompleted, 100, input.ProcessedItems, input.FailedItems, "")
	return nil
}

// MarkFailed transitions the task to FAILED with an error message.
func (uc *implUseCase) MarkFailed(ctx context.Context, taskID, errorMessage string) error {
	now := time.Now()
	if err := uc.repo.UpdateStatus(ctx, repository.UpdateStatusOptions{
		TaskID:       taskID,
		Status:       model.TaskStatusFailed,
		ErrorMessage: errorMessage,
		CompletedAt:  &now,
	}); err != nil {
		uc.l.Errorf(ctx, "task.usecase.MarkFailed: Failed to update status: %v", err)
		return err
	}

	uc.notify(ctx, taskID, model.TaskStatusFailed, 0, 0, 0, errorMessage)
	return nil
}

// notify publishes a progress event. Notification failures are logged,
// never propagated: the database is the source of truth.
func (uc *implUseCase) notify(ctx context.Context, taskID, status string, progress, processed, failed int, errorMessage string) {
	t, err := uc.repo.GetTaskByID(ctx, taskID)
	taskType := ""
	if err == nil {
		taskType = t.Type
	}

	if err := uc.notifier.NotifyProgress(ctx, task.ProgressEvent{
		TaskID:         taskID,
		Type:           taskType,
		Status:         status,
		Progress:       progress,
		ProcessedItems: processed,
		FailedItems:    failed,
		ErrorMessage:   errorMessage,
		UpdatedAt:      time.Now(),
	}); err != nil {
		uc.l.Warnf(ctx, "task.usecase.notify: Failed to publish progress event: %v", err)
	}
}

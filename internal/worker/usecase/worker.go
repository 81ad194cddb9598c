package usecase

import (
	"context"
	"errors"

	"insight-srv/internal/model"
	"insight-srv/internal/task"
	"insight-srv/internal/worker"
)

// ProcessTask executes one dispatched task end to end, moving it
// through RUNNING to a terminal status.
func (uc *implUseCase) ProcessTask(ctx context.Context, input worker.ProcessTaskInput) (worker.ProcessTaskOutput, error) {
	if err := uc.taskUC.MarkRunning(ctx, input.TaskID); err != nil {
		if errors.Is(err, task.ErrTaskCancelled) {
			uc.l.Infof(ctx, "worker.usecase.ProcessTask: Task %s cancelled before pickup, skipping", input.TaskID)
			return worker.ProcessTaskOutput{}, nil
		}
		uc.l.Errorf(ctx, "worker.usecase.ProcessTask: Failed to mark task running: %v", err)
		return worker.ProcessTaskOutput{}, err
	}

	var (
		out worker.ProcessTaskOutput
		err error
	)
	switch input.Type {
	case model.TaskTypeChannelParse:
		out, err = uc.processChannelParse(ctx, input)
	case model.TaskTypeVideoAnalysis:
		out, err = uc.processVideoAnalysis(ctx, input)
	default:
		err = worker.ErrUnknownTaskType
	}

	if err != nil {
		uc.l.Errorf(ctx, "worker.usecase.ProcessTask: Task %s failed: %v", input.TaskID, err)
		if failErr := uc.taskUC.MarkFailed(ctx, input.TaskID, err.Error()); failErr != nil {
			uc.l.Errorf(ctx, "worker.usecase.ProcessTask: Failed to mark task failed: %v", failErr)
		}
		return out, err
	}

	if err := uc.taskUC.MarkCompleted(ctx, task.MarkCompletedInput{
		TaskID:         input.TaskID,
		TotalItems:     out.TotalItems,
		ProcessedItems: out.ProcessedItems,
		FailedItems:    out.FailedItems,
	}); err != nil {
		uc.l.Errorf(ctx, "worker.usecase.ProcessTask: Failed to mark task completed: %v", err)
		return out, err
	}

	uc.l.Infof(ctx, "worker.usecase.ProcessTask: Task %s completed: total=%d processed=%d failed=%d",
		input.TaskID, out.TotalItems, out.ProcessedItems, out.FailedItems)
	return out, nil
}

// reportProgress pushes a progress update, errors are logged only.
func (uc *implUseCase) reportProgress(ctx context.Context, taskID string, processed, failed, total int) {
	progress := 0
	if total > 0 {
		progress = (processed + failed) * 100 / total
	}

	if err := uc.taskUC.UpdateProgress(ctx, task.UpdateProgressInput{
		TaskID:         taskID,
		Progress:       progress,
		ProcessedItems: processed,
		FailedItems:    failed,
	}); err != nil {
		uc.l.Warnf(ctx, "worker.usecase.reportProgress: Failed to update progress: %v", err)
	}
}

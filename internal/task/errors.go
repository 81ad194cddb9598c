package task

import "errors"

var (
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidTaskType    = errors.New("invalid task type")
	ErrChannelIDRequired  = errors.New("channel_id is required")
	ErrVideoIDsRequired   = errors.New("video_ids are required")
	ErrDispatchFailed     = errors.New("failed to dispatch task")
	ErrTaskNotCancellable = errors.New("task already finished")
	ErrTaskCancelled      = errors.New("task is cancelled")
)

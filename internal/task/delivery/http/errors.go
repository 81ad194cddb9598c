package http

import (
	"errors"

	"insight-srv/internal/task"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errTaskNotFound       = pkgErrors.NewHTTPError(404, "Task not found")
	errTaskIDRequired     = pkgErrors.NewHTTPError(400, "Task ID is required")
	errInvalidTaskType    = pkgErrors.NewHTTPError(400, "Invalid task type")
	errChannelIDRequired  = pkgErrors.NewHTTPError(400, "Channel ID is required")
	errVideoIDsRequired   = pkgErrors.NewHTTPError(400, "Video IDs are required")
	errDispatchFailed     = pkgErrors.NewHTTPError(500, "Failed to dispatch task")
	errTaskNotCancellable = pkgErrors.NewHTTPError(409, "Task already finished")
	errInvalidBody        = pkgErrors.NewHTTPError(400, "Invalid request body")
	errInvalidQuery       = pkgErrors.NewHTTPError(400, "Invalid query parameters")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, task.ErrTaskNotFound):
		return errTaskNotFound
	case errors.Is(err, task.ErrInvalidTaskType):
		return errInvalidTaskType
	case errors.Is(err, task.ErrChannelIDRequired):
		return errChannelIDRequired
	case errors.Is(err, task.ErrVideoIDsRequired):
		return errVideoIDsRequired
	case errors.Is(err, task.ErrDispatchFailed):
		return errDispatchFailed
	case errors.Is(err, task.ErrTaskNotCancellable):
		return errTaskNotCancellable
	default:
		panic(err)
	}
}

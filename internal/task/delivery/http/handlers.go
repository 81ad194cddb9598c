package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/pkg/response"
)

// CreateTask accepts an async task and dispatches it to the worker pool.
func (h *handler) CreateTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateTaskRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.CreateTask: processCreateTaskRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.CreateTask: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCreateTaskResp(o))
}

// GetTask returns the current status and counters of a task.
func (h *handler) GetTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetTaskRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.GetTask: processGetTaskRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Get(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.GetTask: usecase Get failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTaskResp(o.Task))
}

// CancelTask cancels a pending or running task.
func (h *handler) CancelTask(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCancelTaskRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.CancelTask: processCancelTaskRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Cancel(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.CancelTask: usecase Cancel failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTaskResp(o.Task))
}

// ListTasks returns a page of tasks with filters applied.
func (h *handler) ListTasks(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListTasksRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.ListTasks: processListTasksRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "task.delivery.http.ListTasks: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListTasksResp(o))
}

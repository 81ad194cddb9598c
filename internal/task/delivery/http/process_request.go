package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateTaskRequest(c *gin.Context) (createTaskReq, error) {
	var req createTaskReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "task.delivery.http.processCreateTaskRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidBody
	}

	return req, nil
}

func (h *handler) processGetTaskRequest(c *gin.Context) (getTaskReq, error) {
	req := getTaskReq{
		TaskID: c.Param("task_id"),
	}
	if req.TaskID == "" {
		return req, errTaskIDRequired
	}

	return req, nil
}

func (h *handler) processCancelTaskRequest(c *gin.Context) (cancelTaskReq, error) {
	req := cancelTaskReq{
		TaskID: c.Param("task_id"),
	}
	if req.TaskID == "" {
		return req, errTaskIDRequired
	}

	return req, nil
}

func (h *handler) processListTasksRequest(c *gin.Context) (listTasksReq, error) {
	var req listTasksReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "task.delivery.http.processListTasksRequest: ShouldBindQuery failed: %v", err)
		return req, errInvalidQuery
	}

	return req, nil
}

package http

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/internal/task"
	"insight-srv/pkg/paginator"
)

// Request DTOs

type createTaskReq struct {
	Type      string   `json:"type" binding:"required"`
	ChannelID string   `json:"channel_id,omitempty"`
	VideoIDs  []string `json:"video_ids,omitempty"`
	MaxVideos int64    `json:"max_videos,omitempty"`
}

func (r createTaskReq) toInput() task.CreateInput {
	return task.CreateInput{
		Type:      r.Type,
		ChannelID: r.ChannelID,
		VideoIDs:  r.VideoIDs,
		MaxVideos: r.MaxVideos,
	}
}

type getTaskReq struct {
	TaskID string
}

func (r getTaskReq) toInput() task.GetInput {
	return task.GetInput{TaskID: r.TaskID}
}

type cancelTaskReq struct {
	TaskID string
}

func (r cancelTaskReq) toInput() task.CancelInput {
	return task.CancelInput{TaskID: r.TaskID}
}

type listTasksReq struct {
	Type      string `form:"type"`
	Status    string `form:"status"`
	ChannelID string `form:"channel_id"`
	Page      int    `form:"page"`
	Limit     int64  `form:"limit"`
}

func (r listTasksReq) toInput() task.ListInput {
	return task.ListInput{
		Type:      r.Type,
		Status:    r.Status,
		ChannelID: r.ChannelID,
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

// Response DTOs

type createTaskResp struct {
	TaskID  string `json:"task_id"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

type taskResp struct {
	ID             string   `json:"id"`
	Type           string   `json:"type"`
	ChannelID      string   `json:"channel_id,omitempty"`
	VideoIDs       []string `json:"video_ids,omitempty"`
	Status         string   `json:"status"`
	Progress       int      `json:"progress"`
	ErrorMessage   string   `json:"error_message,omitempty"`
	TotalItems     int      `json:"total_items"`
	ProcessedItems int      `json:"processed_items"`
	FailedItems    int      `json:"failed_items"`
	StartedAt      *string  `json:"started_at,omitempty"`
	CompletedAt    *string  `json:"completed_at,omitempty"`
	CreatedAt      string   `json:"created_at"`
}

type listTasksResp struct {
	Tasks     []taskResp                  `json:"tasks"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newCreateTaskResp(o task.CreateOutput) createTaskResp {
	return createTaskResp{
		TaskID:  o.TaskID,
		Status:  o.Status,
		Message: o.Message,
	}
}

func (h *handler) newTaskResp(t *model.Task) taskResp {
	resp := taskResp{
		ID:             t.ID,
		Type:           t.Type,
		ChannelID:      t.ChannelID,
		VideoIDs:       t.VideoIDs,
		Status:         t.Status,
		Progress:       t.Progress,
		ErrorMessage:   t.ErrorMessage,
		TotalItems:     t.TotalItems,
		ProcessedItems: t.ProcessedItems,
		FailedItems:    t.FailedItems,
		CreatedAt:      t.CreatedAt.Format(time.RFC3339),
	}
	if t.StartedAt != nil {
		startedAt := t.StartedAt.Format(time.RFC3339)
		resp.StartedAt = &startedAt
	}
	if t.CompletedAt != nil {
		completedAt := t.CompletedAt.Format(time.RFC3339)
		resp.CompletedAt = &completedAt
	}
	return resp
}

func (h *handler) newListTasksResp(o task.ListOutput) listTasksResp {
	tasks := make([]taskResp, 0, len(o.Tasks))
	for _, t := range o.Tasks {
		tasks = append(tasks, h.newTaskResp(t))
	}
	return listTasksResp{
		Tasks:     tasks,
		Paginator: o.Paginator.ToResponse(),
	}
}

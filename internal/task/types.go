package task

import (
	"time"

	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

type CreateInput struct {
	Type      string
	ChannelID string
	VideoIDs  []string
	// MaxVideos bounds how many uploads a channel_parse task fetches.
	// Zero means the configured default.
	MaxVideos int64
}

type CreateOutput struct {
	TaskID  string
	Status  string
	Message string
}

type GetInput struct {
	TaskID string
}

type GetOutput struct {
	Task *model.Task
}

type CancelInput struct {
	TaskID string
}

type CancelOutput struct {
	Task *model.Task
}

type ListInput struct {
	Type          string
	Status        string
	ChannelID     string
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Tasks     []*model.Task
	Paginator paginator.Paginator
}

type UpdateProgressInput struct {
	TaskID         string
	Progress       int
	ProcessedItems int
	FailedItems    int
}

type MarkCompletedInput struct {
	TaskID         string
	TotalItems     int
	ProcessedItems int
	FailedItems    int
}

// DispatchMessage is the payload published to the dispatch topic.
type DispatchMessage struct {
	TaskID    string   `json:"task_id"`
	Type      string   `json:"type"`
	ChannelID string   `json:"channel_id,omitempty"`
	VideoIDs  []string `json:"video_ids,omitempty"`
	MaxVideos int64    `json:"max_videos,omitempty"`
}

// ProgressEvent is the payload published to the progress exchange.
type ProgressEvent struct {
	TaskID         string    `json:"task_id"`
	Type           string    `json:"type"`
	Status         string    `json:"status"`
	Progress       int       `json:"progress"`
	ProcessedItems int       `json:"processed_items"`
	FailedItems    int       `json:"failed_items"`
	ErrorMessage   string    `json:"error_message,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}

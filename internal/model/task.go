package model

import (
	"encoding/json"
	"time"
)

// Task type constants
const (
	TaskTypeChannelParse  = "channel_parse"
	TaskTypeVideoAnalysis = "video_analysis"
)

// Task status constants
const (
	TaskStatusPending   = "PENDING"
	TaskStatusRunning   = "RUNNING"
	TaskStatusCompleted = "COMPLETED"
	TaskStatusFailed    = "FAILED"
	TaskStatusCancelled = "CANCELLED"
)

// Task represents an asynchronous processing job.
type Task struct {
	ID   string
	Type string // channel_parse | video_analysis

	// Input
	ChannelID string
	VideoIDs  []string
	Payload   json.RawMessage

	// Status
	Status       string
	Progress     int // 0..100
	ErrorMessage string

	// Result counters
	TotalItems     int
	ProcessedItems int
	FailedItems    int

	// Timestamps
	StartedAt   *time.Time
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsTerminal reports whether the task reached a final status.
func (t Task) IsTerminal() bool {
	return t.Status == TaskStatusCompleted || t.Status == TaskStatusFailed || t.Status == TaskStatusCancelled
}

package repository

import "time"

type CreateTaskOptions struct {
	ID        string
	Type      string
	ChannelID string
	VideoIDs  []string
	Payload   []byte // JSON
}

type ListTasksOptions struct {
	Type      string
	Status    string
	ChannelID string
	Limit     int
	Offset    int
}

type UpdateStatusOptions struct {
	TaskID       string
	Status       string
	ErrorMessage string

	TotalItems     int
	ProcessedItems int
	FailedItems    int

	StartedAt   *time.Time
	CompletedAt *time.Time
}

type UpdateProgressOptions struct {
	TaskID         string
	Progress       int
	ProcessedItems int
	FailedItems    int
}

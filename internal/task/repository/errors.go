package repository

import "errors"

var (
	ErrTaskNotFound     = errors.New("repository: task not found")
	ErrTaskCreateFailed = errors.New("repository: failed to create task")
	ErrTaskUpdateFailed = errors.New("repository: failed to update task")
)

package worker

import "errors"

var (
	ErrUnknownTaskType = errors.New("unknown task type")
	ErrChannelFetch    = errors.New("failed to fetch channel")
)

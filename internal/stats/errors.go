package stats

import "errors"

var (
	ErrChannelIDRequired = errors.New("channel_id is required")
	ErrChannelNotFound   = errors.New("channel not found")
)

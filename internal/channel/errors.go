package channel

import "errors"

var (
	ErrChannelNotFound    = errors.New("channel not found")
	ErrChannelRefRequired = errors.New("channel reference is required")
	ErrResolveFailed      = errors.New("failed to resolve channel")
)

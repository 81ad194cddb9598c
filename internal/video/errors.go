package video

import "errors"

var (
	ErrVideoNotFound   = errors.New("video not found")
	ErrVideoIDRequired = errors.New("video_id is required")
	ErrInvalidSort     = errors.New("invalid sort key")
	ErrAnalysisFailed  = errors.New("video analysis failed")
)

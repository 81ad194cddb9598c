package export

import "errors"

var (
	ErrExportNotFound      = errors.New("export not found")
	ErrExportNotCompleted  = errors.New("export is not completed")
	ErrChannelIDRequired   = errors.New("channel_id is required")
	ErrInvalidFormat       = errors.New("invalid export format")
	ErrGenerationFailed    = errors.New("export generation failed")
	ErrDownloadURLFailed   = errors.New("failed to generate download URL")
)

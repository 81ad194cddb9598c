package model

import "time"

// Export status constants
const (
	ExportStatusProcessing = "PROCESSING"
	ExportStatusCompleted  = "COMPLETED"
	ExportStatusFailed     = "FAILED"
)

// Export format constants
const (
	ExportFormatJSON = "json"
	ExportFormatCSV  = "csv"
)

// Export represents a generated export file record.
type Export struct {
	ID        string
	ChannelID string

	// Export configuration
	Format     string // json | csv
	ParamsHash string

	// Status
	Status       string // PROCESSING | COMPLETED | FAILED
	ErrorMessage string

	// Output
	ObjectName    string
	FileURL       string
	FileSizeBytes int64

	// Metrics
	TotalVideos      int
	GenerationTimeMs int64

	// Timestamps
	CompletedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package export

import "encoding/json"

type GenerateInput struct {
	ChannelID string
	Format    string // json | csv
	Filters   ExportFilters
}

type ExportFilters struct {
	IsShort      *bool `json:"is_short,omitempty"`
	MinViews     int64 `json:"min_views,omitempty"`
	AnalyzedOnly bool  `json:"analyzed_only,omitempty"`
}

func (f ExportFilters) ToJSON() ([]byte, error) {
	return json.Marshal(f)
}

type GetExportInput struct {
	ExportID string
}

type DownloadInput struct {
	ExportID string
}

type GenerateOutput struct {
	ExportID string `json:"export_id"`
	Status   string `json:"status"`
	Message  string `json:"message"`
}

type ExportOutput struct {
	ID               string  `json:"id"`
	ChannelID        string  `json:"channel_id"`
	Format           string  `json:"format"`
	Status           string  `json:"status"`
	ErrorMessage     string  `json:"error_message,omitempty"`
	FileSizeBytes    int64   `json:"file_size_bytes,omitempty"`
	TotalVideos      int     `json:"total_videos,omitempty"`
	GenerationTimeMs int64   `json:"generation_time_ms,omitempty"`
	CompletedAt      *string `json:"completed_at,omitempty"`
	CreatedAt        string  `json:"created_at"`
}

type DownloadOutput struct {
	DownloadURL string `json:"download_url"`
	ExpiresAt   string `json:"expires_at"`
	FileName    string `json:"file_name"`
	FileSize    int64  `json:"file_size"`
}

package repository

import "time"

type CreateExportOptions struct {
	ID         string
	ChannelID  string
	Format     string
	ParamsHash string
	Filters    []byte // JSON
}

type FindByParamsHashOptions struct {
	ParamsHash string
	Status     string
}

type UpdateCompletedOptions struct {
	ExportID         string
	ObjectName       string
	FileURL          string
	FileSizeBytes    int64
	TotalVideos      int
	GenerationTimeMs int64
	CompletedAt      time.Time
}

type UpdateFailedOptions struct {
	ExportID     string
	ErrorMessage string
}

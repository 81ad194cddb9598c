package http

import "insight-srv/internal/export"

// Request DTOs

type generateExportReq struct {
	ChannelID string            `json:"channel_id" binding:"required"`
	Format    string            `json:"format" binding:"required"`
	Filters   *exportFilterReq  `json:"filters,omitempty"`
}

type exportFilterReq struct {
	IsShort      *bool `json:"is_short,omitempty"`
	MinViews     int64 `json:"min_views,omitempty"`
	AnalyzedOnly bool  `json:"analyzed_only,omitempty"`
}

func (r generateExportReq) toInput() export.GenerateInput {
	input := export.GenerateInput{
		ChannelID: r.ChannelID,
		Format:    r.Format,
	}
	if r.Filters != nil {
		input.Filters = export.ExportFilters{
			IsShort:      r.Filters.IsShort,
			MinViews:     r.Filters.MinViews,
			AnalyzedOnly: r.Filters.AnalyzedOnly,
		}
	}
	return input
}

type getExportReq struct {
	ExportID string
}

func (r getExportReq) toInput() export.GetExportInput {
	return export.GetExportInput{ExportID: r.ExportID}
}

type downloadExportReq struct {
	ExportID string
}

func (r downloadExportReq) toInput() export.DownloadInput {
	return export.DownloadInput{ExportID: r.ExportID}
}

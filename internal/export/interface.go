package export

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Generate(ctx context.Context, input GenerateInput) (GenerateOutput, error)
	GetExport(ctx context.Context, input GetExportInput) (ExportOutput, error)
	Download(ctx context.Context, input DownloadInput) (DownloadOutput, error)
}

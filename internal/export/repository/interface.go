package repository

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name ExportRepository
type ExportRepository interface {
	CreateExport(ctx context.Context, opts CreateExportOptions) (*model.Export, error)
	GetExportByID(ctx context.Context, id string) (*model.Export, error)
	FindByParamsHash(ctx context.Context, opts FindByParamsHashOptions) (*model.Export, error)
	UpdateCompleted(ctx context.Context, opts UpdateCompletedOptions) error
	UpdateFailed(ctx context.Context, opts UpdateFailedOptions) error
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ExportRepository
}

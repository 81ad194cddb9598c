package postgre

import (
	"context"
	"database/sql"

	"insight-srv/internal/export/repository"
	"insight-srv/internal/model"
)

const exportColumns = `id, channel_id, format, params_hash,
	status, error_message, object_name, file_url, file_size_bytes,
	total_videos, generation_time_ms, completed_at, created_at, updated_at`

// CreateExport - Insert a new export record in PROCESSING state.
func (r *implRepository) CreateExport(ctx context.Context, opts repository.CreateExportOptions) (*model.Export, error) {
	query := `
		INSERT INTO exports (id, channel_id, format, params_hash, filters, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + exportColumns

	row := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.ChannelID, opts.Format, opts.ParamsHash, opts.Filters, model.ExportStatusProcessing,
	)

	exp, err := scanExport(row)
	if err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.CreateExport: Failed to insert export: %v", err)
		return nil, repository.ErrExportCreateFailed
	}

	return exp, nil
}

// GetExportByID - Get export by primary key.
func (r *implRepository) GetExportByID(ctx context.Context, id string) (*model.Export, error) {
	query := `SELECT ` + exportColumns + ` FROM exports WHERE id = $1`

	exp, err := scanExport(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrExportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.GetExportByID: Failed to get export: %v", err)
		return nil, err
	}

	return exp, nil
}

// FindByParamsHash - Find the most recent export for a params hash and status.
func (r *implRepository) FindByParamsHash(ctx context.Context, opts repository.FindByParamsHashOptions) (*model.Export, error) {
	query := `SELECT ` + exportColumns + ` FROM exports WHERE params_hash = $1`
	args := []any{opts.ParamsHash}
	if opts.Status != "" {
		query += " AND status = $2"
		args = append(args, opts.Status)
	}
	query += " ORDER BY created_at DESC LIMIT 1"

	exp, err := scanExport(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, nil // Not found is not an error here
	}
	if err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.FindByParamsHash: Failed to find export: %v", err)
		return nil, err
	}

	return exp, nil
}

// UpdateCompleted - Mark export as COMPLETED with output metadata.
func (r *implRepository) UpdateCompleted(ctx context.Context, opts repository.UpdateCompletedOptions) error {
	query := `
		UPDATE exports
		SET status = $2, object_name = $3, file_url = $4, file_size_bytes = $5,
			total_videos = $6, generation_time_ms = $7, completed_at = $8, updated_at = NOW()
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query,
		opts.ExportID, model.ExportStatusCompleted, opts.ObjectName, opts.FileURL, opts.FileSizeBytes,
		opts.TotalVideos, opts.GenerationTimeMs, opts.CompletedAt,
	); err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.UpdateCompleted: Failed to update export: %v", err)
		return repository.ErrExportUpdateFailed
	}

	return nil
}

// UpdateFailed - Mark export as FAILED with error message.
func (r *implRepository) UpdateFailed(ctx context.Context, opts repository.UpdateFailedOptions) error {
	query := `
		UPDATE exports
		SET status = $2, error_message = $3, updated_at = NOW()
		WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query,
		opts.ExportID, model.ExportStatusFailed, opts.ErrorMessage,
	); err != nil {
		r.l.Errorf(ctx, "export.repository.postgre.UpdateFailed: Failed to update export: %v", err)
		return repository.ErrExportUpdateFailed
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExport(row rowScanner) (*model.Export, error) {
	var (
		exp         model.Export
		completedAt sql.NullTime
	)

	err := row.Scan(
		&exp.ID, &exp.ChannelID, &exp.Format, &exp.ParamsHash,
		&exp.Status, &exp.ErrorMessage, &exp.ObjectName, &exp.FileURL, &exp.FileSizeBytes,
		&exp.TotalVideos, &exp.GenerationTimeMs, &completedAt, &exp.CreatedAt, &exp.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if completedAt.Valid {
		t := completedAt.Time
		exp.CompletedAt = &t
	}

	return &exp, nil
}

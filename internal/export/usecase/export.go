package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"insight-srv/internal/export"
	"insight-srv/internal/export/repository"
	"insight-srv/internal/model"
	"insight-srv/pkg/minio"
)

// completedReuseWindow bounds how long a completed export is served
// again instead of regenerating.
const completedReuseWindow = 1 * time.Hour

// Generate creates a new export or returns the existing one when the
// same parameters are already processing or recently completed.
func (uc *implUseCase) Generate(ctx context.Context, input export.GenerateInput) (export.GenerateOutput, error) {
	if input.ChannelID == "" {
		return export.GenerateOutput{}, export.ErrChannelIDRequired
	}
	if input.Format != model.ExportFormatJSON && input.Format != model.ExportFormatCSV {
		return export.GenerateOutput{}, export.ErrInvalidFormat
	}

	paramsHash, err := uc.generateParamsHash(input)
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Generate: Failed to generate params hash: %v", err)
		return export.GenerateOutput{}, export.ErrGenerationFailed
	}

	existing, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		ParamsHash: paramsHash,
		Status:     model.ExportStatusProcessing,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Generate: Failed to check existing export: %v", err)
		return export.GenerateOutput{}, export.ErrGenerationFailed
	}
	if existing != nil {
		return export.GenerateOutput{
			ExportID: existing.ID,
			Status:   existing.Status,
			Message:  "Export is already being generated",
		}, nil
	}

	completed, err := uc.repo.FindByParamsHash(ctx, repository.FindByParamsHashOptions{
		ParamsHash: paramsHash,
		Status:     model.ExportStatusCompleted,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Generate: Failed to check completed export: %v", err)
		return export.GenerateOutput{}, export.ErrGenerationFailed
	}
	if completed != nil && time.Since(completed.CreatedAt) < completedReuseWindow {
		return export.GenerateOutput{
			ExportID: completed.ID,
			Status:   completed.Status,
			Message:  "Export already completed",
		}, nil
	}

	filterJSON, err := input.Filters.ToJSON()
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Generate: Failed to marshal filters: %v", err)
		return export.GenerateOutput{}, export.ErrGenerationFailed
	}

	exportID := uuid.New().String()
	exp, err := uc.repo.CreateExport(ctx, repository.CreateExportOptions{
		ID:         exportID,
		ChannelID:  input.ChannelID,
		Format:     input.Format,
		ParamsHash: paramsHash,
		Filters:    filterJSON,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Generate: Failed to create export: %v", err)
		return export.GenerateOutput{}, export.ErrGenerationFailed
	}

	go uc.generateInBackground(exp.ID, input)

	return export.GenerateOutput{
		ExportID: exp.ID,
		Status:   model.ExportStatusProcessing,
		Message:  "Export generation started",
	}, nil
}

// GetExport returns the current status and metadata of an export.
func (uc *implUseCase) GetExport(ctx context.Context, input export.GetExportInput) (export.ExportOutput, error) {
	exp, err := uc.repo.GetExportByID(ctx, input.ExportID)
	if errors.Is(err, repository.ErrExportNotFound) {
		return export.ExportOutput{}, export.ErrExportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.GetExport: Failed to get export: %v", err)
		return export.ExportOutput{}, err
	}

	return uc.buildExportOutput(exp), nil
}

// Download generates a presigned download URL for a completed export.
func (uc *implUseCase) Download(ctx context.Context, input export.DownloadInput) (export.DownloadOutput, error) {
	exp, err := uc.repo.GetExportByID(ctx, input.ExportID)
	if errors.Is(err, repository.ErrExportNotFound) {
		return export.DownloadOutput{}, export.ErrExportNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Download: Failed to get export: %v", err)
		return export.DownloadOutput{}, err
	}

	if exp.Status != model.ExportStatusCompleted {
		return export.DownloadOutput{}, export.ErrExportNotCompleted
	}

	expiry := 30 * time.Minute
	presigned, err := uc.minio.GetPresignedDownloadURL(ctx, &minio.PresignedURLRequest{
		BucketName: uc.config.ExportBucket,
		ObjectName: exp.ObjectName,
		Expiry:     expiry,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.Download: Failed to generate presigned URL: %v", err)
		return export.DownloadOutput{}, export.ErrDownloadURLFailed
	}

	return export.DownloadOutput{
		DownloadURL: presigned.URL,
		ExpiresAt:   presigned.ExpiresAt.Format(time.RFC3339),
		FileName:    fmt.Sprintf("export_%s.%s", exp.ID, exp.Format),
		FileSize:    exp.FileSizeBytes,
	}, nil
}

// generateParamsHash derives the deduplication key from the export parameters.
func (uc *implUseCase) generateParamsHash(input export.GenerateInput) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"channel_id": input.ChannelID,
		"format":     input.Format,
		"filters":    input.Filters,
	})
	if err != nil {
		return "", err
	}

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

func (uc *implUseCase) buildExportOutput(exp *model.Export) export.ExportOutput {
	out := export.ExportOutput{
		ID:               exp.ID,
		ChannelID:        exp.ChannelID,
		Format:           exp.Format,
		Status:           exp.Status,
		ErrorMessage:     exp.ErrorMessage,
		FileSizeBytes:    exp.FileSizeBytes,
		TotalVideos:      exp.TotalVideos,
		GenerationTimeMs: exp.GenerationTimeMs,
		CreatedAt:        exp.CreatedAt.Format(time.RFC3339),
	}
	if exp.CompletedAt != nil {
		completedAt := exp.CompletedAt.Format(time.RFC3339)
		out.CompletedAt = &completedAt
	}
	return out
}

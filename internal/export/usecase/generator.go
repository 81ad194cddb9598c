package usecase

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"insight-srv/internal/analysis"
	"insight-srv/internal/export"
	"insight-srv/internal/export/repository"
	"insight-srv/internal/model"
	videoRepo "insight-srv/internal/video/repository"
	"insight-srv/pkg/minio"
)

// generateInBackground runs the export pipeline. This is called in a
// goroutine and must handle its own errors.
//
// Pipeline: Collect videos → Filter → Compile (CSV/JSON) → Upload
func (uc *implUseCase) generateInBackground(exportID string, input export.GenerateInput) {
	ctx := context.Background()
	startTime := time.Now()

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "export.usecase.generateInBackground: panic recovered: %v", r)
			_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
				ExportID:     exportID,
				ErrorMessage: fmt.Sprintf("internal panic: %v", r),
			})
		}
	}()

	uc.l.Infof(ctx, "export.usecase.generateInBackground: Starting generation for export %s", exportID)

	videos, err := uc.videos.ListVideos(ctx, videoRepo.ListVideosOptions{
		ChannelID: input.ChannelID,
		IsShort:   input.Filters.IsShort,
		MinViews:  input.Filters.MinViews,
		Limit:     uc.config.MaxRows,
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.generateInBackground: Failed to collect videos: %v", err)
		_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			ExportID:     exportID,
			ErrorMessage: fmt.Sprintf("collect failed: %v", err),
		})
		return
	}

	if input.Filters.AnalyzedOnly {
		filtered := videos[:0]
		for _, v := range videos {
			if v.AnalyzedAt != nil {
				filtered = append(filtered, v)
			}
		}
		videos = filtered
	}

	if len(videos) == 0 {
		_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			ExportID:     exportID,
			ErrorMessage: "no videos matched the export filters",
		})
		return
	}

	var (
		fileBytes   []byte
		contentType string
	)
	switch input.Format {
	case model.ExportFormatCSV:
		fileBytes, err = compileCSV(videos)
		contentType = "text/csv; charset=utf-8"
	default:
		fileBytes, err = compileJSON(videos)
		contentType = "application/json"
	}
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.generateInBackground: Compile failed: %v", err)
		_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			ExportID:     exportID,
			ErrorMessage: fmt.Sprintf("compile failed: %v", err),
		})
		return
	}

	objectName := fmt.Sprintf("exports/%s.%s", exportID, input.Format)
	info, err := uc.minio.UploadFile(ctx, &minio.UploadRequest{
		BucketName:  uc.config.ExportBucket,
		ObjectName:  objectName,
		Reader:      bytes.NewReader(fileBytes),
		Size:        int64(len(fileBytes)),
		ContentType: contentType,
		Metadata: map[string]string{
			"export_id":  exportID,
			"channel_id": input.ChannelID,
			"format":     input.Format,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "export.usecase.generateInBackground: Upload failed: %v", err)
		_ = uc.repo.UpdateFailed(ctx, repository.UpdateFailedOptions{
			ExportID:     exportID,
			ErrorMessage: fmt.Sprintf("upload failed: %v", err),
		})
		return
	}

	if err := uc.repo.UpdateCompleted(ctx, repository.UpdateCompletedOptions{
		ExportID:         exportID,
		ObjectName:       objectName,
		FileURL:          objectName,
		FileSizeBytes:    info.Size,
		TotalVideos:      len(videos),
		GenerationTimeMs: time.Since(startTime).Milliseconds(),
		CompletedAt:      time.Now(),
	}); err != nil {
		uc.l.Errorf(ctx, "export.usecase.generateInBackground: Failed to mark completed: %v", err)
		return
	}

	uc.l.Infof(ctx, "export.usecase.generateInBackground: Export %s completed with %d videos in %dms",
		exportID, len(videos), time.Since(startTime).Milliseconds())
}

var csvHeader = []string{
	"video_id", "channel_id", "title", "duration_seconds", "is_short",
	"view_count", "like_count", "comment_count", "published_at",
	"analyzed_at", "total_score", "recommendation",
}

// compileCSV renders the export rows, joining in the stored analysis
// verdict when present.
func compileCSV(videos []*model.Video) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, err
	}

	for _, v := range videos {
		analyzedAt := ""
		if v.AnalyzedAt != nil {
			analyzedAt = v.AnalyzedAt.Format(time.RFC3339)
		}

		totalScore, recommendation := analysisSummary(v)

		row := []string{
			v.ID,
			v.ChannelID,
			v.Title,
			strconv.FormatInt(v.DurationSeconds, 10),
			strconv.FormatBool(v.IsShort()),
			strconv.FormatInt(v.ViewCount, 10),
			strconv.FormatInt(v.LikeCount, 10),
			strconv.FormatInt(v.CommentCount, 10),
			v.PublishedAt.Format(time.RFC3339),
			analyzedAt,
			totalScore,
			recommendation,
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type exportedVideo struct {
	ID              string          `json:"id"`
	ChannelID       string          `json:"channel_id"`
	Title           string          `json:"title"`
	DurationSeconds int64           `json:"duration_seconds"`
	IsShort         bool            `json:"is_short"`
	ViewCount       int64           `json:"view_count"`
	LikeCount       int64           `json:"like_count"`
	CommentCount    int64           `json:"comment_count"`
	PublishedAt     string          `json:"published_at"`
	AnalyzedAt      string          `json:"analyzed_at,omitempty"`
	Analysis        json.RawMessage `json:"analysis,omitempty"`
}

func compileJSON(videos []*model.Video) ([]byte, error) {
	rows := make([]exportedVideo, 0, len(videos))
	for _, v := range videos {
		row := exportedVideo{
			ID:              v.ID,
			ChannelID:       v.ChannelID,
			Title:           v.Title,
			DurationSeconds: v.DurationSeconds,
			IsShort:         v.IsShort(),
			ViewCount:       v.ViewCount,
			LikeCount:       v.LikeCount,
			CommentCount:    v.CommentCount,
			PublishedAt:     v.PublishedAt.Format(time.RFC3339),
			Analysis:        v.Analysis,
		}
		if v.AnalyzedAt != nil {
			row.AnalyzedAt = v.AnalyzedAt.Format(time.RFC3339)
		}
		rows = append(rows, row)
	}

	return json.MarshalIndent(rows, "", "  ")
}

// analysisSummary extracts the headline score fields from the stored
// analysis JSON, empty when the video has not been analyzed.
func analysisSummary(v *model.Video) (totalScore, recommendation string) {
	if len(v.Analysis) == 0 {
		return "", ""
	}

	var result analysis.AnalysisResult
	if err := json.Unmarshal(v.Analysis, &result); err != nil {
		return "", ""
	}

	return strconv.FormatFloat(result.Potential.Total, 'f', 1, 64), result.Potential.Recommendation
}

package postgre

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"insight-srv/internal/model"
	"insight-srv/internal/video/repository"
)

const videoColumns = `id, channel_id, title, description, tags, category_id,
	duration_seconds, definition, has_captions,
	view_count, like_count, comment_count,
	analysis, analyzed_at, published_at, fetched_at, created_at, updated_at`

// UpsertVideo - Insert the video or refresh its snapshot when it already exists.
// The analysis columns are left untouched on conflict.
func (r *implRepository) UpsertVideo(ctx context.Context, opts repository.UpsertVideoOptions) (*model.Video, error) {
	query := `
		INSERT INTO videos (
			id, channel_id, title, description, tags, category_id,
			duration_seconds, definition, has_captions,
			view_count, like_count, comment_count,
			published_at, fetched_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			tags = EXCLUDED.tags,
			category_id = EXCLUDED.category_id,
			duration_seconds = EXCLUDED.duration_seconds,
			definition = EXCLUDED.definition,
			has_captions = EXCLUDED.has_captions,
			view_count = EXCLUDED.view_count,
			like_count = EXCLUDED.like_count,
			comment_count = EXCLUDED.comment_count,
			published_at = EXCLUDED.published_at,
			fetched_at = EXCLUDED.fetched_at,
			updated_at = NOW()
		RETURNING ` + videoColumns

	row := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.ChannelID, opts.Title, opts.Description, pq.Array(opts.Tags), opts.CategoryID,
		opts.DurationSeconds, opts.Definition, opts.HasCaptions,
		opts.ViewCount, opts.LikeCount, opts.CommentCount,
		opts.PublishedAt, opts.FetchedAt,
	)

	video, err := scanVideo(row)
	if err != nil {
		r.l.Errorf(ctx, "video.repository.postgre.UpsertVideo: Failed to upsert video: %v", err)
		return nil, repository.ErrVideoUpsertFailed
	}

	return video, nil
}

// GetVideoByID - Get video by primary key.
func (r *implRepository) GetVideoByID(ctx context.Context, id string) (*model.Video, error) {
	query := `SELECT ` + videoColumns + ` FROM videos WHERE id = $1`

	video, err := scanVideo(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrVideoNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "video.repository.postgre.GetVideoByID: Failed to get video: %v", err)
		return nil, err
	}

	return video, nil
}

// ListVideos - List videos with filters, sorting and pagination.
func (r *implRepository) ListVideos(ctx context.Context, opts repository.ListVideosOptions) ([]*model.Video, error) {
	query, args := r.buildListVideosQuery(opts, false)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "video.repository.postgre.ListVideos: Failed to list videos: %v", err)
		return nil, err
	}
	defer rows.Close()

	videos := make([]*model.Video, 0)
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			r.l.Errorf(ctx, "video.repository.postgre.ListVideos: Failed to scan video: %v", err)
			return nil, err
		}
		videos = append(videos, video)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "video.repository.postgre.ListVideos: Rows iteration failed: %v", err)
		return nil, err
	}

	return videos, nil
}

// CountVideos - Count videos matching the same filters as ListVideos.
func (r *implRepository) CountVideos(ctx context.Context, opts repository.ListVideosOptions) (int64, error) {
	query, args := r.buildListVideosQuery(opts, true)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "video.repository.postgre.CountVideos: Failed to count videos: %v", err)
		return 0, err
	}

	return total, nil
}

// UpdateAnalysis - Persist the analysis result for a video.
func (r *implRepository) UpdateAnalysis(ctx context.Context, opts repository.UpdateAnalysisOptions) error {
	query := `
		UPDATE videos
		SET analysis = $2, analyzed_at = $3, updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query, opts.VideoID, opts.Analysis, opts.AnalyzedAt)
	if err != nil {
		r.l.Errorf(ctx, "video.repository.postgre.UpdateAnalysis: Failed to update analysis: %v", err)
		return repository.ErrVideoUpdateFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "video.repository.postgre.UpdateAnalysis: Failed to read rows affected: %v", err)
		return repository.ErrVideoUpdateFailed
	}
	if affected == 0 {
		return repository.ErrVideoNotFound
	}

	return nil
}

// ListVideosByChannel - All videos of one channel, newest first.
func (r *implRepository) ListVideosByChannel(ctx context.Context, channelID string) ([]*model.Video, error) {
	return r.ListVideos(ctx, repository.ListVideosOptions{ChannelID: channelID})
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanVideo(row rowScanner) (*model.Video, error) {
	var (
		video      model.Video
		tags       pq.StringArray
		analysis   []byte
		analyzedAt sql.NullTime
	)

	err := row.Scan(
		&video.ID, &video.ChannelID, &video.Title, &video.Description, &tags, &video.CategoryID,
		&video.DurationSeconds, &video.Definition, &video.HasCaptions,
		&video.ViewCount, &video.LikeCount, &video.CommentCount,
		&analysis, &analyzedAt, &video.PublishedAt, &video.FetchedAt, &video.CreatedAt, &video.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	video.Tags = tags
	video.Analysis = analysis
	if analyzedAt.Valid {
		t := analyzedAt.Time
		video.AnalyzedAt = &t
	}

	return &video, nil
}

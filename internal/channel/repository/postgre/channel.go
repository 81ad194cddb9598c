package postgre

import (
	"context"
	"database/sql"

	"insight-srv/internal/channel/repository"
	"insight-srv/internal/model"
)

const channelColumns = `id, title, description, custom_url, country,
	subscriber_count, video_count, view_count,
	published_at, fetched_at, created_at, updated_at`

// UpsertChannel - Insert the channel or refresh its snapshot.
func (r *implRepository) UpsertChannel(ctx context.Context, opts repository.UpsertChannelOptions) (*model.Channel, error) {
	query := `
		INSERT INTO channels (
			id, title, description, custom_url, country,
			subscriber_count, video_count, view_count,
			published_at, fetched_at, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			custom_url = EXCLUDED.custom_url,
			country = EXCLUDED.country,
			subscriber_count = EXCLUDED.subscriber_count,
			video_count = EXCLUDED.video_count,
			view_count = EXCLUDED.view_count,
			published_at = EXCLUDED.published_at,
			fetched_at = EXCLUDED.fetched_at,
			updated_at = NOW()
		RETURNING ` + channelColumns

	row := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.Title, opts.Description, opts.CustomURL, opts.Country,
		opts.SubscriberCount, opts.VideoCount, opts.ViewCount,
		opts.PublishedAt, opts.FetchedAt,
	)

	channel, err := scanChannel(row)
	if err != nil {
		r.l.Errorf(ctx, "channel.repository.postgre.UpsertChannel: Failed to upsert channel: %v", err)
		return nil, repository.ErrChannelUpsertFailed
	}

	return channel, nil
}

// GetChannelByID - Get channel by primary key.
func (r *implRepository) GetChannelByID(ctx context.Context, id string) (*model.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels WHERE id = $1`

	channel, err := scanChannel(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrChannelNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "channel.repository.postgre.GetChannelByID: Failed to get channel: %v", err)
		return nil, err
	}

	return channel, nil
}

// ListChannels - List tracked channels, most subscribers first.
func (r *implRepository) ListChannels(ctx context.Context, opts repository.ListChannelsOptions) ([]*model.Channel, error) {
	query := `SELECT ` + channelColumns + ` FROM channels ORDER BY subscriber_count DESC`
	args := []any{}
	if opts.Limit > 0 {
		args = append(args, opts.Limit)
		query += " LIMIT $1"
	}
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		if len(args) == 1 {
			query += " OFFSET $1"
		} else {
			query += " OFFSET $2"
		}
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "channel.repository.postgre.ListChannels: Failed to list channels: %v", err)
		return nil, err
	}
	defer rows.Close()

	channels := make([]*model.Channel, 0)
	for rows.Next() {
		channel, err := scanChannel(rows)
		if err != nil {
			r.l.Errorf(ctx, "channel.repository.postgre.ListChannels: Failed to scan channel: %v", err)
			return nil, err
		}
		channels = append(channels, channel)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "channel.repository.postgre.ListChannels: Rows iteration failed: %v", err)
		return nil, err
	}

	return channels, nil
}

// CountChannels - Count all tracked channels.
func (r *implRepository) CountChannels(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM channels`).Scan(&total); err != nil {
		r.l.Errorf(ctx, "channel.repository.postgre.CountChannels: Failed to count channels: %v", err)
		return 0, err
	}
	return total, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanChannel(row rowScanner) (*model.Channel, error) {
	var channel model.Channel
	err := row.Scan(
		&channel.ID, &channel.Title, &channel.Description, &channel.CustomURL, &channel.Country,
		&channel.SubscriberCount, &channel.VideoCount, &channel.ViewCount,
		&channel.PublishedAt, &channel.FetchedAt, &channel.CreatedAt, &channel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &channel, nil
}

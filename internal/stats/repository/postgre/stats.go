package postgre

import (
	"context"

	"insight-srv/internal/stats/repository"
)

// GetVideoAggregate - Compute the counters in one pass. An empty
// channelID aggregates over all channels.
func (r *implRepository) GetVideoAggregate(ctx context.Context, channelID string) (repository.VideoAggregate, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE analyzed_at IS NOT NULL),
			COUNT(*) FILTER (WHERE duration_seconds > 0 AND duration_seconds <= 60),
			COALESCE(SUM(view_count), 0),
			COALESCE(SUM(like_count), 0),
			COALESCE(SUM(comment_count), 0)
		FROM videos
		WHERE ($1 = '' OR channel_id = $1)`

	var agg repository.VideoAggregate
	err := r.db.QueryRowContext(ctx, query, channelID).Scan(
		&agg.TotalVideos, &agg.AnalyzedVideos, &agg.ShortsCount,
		&agg.TotalViews, &agg.TotalLikes, &agg.TotalComments,
	)
	if err != nil {
		r.l.Errorf(ctx, "stats.repository.postgre.GetVideoAggregate: Failed to aggregate videos: %v", err)
		return repository.VideoAggregate{}, err
	}

	return agg, nil
}

// GetVerdictDistribution - Count analyzed videos per recommendation
// label. An empty channelID counts over all channels.
func (r *implRepository) GetVerdictDistribution(ctx context.Context, channelID string) (map[string]int64, error) {
	query := `
		SELECT analysis -> 'potential_score' ->> 'recommendation', COUNT(*)
		FROM videos
		WHERE ($1 = '' OR channel_id = $1) AND analysis IS NOT NULL
		GROUP BY 1`

	rows, err := r.db.QueryContext(ctx, query, channelID)
	if err != nil {
		r.l.Errorf(ctx, "stats.repository.postgre.GetVerdictDistribution: Failed to query distribution: %v", err)
		return nil, err
	}
	defer rows.Close()

	distribution := make(map[string]int64)
	for rows.Next() {
		var (
			verdict string
			count   int64
		)
		if err := rows.Scan(&verdict, &count); err != nil {
			r.l.Errorf(ctx, "stats.repository.postgre.GetVerdictDistribution: Failed to scan row: %v", err)
			return nil, err
		}
		distribution[verdict] = count
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "stats.repository.postgre.GetVerdictDistribution: Rows iteration failed: %v", err)
		return nil, err
	}

	return distribution, nil
}

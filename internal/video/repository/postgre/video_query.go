package postgre

import (
	"fmt"
	"strings"

	"insight-srv/internal/video/repository"
)

// shortMaxSeconds mirrors the Shorts duration cutoff used by model.Video.
const shortMaxSeconds = 60

var sortColumns = map[string]string{
	"published_at": "published_at",
	"views":        "view_count",
	"likes":        "like_count",
	"comments":     "comment_count",
}

// buildListVideosQuery - Build the filtered query for ListVideos / CountVideos.
func (r *implRepository) buildListVideosQuery(opts repository.ListVideosOptions, count bool) (string, []any) {
	var (
		where []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if opts.ChannelID != "" {
		where = append(where, "channel_id = "+arg(opts.ChannelID))
	}
	if opts.IsShort != nil {
		if *opts.IsShort {
			where = append(where, fmt.Sprintf("duration_seconds > 0 AND duration_seconds <= %d", shortMaxSeconds))
		} else {
			where = append(where, fmt.Sprintf("duration_seconds > %d", shortMaxSeconds))
		}
	}
	if opts.MinViews > 0 {
		where = append(where, "view_count >= "+arg(opts.MinViews))
	}

	var sb strings.Builder
	if count {
		sb.WriteString("SELECT COUNT(*) FROM videos")
	} else {
		sb.WriteString("SELECT " + videoColumns + " FROM videos")
	}
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	if !count {
		column, ok := sortColumns[opts.Sort]
		if !ok {
			column = "published_at"
		}
		sb.WriteString(" ORDER BY " + column + " DESC")

		if opts.Limit > 0 {
			sb.WriteString(" LIMIT " + arg(opts.Limit))
		}
		if opts.Offset > 0 {
			sb.WriteString(" OFFSET " + arg(opts.Offset))
		}
	}

	return sb.String(), args
}

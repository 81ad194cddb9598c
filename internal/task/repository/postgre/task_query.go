package postgre

import (
	"fmt"
	"strings"

	"insight-srv/internal/task/repository"
)

// buildListTasksQuery - Build the filtered query for ListTasks / CountTasks.
func buildListTasksQuery(opts repository.ListTasksOptions, count bool) (string, []any) {
	var (
		where []string
		args  []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if opts.Type != "" {
		where = append(where, "type = "+arg(opts.Type))
	}
	if opts.Status != "" {
		where = append(where, "status = "+arg(opts.Status))
	}
	if opts.ChannelID != "" {
		where = append(where, "channel_id = "+arg(opts.ChannelID))
	}

	var sb strings.Builder
	if count {
		sb.WriteString("SELECT COUNT(*) FROM tasks")
	} else {
		sb.WriteString("SELECT " + taskColumns + " FROM tasks")
	}
	if len(where) > 0 {
		sb.WriteString(" WHERE " + strings.Join(where, " AND "))
	}

	if !count {
		sb.WriteString(" ORDER BY created_at DESC")
		if opts.Limit > 0 {
			sb.WriteString(" LIMIT " + arg(opts.Limit))
		}
		if opts.Offset > 0 {
			sb.WriteString(" OFFSET " + arg(opts.Offset))
		}
	}

	return sb.String(), args
}

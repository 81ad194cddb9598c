package postgre

import (
	"context"
	"database/sql"

	"github.com/lib/pq"

	"insight-srv/internal/model"
	"insight-srv/internal/task/repository"
)

const taskColumns = `id, type, channel_id, video_ids, payload,
	status, progress, error_message,
	total_items, processed_items, failed_items,
	started_at, completed_at, created_at, updated_at`

// CreateTask - Insert a new task in PENDING state.
func (r *implRepository) CreateTask(ctx context.Context, opts repository.CreateTaskOptions) (*model.Task, error) {
	query := `
		INSERT INTO tasks (id, type, channel_id, video_ids, payload, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING ` + taskColumns

	row := r.db.QueryRowContext(ctx, query,
		opts.ID, opts.Type, opts.ChannelID, pq.Array(opts.VideoIDs), opts.Payload, model.TaskStatusPending,
	)

	task, err := scanTask(row)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.postgre.CreateTask: Failed to insert task: %v", err)
		return nil, repository.ErrTaskCreateFailed
	}

	return task, nil
}

// GetTaskByID - Get task by primary key.
func (r *implRepository) GetTaskByID(ctx context.Context, id string) (*model.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1`

	task, err := scanTask(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, repository.ErrTaskNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "task.repository.postgre.GetTaskByID: Failed to get task: %v", err)
		return nil, err
	}

	return task, nil
}

// ListTasks - List tasks with filters and pagination, newest first.
func (r *implRepository) ListTasks(ctx context.Context, opts repository.ListTasksOptions) ([]*model.Task, error) {
	query, args := buildListTasksQuery(opts, false)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.postgre.ListTasks: Failed to list tasks: %v", err)
		return nil, err
	}
	defer rows.Close()

	tasks := make([]*model.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			r.l.Errorf(ctx, "task.repository.postgre.ListTasks: Failed to scan task: %v", err)
			return nil, err
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "task.repository.postgre.ListTasks: Rows iteration failed: %v", err)
		return nil, err
	}

	return tasks, nil
}

// CountTasks - Count tasks matching the same filters as ListTasks.
func (r *implRepository) CountTasks(ctx context.Context, opts repository.ListTasksOptions) (int64, error) {
	query, args := buildListTasksQuery(opts, true)

	var total int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&total); err != nil {
		r.l.Errorf(ctx, "task.repository.postgre.CountTasks: Failed to count tasks: %v", err)
		return 0, err
	}

	return total, nil
}

// UpdateStatus - Transition a task to a new status with its counters.
func (r *implRepository) UpdateStatus(ctx context.Context, opts repository.UpdateStatusOptions) error {
	query := `
		UPDATE tasks
		SET status = $2,
			error_message = $3,
			total_items = CASE WHEN $4 > 0 THEN $4 ELSE total_items END,
			processed_items = CASE WHEN $5 > 0 THEN $5 ELSE processed_items END,
			failed_items = CASE WHEN $6 > 0 THEN $6 ELSE failed_items END,
			started_at = COALESCE($7, started_at),
			completed_at = COALESCE($8, completed_at),
			progress = CASE WHEN $2 = 'COMPLETED' THEN 100 ELSE progress END,
			updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		opts.TaskID, opts.Status, opts.ErrorMessage,
		opts.TotalItems, opts.ProcessedItems, opts.FailedItems,
		opts.StartedAt, opts.CompletedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.postgre.UpdateStatus: Failed to update task: %v", err)
		return repository.ErrTaskUpdateFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "task.repository.postgre.UpdateStatus: Failed to read rows affected: %v", err)
		return repository.ErrTaskUpdateFailed
	}
	if affected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

// UpdateProgress - Refresh the progress counters of a running task.
func (r *implRepository) UpdateProgress(ctx context.Context, opts repository.UpdateProgressOptions) error {
	query := `
		UPDATE tasks
		SET progress = $2, processed_items = $3, failed_items = $4, updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		opts.TaskID, opts.Progress, opts.ProcessedItems, opts.FailedItems,
	)
	if err != nil {
		r.l.Errorf(ctx, "task.repository.postgre.UpdateProgress: Failed to update progress: %v", err)
		return repository.ErrTaskUpdateFailed
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "task.repository.postgre.UpdateProgress: Failed to read rows affected: %v", err)
		return repository.ErrTaskUpdateFailed
	}
	if affected == 0 {
		return repository.ErrTaskNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (*model.Task, error) {
	var (
		task        model.Task
		videoIDs    pq.StringArray
		payload     []byte
		startedAt   sql.NullTime
		completedAt sql.NullTime
	)

	err := row.Scan(
		&task.ID, &task.Type, &task.ChannelID, &videoIDs, &payload,
		&task.Status, &task.Progress, &task.ErrorMessage,
		&task.TotalItems, &task.ProcessedItems, &task.FailedItems,
		&startedAt, &completedAt, &task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	task.VideoIDs = videoIDs
	task.Payload = payload
	if startedAt.Valid {
		t := startedAt.Time
		task.StartedAt = &t
	}
	if completedAt.Valid {
		t := completedAt.Time
		task.CompletedAt = &t
	}

	return &task, nil
}

package repository

import "errors"

var (
	ErrVideoNotFound     = errors.New("repository: video not found")
	ErrVideoUpsertFailed = errors.New("repository: failed to upsert video")
	ErrVideoUpdateFailed = errors.New("repository: failed to update video")
	ErrCacheMiss         = errors.New("repository: cache miss")
)

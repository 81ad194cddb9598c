package repository

import "errors"

var (
	ErrChannelNotFound     = errors.New("repository: channel not found")
	ErrChannelUpsertFailed = errors.New("repository: failed to upsert channel")
)

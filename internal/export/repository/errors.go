package repository

import "errors"

var (
	ErrExportNotFound     = errors.New("repository: export not found")
	ErrExportCreateFailed = errors.New("repository: failed to create export")
	ErrExportUpdateFailed = errors.New("repository: failed to update export")
)

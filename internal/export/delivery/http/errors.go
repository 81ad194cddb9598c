package http

import (
	"errors"

	"insight-srv/internal/export"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errExportNotFound     = pkgErrors.NewHTTPError(404, "Export not found")
	errExportNotCompleted = pkgErrors.NewHTTPError(400, "Export is not completed yet")
	errExportIDRequired   = pkgErrors.NewHTTPError(400, "Export ID is required")
	errChannelIDRequired  = pkgErrors.NewHTTPError(400, "Channel ID is required")
	errInvalidFormat      = pkgErrors.NewHTTPError(400, "Invalid export format")
	errGenerationFailed   = pkgErrors.NewHTTPError(500, "Export generation failed")
	errDownloadURLFailed  = pkgErrors.NewHTTPError(500, "Failed to generate download URL")
	errInvalidBody        = pkgErrors.NewHTTPError(400, "Invalid request body")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, export.ErrExportNotFound):
		return errExportNotFound
	case errors.Is(err, export.ErrExportNotCompleted):
		return errExportNotCompleted
	case errors.Is(err, export.ErrChannelIDRequired):
		return errChannelIDRequired
	case errors.Is(err, export.ErrInvalidFormat):
		return errInvalidFormat
	case errors.Is(err, export.ErrGenerationFailed):
		return errGenerationFailed
	case errors.Is(err, export.ErrDownloadURLFailed):
		return errDownloadURLFailed
	default:
		panic(err)
	}
}

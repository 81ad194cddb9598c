package http

import (
	"errors"

	"insight-srv/internal/video"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errVideoNotFound   = pkgErrors.NewHTTPError(404, "Video not found")
	errVideoIDRequired = pkgErrors.NewHTTPError(400, "Video ID is required")
	errInvalidQuery    = pkgErrors.NewHTTPError(400, "Invalid query parameters")
	errInvalidSort     = pkgErrors.NewHTTPError(400, "Invalid sort key")
	errAnalysisFailed  = pkgErrors.NewHTTPError(500, "Video analysis failed")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, video.ErrVideoNotFound):
		return errVideoNotFound
	case errors.Is(err, video.ErrVideoIDRequired):
		return errVideoIDRequired
	case errors.Is(err, video.ErrInvalidSort):
		return errInvalidSort
	case errors.Is(err, video.ErrAnalysisFailed):
		return errAnalysisFailed
	default:
		panic(err)
	}
}

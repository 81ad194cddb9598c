package http

import (
	"errors"

	"insight-srv/internal/stats"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errChannelNotFound   = pkgErrors.NewHTTPError(404, "Channel not found")
	errChannelIDRequired = pkgErrors.NewHTTPError(400, "Channel ID is required")
	errInvalidQuery      = pkgErrors.NewHTTPError(400, "Invalid query parameters")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, stats.ErrChannelNotFound):
		return errChannelNotFound
	case errors.Is(err, stats.ErrChannelIDRequired):
		return errChannelIDRequired
	default:
		panic(err)
	}
}

package http

import (
	"errors"

	"insight-srv/internal/channel"
	pkgErrors "insight-srv/pkg/errors"
)

var (
	errChannelNotFound    = pkgErrors.NewHTTPError(404, "Channel not found")
	errChannelRefRequired = pkgErrors.NewHTTPError(400, "Channel reference is required")
	errResolveFailed      = pkgErrors.NewHTTPError(502, "Failed to resolve channel")
	errInvalidQuery       = pkgErrors.NewHTTPError(400, "Invalid query parameters")
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, channel.ErrChannelNotFound):
		return errChannelNotFound
	case errors.Is(err, channel.ErrChannelRefRequired):
		return errChannelRefRequired
	case errors.Is(err, channel.ErrResolveFailed):
		return errResolveFailed
	default:
		panic(err)
	}
}

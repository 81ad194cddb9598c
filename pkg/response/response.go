package response

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"insight-srv/pkg/discord"
	pkgErrors "insight-srv/pkg/errors"
)

// OK writes a 200 response with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeOK,
		Message:   messageOK,
		Data:      data,
	})
}

// Error writes an error response. HTTPError and ValidationError are
// rendered as-is; anything else becomes a 500 and is reported to the
// notification webhook when one is configured.
func Error(c *gin.Context, err error, notifier discord.IDiscord) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	var validationErr *pkgErrors.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, Resp{
			ErrorCode: codeBadRequest,
			Message:   "Invalid request",
			Errors:    validationErr.Fields,
		})
		return
	}

	reportInternal(c, err, notifier)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   messageInternalError,
	})
}

// PanicError reports a recovered panic and writes a 500 response.
func PanicError(c *gin.Context, recovered any, notifier discord.IDiscord) {
	reportInternal(c, fmt.Errorf("panic: %v", recovered), notifier)
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   messageInternalError,
	})
}

func reportInternal(c *gin.Context, err error, notifier discord.IDiscord) {
	if notifier == nil {
		return
	}
	title := fmt.Sprintf("%s %s", c.Request.Method, c.Request.URL.Path)
	_ = notifier.SendError(context.WithoutCancel(c.Request.Context()), title, "Unhandled internal error", err)
}

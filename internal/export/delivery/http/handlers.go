package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/pkg/response"
)

// GenerateExport starts an async export of a channel's videos.
func (h *handler) GenerateExport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGenerateExportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.GenerateExport: processGenerateExportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Generate(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.GenerateExport: usecase Generate failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// GetExport returns the status and metadata of an export.
func (h *handler) GetExport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetExportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.GetExport: processGetExportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetExport(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.GetExport: usecase GetExport failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

// DownloadExport returns a presigned download URL for a completed export.
func (h *handler) DownloadExport(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processDownloadExportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.DownloadExport: processDownloadExportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Download(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "export.delivery.http.DownloadExport: usecase Download failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, o)
}

package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processGenerateExportRequest(c *gin.Context) (generateExportReq, error) {
	var req generateExportReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "export.delivery.http.processGenerateExportRequest: ShouldBindJSON failed: %v", err)
		return req, errInvalidBody
	}

	return req, nil
}

func (h *handler) processGetExportRequest(c *gin.Context) (getExportReq, error) {
	req := getExportReq{
		ExportID: c.Param("export_id"),
	}
	if req.ExportID == "" {
		return req, errExportIDRequired
	}

	return req, nil
}

func (h *handler) processDownloadExportRequest(c *gin.Context) (downloadExportReq, error) {
	req := downloadExportReq{
		ExportID: c.Param("export_id"),
	}
	if req.ExportID == "" {
		return req, errExportIDRequired
	}

	return req, nil
}

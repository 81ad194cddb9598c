package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processListVideosRequest(c *gin.Context) (listVideosReq, error) {
	var req listVideosReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "video.delivery.http.processListVideosRequest: ShouldBindQuery failed: %v", err)
		return req, errInvalidQuery
	}

	return req, nil
}

func (h *handler) processGetVideoRequest(c *gin.Context) (getVideoReq, error) {
	req := getVideoReq{
		VideoID: c.Param("video_id"),
	}
	if req.VideoID == "" {
		return req, errVideoIDRequired
	}

	return req, nil
}

func (h *handler) processAnalyzeVideoRequest(c *gin.Context) (analyzeVideoReq, error) {
	req := analyzeVideoReq{
		VideoID: c.Param("video_id"),
		Force:   c.Query("force") == "true",
	}
	if req.VideoID == "" {
		return req, errVideoIDRequired
	}

	return req, nil
}

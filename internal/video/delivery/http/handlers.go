package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/pkg/response"
)

// ListVideos returns a filtered, paginated page of stored videos.
func (h *handler) ListVideos(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListVideosRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "video.delivery.http.ListVideos: processListVideosRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "video.delivery.http.ListVideos: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListVideosResp(o))
}

// GetVideo returns one video with its stored analysis.
func (h *handler) GetVideo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetVideoRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "video.delivery.http.GetVideo: processGetVideoRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Detail(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "video.delivery.http.GetVideo: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newVideoDetailResp(o))
}

// AnalyzeVideo scores one stored video on demand.
func (h *handler) AnalyzeVideo(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAnalyzeVideoRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "video.delivery.http.AnalyzeVideo: processAnalyzeVideoRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "video.delivery.http.AnalyzeVideo: usecase Analyze failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newAnalyzeVideoResp(o))
}

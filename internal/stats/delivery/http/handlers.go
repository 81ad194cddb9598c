package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/pkg/response"
)

// GetStats returns aggregated metrics over all stored videos.
func (h *handler) GetStats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetStatsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.GetStats: processGetStatsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Overview(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.GetStats: usecase Overview failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newOverviewResp(o))
}

// GetChannelStats returns aggregated metrics over a channel's stored videos.
func (h *handler) GetChannelStats(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetChannelStatsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.GetChannelStats: processGetChannelStatsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ChannelStats(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "stats.delivery.http.GetChannelStats: usecase ChannelStats failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newChannelStatsResp(o))
}

package http

import (
	"github.com/gin-gonic/gin"
)

func (h *handler) processTrackChannelRequest(c *gin.Context) (trackChannelReq, error) {
	var req trackChannelReq

	ctx := c.Request.Context()
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Errorf(ctx, "channel.delivery.http.processTrackChannelRequest: ShouldBindJSON failed: %v", err)
		return req, errChannelRefRequired
	}

	return req, nil
}

func (h *handler) processGetChannelRequest(c *gin.Context) (getChannelReq, error) {
	req := getChannelReq{
		ChannelID: c.Param("channel_id"),
	}
	if req.ChannelID == "" {
		return req, errChannelRefRequired
	}

	return req, nil
}

func (h *handler) processListChannelsRequest(c *gin.Context) (listChannelsReq, error) {
	var req listChannelsReq

	ctx := c.Request.Context()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.l.Errorf(ctx, "channel.delivery.http.processListChannelsRequest: ShouldBindQuery failed: %v", err)
		return req, errInvalidQuery
	}

	return req, nil
}

package http

import (
	"github.com/gin-gonic/gin"

	"insight-srv/pkg/response"
)

// TrackChannel resolves and stores a channel by ID, handle or username.
func (h *handler) TrackChannel(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processTrackChannelRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "channel.delivery.http.TrackChannel: processTrackChannelRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Track(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "channel.delivery.http.TrackChannel: usecase Track failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newChannelResp(o.Channel))
}

// GetChannel returns one tracked channel.
func (h *handler) GetChannel(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processGetChannelRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "channel.delivery.http.GetChannel: processGetChannelRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Detail(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "channel.delivery.http.GetChannel: usecase Detail failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newChannelResp(o.Channel))
}

// ListChannels returns a page of tracked channels.
func (h *handler) ListChannels(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListChannelsRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "channel.delivery.http.ListChannels: processListChannelsRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "channel.delivery.http.ListChannels: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListChannelsResp(o))
}

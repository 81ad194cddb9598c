package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetStatsRequest(c *gin.Context) (getStatsReq, error) {
	var req getStatsReq

	if raw := c.Query("top_videos"); raw != "" {
		topVideos, err := strconv.Atoi(raw)
		if err != nil || topVideos < 0 {
			return req, errInvalidQuery
		}
		req.TopVideos = topVideos
	}

	return req, nil
}

func (h *handler) processGetChannelStatsRequest(c *gin.Context) (getChannelStatsReq, error) {
	req := getChannelStatsReq{
		ChannelID: c.Param("channel_id"),
	}
	if req.ChannelID == "" {
		return req, errChannelIDRequired
	}

	if raw := c.Query("top_videos"); raw != "" {
		topVideos, err := strconv.Atoi(raw)
		if err != nil || topVideos < 0 {
			return req, errInvalidQuery
		}
		req.TopVideos = topVideos
	}

	return req, nil
}

package http

import (
	"time"

	"insight-srv/internal/channel"
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

// Request DTOs

type trackChannelReq struct {
	ChannelRef string `json:"channel_ref" binding:"required"`
}

func (r trackChannelReq) toInput() channel.TrackInput {
	return channel.TrackInput{ChannelRef: r.ChannelRef}
}

type getChannelReq struct {
	ChannelID string
}

func (r getChannelReq) toInput() channel.DetailInput {
	return channel.DetailInput{ChannelID: r.ChannelID}
}

type listChannelsReq struct {
	Page  int   `form:"page"`
	Limit int64 `form:"limit"`
}

func (r listChannelsReq) toInput() channel.ListInput {
	return channel.ListInput{
		PaginateQuery: paginator.PaginateQuery{
			Page:  r.Page,
			Limit: r.Limit,
		},
	}
}

// Response DTOs

type channelResp struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	CustomURL       string `json:"custom_url,omitempty"`
	Country         string `json:"country,omitempty"`
	SubscriberCount int64  `json:"subscriber_count"`
	VideoCount      int64  `json:"video_count"`
	ViewCount       int64  `json:"view_count"`
	PublishedAt     string `json:"published_at"`
	FetchedAt       string `json:"fetched_at"`
}

type listChannelsResp struct {
	Channels  []channelResp                `json:"channels"`
	Paginator paginator.PaginatorResponse `json:"paginator"`
}

func (h *handler) newChannelResp(ch *model.Channel) channelResp {
	return channelResp{
		ID:              ch.ID,
		Title:           ch.Title,
		Description:     ch.Description,
		CustomURL:       ch.CustomURL,
		Country:         ch.Country,
		SubscriberCount: ch.SubscriberCount,
		VideoCount:      ch.VideoCount,
		ViewCount:       ch.ViewCount,
		PublishedAt:     ch.PublishedAt.Format(time.RFC3339),
		FetchedAt:       ch.FetchedAt.Format(time.RFC3339),
	}
}

func (h *handler) newListChannelsResp(o channel.ListOutput) listChannelsResp {
	channels := make([]channelResp, 0, len(o.Channels))
	for _, ch := range o.Channels {
		channels = append(channels, h.newChannelResp(ch))
	}
	return listChannelsResp{
		Channels:  channels,
		Paginator: o.Paginator.ToResponse(),
	}
}

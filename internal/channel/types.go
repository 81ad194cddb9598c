package channel

import (
	"insight-srv/internal/model"
	"insight-srv/pkg/paginator"
)

type TrackInput struct {
	// ChannelRef is a channel ID, @handle or legacy username.
	ChannelRef string
}

type TrackOutput struct {
	Channel *model.Channel
}

type DetailInput struct {
	ChannelID string
}

type DetailOutput struct {
	Channel *model.Channel
}

type ListInput struct {
	PaginateQuery paginator.PaginateQuery
}

type ListOutput struct {
	Channels  []*model.Channel
	Paginator paginator.Paginator
}

package usecase

import (
	"context"
	"errors"
	"time"

	"insight-srv/internal/channel"
	"insight-srv/internal/channel/repository"
	"insight-srv/pkg/paginator"
	"insight-srv/pkg/youtube"
)

// Track resolves the channel reference against the YouTube Data API and
// stores the channel snapshot.
func (uc *implUseCase) Track(ctx context.Context, input channel.TrackInput) (channel.TrackOutput, error) {
	if input.ChannelRef == "" {
		return channel.TrackOutput{}, channel.ErrChannelRefRequired
	}

	channelID, err := uc.youtube.ResolveChannelID(ctx, input.ChannelRef)
	if errors.Is(err, youtube.ErrChannelNotFound) {
		return channel.TrackOutput{}, channel.ErrChannelNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "channel.usecase.Track: Failed to resolve channel: %v", err)
		return channel.TrackOutput{}, channel.ErrResolveFailed
	}

	ytChannel, err := uc.youtube.GetChannel(ctx, channelID)
	if errors.Is(err, youtube.ErrChannelNotFound) {
		return channel.TrackOutput{}, channel.ErrChannelNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "channel.usecase.Track: Failed to fetch channel: %v", err)
		return channel.TrackOutput{}, channel.ErrResolveFailed
	}

	stored, err := uc.repo.UpsertChannel(ctx, repository.UpsertChannelOptions{
		ID:              ytChannel.ID,
		Title:           ytChannel.Title,
		Description:     ytChannel.Description,
		CustomURL:       ytChannel.CustomURL,
		Country:         ytChannel.Country,
		SubscriberCount: ytChannel.SubscriberCount,
		VideoCount:      ytChannel.VideoCount,
		ViewCount:       ytChannel.ViewCount,
		PublishedAt:     ytChannel.PublishedAt,
		FetchedAt:       time.Now(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "channel.usecase.Track: Failed to upsert channel: %v", err)
		return channel.TrackOutput{}, err
	}

	return channel.TrackOutput{Channel: stored}, nil
}

// Detail returns one tracked channel.
func (uc *implUseCase) Detail(ctx context.Context, input channel.DetailInput) (channel.DetailOutput, error) {
	if input.ChannelID == "" {
		return channel.DetailOutput{}, channel.ErrChannelRefRequired
	}

	ch, err := uc.repo.GetChannelByID(ctx, input.ChannelID)
	if errors.Is(err, repository.ErrChannelNotFound) {
		return channel.DetailOutput{}, channel.ErrChannelNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "channel.usecase.Detail: Failed to get channel: %v", err)
		return channel.DetailOutput{}, err
	}

	return channel.DetailOutput{Channel: ch}, nil
}

// List returns a page of tracked channels.
func (uc *implUseCase) List(ctx context.Context, input channel.ListInput) (channel.ListOutput, error) {
	pq := input.PaginateQuery
	pq.Adjust()

	total, err := uc.repo.CountChannels(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "channel.usecase.List: Failed to count channels: %v", err)
		return channel.ListOutput{}, err
	}

	channels, err := uc.repo.ListChannels(ctx, repository.ListChannelsOptions{
		Limit:  int(pq.Limit),
		Offset: int(pq.Offset()),
	})
	if err != nil {
		uc.l.Errorf(ctx, "channel.usecase.List: Failed to list channels: %v", err)
		return channel.ListOutput{}, err
	}

	return channel.ListOutput{
		Channels: channels,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(channels)),
			PerPage:     pq.Limit,
			CurrentPage: pq.Page,
		},
	}, nil
}

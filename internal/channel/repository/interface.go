package repository

import (
	"context"

	"insight-srv/internal/model"
)

//go:generate mockery --name ChannelRepository
type ChannelRepository interface {
	UpsertChannel(ctx context.Context, opts UpsertChannelOptions) (*model.Channel, error)
	GetChannelByID(ctx context.Context, id string) (*model.Channel, error)
	ListChannels(ctx context.Context, opts ListChannelsOptions) ([]*model.Channel, error)
	CountChannels(ctx context.Context) (int64, error)
}

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	ChannelRepository
}

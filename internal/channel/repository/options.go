package repository

import "time"

type UpsertChannelOptions struct {
	ID              string
	Title           string
	Description     string
	CustomURL       string
	Country         string
	SubscriberCount int64
	VideoCount      int64
	ViewCount       int64
	PublishedAt     time.Time
	FetchedAt       time.Time
}

type ListChannelsOptions struct {
	Limit  int
	Offset int
}

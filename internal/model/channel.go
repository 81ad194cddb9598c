package model

import "time"

// Channel represents a tracked YouTube channel.
type Channel struct {
	ID              string
	Title           string
	Description     string
	CustomURL       string
	Country         string
	SubscriberCount int64
	VideoCount      int64
	ViewCount       int64
	FetchedAt       time.Time
	PublishedAt     time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

package model

import (
	"encoding/json"
	"time"
)

// Video represents a fetched YouTube video with its analysis result.
type Video struct {
	ID          string
	ChannelID   string
	Title       string
	Description string
	Tags        []string
	CategoryID  string

	// Content details
	DurationSeconds int64
	Definition      string // "hd" | "sd" | "4k"
	HasCaptions     bool

	// Statistics at fetch time
	ViewCount    int64
	LikeCount    int64
	CommentCount int64

	// Analysis output, nil until analyzed
	Analysis   json.RawMessage
	AnalyzedAt *time.Time

	PublishedAt time.Time
	FetchedAt   time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsShort reports whether the video qualifies as a Shorts clip.
func (v Video) IsShort() bool {
	return v.DurationSeconds > 0 && v.DurationSeconds <= 60
}

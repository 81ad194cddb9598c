package repository

import "time"

type UpsertVideoOptions struct {
	ID          string
	ChannelID   string
	Title       string
	Description string
	Tags        []string
	CategoryID  string

	DurationSeconds int64
	Definition      string
	HasCaptions     bool

	ViewCount    int64
	LikeCount    int64
	CommentCount int64

	PublishedAt time.Time
	FetchedAt   time.Time
}

type ListVideosOptions struct {
	ChannelID string
	IsShort   *bool
	MinViews  int64
	Sort      string // validated column name, never raw user input
	Limit     int
	Offset    int
}

type UpdateAnalysisOptions struct {
	VideoID    string
	Analysis   []byte // JSON
	AnalyzedAt time.Time
}

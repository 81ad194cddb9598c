package youtube

import (
	"errors"
	"time"

	yt "google.golang.org/api/youtube/v3"

	"insight-srv/pkg/log"
)

var (
	ErrAPIKeyRequired  = errors.New("youtube api key is required")
	ErrChannelNotFound = errors.New("channel not found")
	ErrVideoNotFound   = errors.New("video not found")
)

// implYouTube implements IYouTube.
type implYouTube struct {
	l       log.Logger
	service *yt.Service
}

// Channel holds the channel fields used for analysis.
type Channel struct {
	ID               string
	Title            string
	Description      string
	CustomURL        string
	Country          string
	SubscriberCount  int64
	VideoCount       int64
	ViewCount        int64
	UploadPlaylistID string
	PublishedAt      time.Time
}

// Video holds the video fields used for analysis.
type Video struct {
	ID           string
	ChannelID    string
	Title        string
	Description  string
	Tags         []string
	CategoryID   string
	PublishedAt  time.Time
	Duration     time.Duration
	Definition   string
	HasCaptions  bool
	ViewCount    int64
	LikeCount    int64
	CommentCount int64
}

package youtube

import (
	"context"

	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"insight-srv/pkg/log"
)

// IYouTube defines the interface for the YouTube Data API client.
// Implementations are safe for concurrent use.
type IYouTube interface {
	// ResolveChannelID resolves a channel reference (raw ID, @handle, or
	// legacy username) to a canonical channel ID.
	ResolveChannelID(ctx context.Context, ref string) (string, error)
	// GetChannel fetches snippet, statistics and upload playlist for a channel.
	GetChannel(ctx context.Context, channelID string) (*Channel, error)
	// ListChannelVideos lists videos from the channel's uploads playlist,
	// newest first, up to maxResults.
	ListChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]Video, error)
	// GetVideos fetches snippet, statistics and content details for video IDs.
	GetVideos(ctx context.Context, videoIDs []string) ([]Video, error)
}

// Config holds YouTube client configuration.
type Config struct {
	APIKey string
}

// New creates a new YouTube Data API client. Returns the interface.
func New(ctx context.Context, l log.Logger, cfg Config) (IYouTube, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	service, err := yt.NewService(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	return &implYouTube{l: l, service: service}, nil
}

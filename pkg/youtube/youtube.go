package youtube

import (
	"context"
	"fmt"
	"strings"
	"time"

	yt "google.golang.org/api/youtube/v3"
)

const channelParts = "snippet,statistics,contentDetails"

// ResolveChannelID resolves a channel reference to a canonical channel ID.
func (y *implYouTube) ResolveChannelID(ctx context.Context, ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrChannelNotFound
	}

	// Canonical channel IDs are 24 characters starting with "UC".
	if strings.HasPrefix(ref, "UC") && len(ref) == 24 {
		return ref, nil
	}

	call := y.service.Channels.List([]string{"id"}).Context(ctx)
	if strings.HasPrefix(ref, "@") {
		call = call.ForHandle(ref)
	} else {
		call = call.ForUsername(ref)
	}

	resp, err := call.Do()
	if err != nil {
		y.l.Errorf(ctx, "youtube.ResolveChannelID: list channels: %v", err)
		return "", fmt.Errorf("failed to resolve channel %q: %w", ref, err)
	}
	if len(resp.Items) == 0 {
		return "", ErrChannelNotFound
	}
	return resp.Items[0].Id, nil
}

// GetChannel fetches channel snippet, statistics and upload playlist.
func (y *implYouTube) GetChannel(ctx context.Context, channelID string) (*Channel, error) {
	resp, err := y.service.Channels.
		List(strings.Split(channelParts, ",")).
		Id(channelID).
		Context(ctx).
		Do()
	if err != nil {
		y.l.Errorf(ctx, "youtube.GetChannel: list channels: %v", err)
		return nil, fmt.Errorf("failed to fetch channel %q: %w", channelID, err)
	}
	if len(resp.Items) == 0 {
		return nil, ErrChannelNotFound
	}

	item := resp.Items[0]
	publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)

	ch := &Channel{
		ID:          item.Id,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		CustomURL:   item.Snippet.CustomUrl,
		Country:     item.Snippet.Country,
		PublishedAt: publishedAt,
	}
	if item.Statistics != nil {
		ch.SubscriberCount = int64(item.Statistics.SubscriberCount)
		ch.VideoCount = int64(item.Statistics.VideoCount)
		ch.ViewCount = int64(item.Statistics.ViewCount)
	}
	if item.ContentDetails != nil && item.ContentDetails.RelatedPlaylists != nil {
		ch.UploadPlaylistID = item.ContentDetails.RelatedPlaylists.Uploads
	}
	return ch, nil
}

// ListChannelVideos lists videos from the channel's uploads playlist.
func (y *implYouTube) ListChannelVideos(ctx context.Context, channelID string, maxResults int64) ([]Video, error) {
	ch, err := y.GetChannel(ctx, channelID)
	if err != nil {
		return nil, err
	}
	if ch.UploadPlaylistID == "" {
		return nil, nil
	}

	var videoIDs []string
	pageToken := ""
	for int64(len(videoIDs)) < maxResults {
		pageSize := maxResults - int64(len(videoIDs))
		if pageSize > 50 {
			pageSize = 50
		}
		call := y.service.PlaylistItems.
			List([]string{"contentDetails"}).
			PlaylistId(ch.UploadPlaylistID).
			MaxResults(pageSize).
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}
		resp, err := call.Do()
		if err != nil {
			y.l.Errorf(ctx, "youtube.ListChannelVideos: list playlist items: %v", err)
			return nil, fmt.Errorf("failed to list uploads for channel %q: %w", channelID, err)
		}
		for _, item := range resp.Items {
			videoIDs = append(videoIDs, item.ContentDetails.VideoId)
		}
		if resp.NextPageToken == "" {
			break
		}
		pageToken = resp.NextPageToken
	}

	return y.GetVideos(ctx, videoIDs)
}

// GetVideos fetches video details in batches of 50, the API page limit.
func (y *implYouTube) GetVideos(ctx context.Context, videoIDs []string) ([]Video, error) {
	videos := make([]Video, 0, len(videoIDs))
	for start := 0; start < len(videoIDs); start += 50 {
		end := start + 50
		if end > len(videoIDs) {
			end = len(videoIDs)
		}
		resp, err := y.service.Videos.
			List([]string{"snippet", "statistics", "contentDetails"}).
			Id(videoIDs[start:end]...).
			Context(ctx).
			Do()
		if err != nil {
			y.l.Errorf(ctx, "youtube.GetVideos: list videos: %v", err)
			return nil, fmt.Errorf("failed to fetch video details: %w", err)
		}
		for _, item := range resp.Items {
			videos = append(videos, toVideo(item))
		}
	}
	return videos, nil
}

func toVideo(item *yt.Video) Video {
	publishedAt, _ := time.Parse(time.RFC3339, item.Snippet.PublishedAt)
	v := Video{
		ID:          item.Id,
		ChannelID:   item.Snippet.ChannelId,
		Title:       item.Snippet.Title,
		Description: item.Snippet.Description,
		Tags:        item.Snippet.Tags,
		CategoryID:  item.Snippet.CategoryId,
		PublishedAt: publishedAt,
	}
	if item.Statistics != nil {
		v.ViewCount = int64(item.Statistics.ViewCount)
		v.LikeCount = int64(item.Statistics.LikeCount)
		v.CommentCount = int64(item.Statistics.CommentCount)
	}
	if item.ContentDetails != nil {
		v.Duration = ParseISODuration(item.ContentDetails.Duration)
		v.Definition = item.ContentDetails.Definition
		v.HasCaptions = item.ContentDetails.Caption == "true"
	}
	return v
}

// ParseISODuration parses ISO-8601 durations like "PT1H2M3S" as returned
// by the Data API. Returns zero on malformed input.
func ParseISODuration(s string) time.Duration {
	s = strings.TrimPrefix(s, "P")
	var total time.Duration
	var num int64
	inTime := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			num = num*10 + int64(r-'0')
		case r == 'T':
			inTime = true
			num = 0
		case r == 'D':
			total += time.Duration(num) * 24 * time.Hour
			num = 0
		case r == 'H' && inTime:
			total += time.Duration(num) * time.Hour
			num = 0
		case r == 'M' && inTime:
			total += time.Duration(num) * time.Minute
			num = 0
		case r == 'S' && inTime:
			total += time.Duration(num) * time.Second
			num = 0
		default:
			num = 0
		}
	}
	return total
}

package youtube

import (
	"context"
	"fmt"
	"sync"

	"insight-srv/config"
	"insight-srv/pkg/log"
	"insight-srv/pkg/youtube"
)

var (
	instance youtube.IYouTube
	once     sync.Once
	mu       sync.RWMutex
	initErr  error
)

// Connect initializes the YouTube Data API client using singleton pattern.
func Connect(ctx context.Context, l log.Logger, cfg config.YouTubeConfig) (youtube.IYouTube, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	if initErr != nil {
		once = sync.Once{}
		initErr = nil
	}

	var err error
	once.Do(func() {
		client, e := youtube.New(ctx, l, youtube.Config{APIKey: cfg.APIKey})
		if e != nil {
			err = fmt.Errorf("failed to initialize YouTube client: %w", e)
			initErr = err
			return
		}
		instance = client
	})

	return instance, err
}

// GetClient returns the singleton YouTube client instance.
func GetClient() youtube.IYouTube {
	mu.RLock()
	defer mu.RUnlock()

	if instance == nil {
		panic("YouTube client not initialized. Call Connect() first")
	}
	return instance
}

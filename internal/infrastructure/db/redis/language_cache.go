package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	languagesKey = "snippets:languages"
	languagesTTL = 5 * time.Minute
)

// LanguageCache is a read-through cache of the distinct-language index.
// Snippet mutations invalidate the key; the TTL bounds staleness when an
// invalidation is lost.
type LanguageCache struct {
	client *redis.Client
}

func NewLanguageCache(client *redis.Client) *LanguageCache {
	return &LanguageCache{client: client}
}

// Get returns the cached index and whether the key was present. An empty
// cached list is a valid hit (a store with no snippets).
func (c *LanguageCache) Get(ctx context.Context) ([]string, bool, error) {
	raw, err := c.client.Get(ctx, languagesKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("language cache get: %w", err)
	}

	var langs []string
	if err := json.Unmarshal([]byte(raw), &langs); err != nil {
		// Corrupt entry: treat as a miss so the next Set repairs it.
		return nil, false, nil
	}
	return langs, true, nil
}

func (c *LanguageCache) Set(ctx context.Context, languages []string) error {
	raw, err := json.Marshal(languages)
	if err != nil {
		return fmt.Errorf("language cache encode: %w", err)
	}
	return c.client.Set(ctx, languagesKey, raw, languagesTTL).Err()
}

func (c *LanguageCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, languagesKey).Err()
}

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/conduit-labs/conduit/domain"
	"github.com/conduit-labs/conduit/internal/repository/cache"
)

const (
	KeyTagNames = "tags:names"
)

type tagCache struct {
	client *redis.Client
}

var _ domain.TagCache = (*tagCache)(nil)

// NewTagCache caches the full tag-name list with a logical expiry, so a
// stale list keeps serving while a rebuild runs.
func NewTagCache(client *redis.Client) *tagCache {
	return &tagCache{
		client,
	}
}

func (c *tagCache) GetNames(ctx context.Context) ([]string, bool, error) {
	data, err := c.client.Get(ctx, KeyTagNames).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, domain.ErrCacheMiss
	} else if err != nil {
		return nil, false, err
	}

	var envelope struct {
		Data     []string  `json:"data"`
		ExpireAt time.Time `json:"expire_at"`
	}
	if err = json.Unmarshal(data, &envelope); err != nil {
		return nil, false, err
	}

	return envelope.Data, time.Now().After(envelope.ExpireAt), nil
}

func (c *tagCache) SetNames(ctx context.Context, names []string, ttl time.Duration) error {
	data, err := json.Marshal(cache.NewDataWithLogicalExpire(names, ttl))
	if err != nil {
		return err
	}
	// no physical TTL, the envelope's logical expiry drives rebuilds
	return c.client.Set(ctx, KeyTagNames, data, 0).Err()
}

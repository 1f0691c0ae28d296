package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/gameverse/content-api/internal/api/metrics"
	"github.com/gameverse/content-api/internal/core/domain"
)

const cacheTTL = time.Minute

const listKey = "news:list"

// NewsCache is a read-through article cache backed by Redis. Every backend
// failure is treated as a miss and logged at debug level, so a Redis outage
// degrades to plain Mongo reads instead of failing requests.
type NewsCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewNewsCache(client *redis.Client, log zerolog.Logger) *NewsCache {
	return &NewsCache{client: client, log: log}
}

func (c *NewsCache) GetList(ctx context.Context) ([]*domain.News, bool) {
	data, err := c.client.Get(ctx, listKey).Bytes()
	if err != nil {
		c.miss(err)
		return nil, false
	}

	var items []*domain.News
	if err := json.Unmarshal(data, &items); err != nil {
		c.miss(err)
		return nil, false
	}

	metrics.NewsCacheTotal.WithLabelValues("hit").Inc()
	return items, true
}

func (c *NewsCache) SetList(ctx context.Context, items []*domain.News) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, listKey, data, cacheTTL).Err(); err != nil {
		c.log.Debug().Err(err).Msg("news cache set failed")
	}
}

func (c *NewsCache) GetNews(ctx context.Context, id string) (*domain.News, bool) {
	data, err := c.client.Get(ctx, newsKey(id)).Bytes()
	if err != nil {
		c.miss(err)
		return nil, false
	}

	var n domain.News
	if err := json.Unmarshal(data, &n); err != nil {
		c.miss(err)
		return nil, false
	}

	metrics.NewsCacheTotal.WithLabelValues("hit").Inc()
	return &n, true
}

func (c *NewsCache) SetNews(ctx context.Context, n *domain.News) {
	data, err := json.Marshal(n)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, newsKey(n.ID), data, cacheTTL).Err(); err != nil {
		c.log.Debug().Err(err).Msg("news cache set failed")
	}
}

// Invalidate drops the list entry and, when id is non-empty, the entry for
// that article.
func (c *NewsCache) Invalidate(ctx context.Context, id string) {
	keys := []string{listKey}
	if id != "" {
		keys = append(keys, newsKey(id))
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		c.log.Debug().Err(err).Msg("news cache invalidation failed")
	}
}

func (c *NewsCache) miss(err error) {
	metrics.NewsCacheTotal.WithLabelValues("miss").Inc()
	if err != redis.Nil {
		c.log.Debug().Err(err).Msg("news cache read failed")
	}
}

func newsKey(id string) string {
	return "news:" + id
}

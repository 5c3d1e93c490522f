package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/nyuchitech/EducatorEval/internal/model"
)

const activeFrameworksKey = "frameworks:active"

// FrameworkCache holds the active framework catalog in Redis. Observation
// forms read it on every visit start, so it is the hottest read path.
type FrameworkCache interface {
	GetActive(ctx context.Context) ([]*model.Framework, error)
	SetActive(ctx context.Context, frameworks []*model.Framework) error
	Invalidate(ctx context.Context) error
}

type frameworkCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewFrameworkCache creates a new framework cache
func NewFrameworkCache(client *redis.Client) FrameworkCache {
	return &frameworkCache{
		client: client,
		ttl:    5 * time.Minute,
	}
}

func (c *frameworkCache) GetActive(ctx context.Context) ([]*model.Framework, error) {
	data, err := c.client.Get(ctx, activeFrameworksKey).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var frameworks []*model.Framework
	if err := json.Unmarshal([]byte(data), &frameworks); err != nil {
		return nil, err
	}
	return frameworks, nil
}

func (c *frameworkCache) SetActive(ctx context.Context, frameworks []*model.Framework) error {
	data, err := json.Marshal(frameworks)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, activeFrameworksKey, data, c.ttl).Err()
}

func (c *frameworkCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, activeFrameworksKey).Err()
}

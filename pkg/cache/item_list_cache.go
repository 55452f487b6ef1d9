package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// ItemListTTL bounds how long a cached list survives without a write.
	ItemListTTL = 10 * time.Minute

	itemListKey = "items:list"
)

// ErrMiss is returned by ItemListCache.Get when no list is cached.
var ErrMiss = errors.New("cache miss")

// CachedItem is the denormalized item stored in the cached list.
type CachedItem struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Quantity  float64   `json:"quantity"`
	UnitValue float64   `json:"unit_value"`
	CreatedAt time.Time `json:"created_at"`
}

// ItemListCache stores the full item list as one JSON value.
// Any write to the item table must call Invalidate.
type ItemListCache struct {
	client *RedisClient
}

// NewItemListCache creates a new ItemListCache backed by the given RedisClient.
func NewItemListCache(r *RedisClient) *ItemListCache {
	return &ItemListCache{client: r}
}

// Get returns the cached list, or ErrMiss when the key does not exist or has expired.
func (c *ItemListCache) Get(ctx context.Context) ([]CachedItem, error) {
	raw, err := c.client.Client().Get(ctx, itemListKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrMiss
	}
	if err != nil {
		return nil, fmt.Errorf("cache get: %w", err)
	}

	var items []CachedItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("cache decode: %w", err)
	}
	return items, nil
}

// Set replaces the cached list.
func (c *ItemListCache) Set(ctx context.Context, items []CachedItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("cache encode: %w", err)
	}
	if err := c.client.Client().Set(ctx, itemListKey, raw, ItemListTTL).Err(); err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Invalidate drops the cached list. Deleting a missing key is not an error.
func (c *ItemListCache) Invalidate(ctx context.Context) error {
	if err := c.client.Client().Del(ctx, itemListKey).Err(); err != nil {
		return fmt.Errorf("cache invalidate: %w", err)
	}
	return nil
}

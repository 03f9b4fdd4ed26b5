package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	domain "github.com/Imrannnnn/TallieRestaurantApp/internal/domain/reservation"
)

const DefaultAvailabilityTTL = 30 * time.Second

// AvailabilityCache stores availability responses per
// (restaurant, date, party size). A nil cache or nil client is a no-op, so
// the API keeps working when Redis is down.
type AvailabilityCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewAvailabilityCache(client *redis.Client, ttl time.Duration) *AvailabilityCache {
	if ttl <= 0 {
		ttl = DefaultAvailabilityTTL
	}
	return &AvailabilityCache{client: client, ttl: ttl}
}

func key(restaurantID uint, date string, partySize int) string {
	return fmt.Sprintf("availability:%d:%s:%d", restaurantID, date, partySize)
}

func (c *AvailabilityCache) Get(
	ctx context.Context,
	restaurantID uint,
	date string,
	partySize int,
) ([]domain.AvailableSlot, bool) {

	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(restaurantID, date, partySize)).Result()
	if err != nil {
		return nil, false
	}

	var slots []domain.AvailableSlot
	if err := json.Unmarshal([]byte(raw), &slots); err != nil {
		return nil, false
	}

	return slots, true
}

func (c *AvailabilityCache) Set(
	ctx context.Context,
	restaurantID uint,
	date string,
	partySize int,
	slots []domain.AvailableSlot,
) {

	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(slots)
	if err != nil {
		return
	}

	c.client.Set(ctx, key(restaurantID, date, partySize), raw, c.ttl)
}

// Invalidate drops every cached availability entry of a restaurant. Called
// after a reservation is created or cancelled.
func (c *AvailabilityCache) Invalidate(ctx context.Context, restaurantID uint) {
	if c == nil || c.client == nil {
		return
	}

	pattern := fmt.Sprintf("availability:%d:*", restaurantID)
	iter := c.client.Scan(ctx, 0, pattern, 100).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
}

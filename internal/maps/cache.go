// README: Redis-backed cache decorator for the geocoding port.
package maps

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const geocodeKeyPrefix = "geocode:q:"

// CachedGeocoder wraps a Geocoder with a Redis read-through cache keyed by
// the normalized query. Cache failures degrade to the inner geocoder; they
// never fail a search.
type CachedGeocoder struct {
	inner Geocoder
	redis *redis.Client
	ttl   time.Duration
}

func NewCachedGeocoder(inner Geocoder, rdb *redis.Client, ttl time.Duration) *CachedGeocoder {
	return &CachedGeocoder{inner: inner, redis: rdb, ttl: ttl}
}

func (c *CachedGeocoder) Search(ctx context.Context, query string) ([]Place, error) {
	key := geocodeKeyPrefix + strings.ToLower(strings.TrimSpace(query))

	if raw, err := c.redis.Get(ctx, key).Result(); err == nil {
		var places []Place
		if err := json.Unmarshal([]byte(raw), &places); err == nil {
			return places, nil
		}
	} else if err != redis.Nil && ctx.Err() == nil {
		log.Printf("geocode cache get: %v", err)
	}

	places, err := c.inner.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(places); err == nil {
		if err := c.redis.Set(ctx, key, raw, c.ttl).Err(); err != nil && ctx.Err() == nil {
			log.Printf("geocode cache set: %v", err)
		}
	}
	return places, nil
}

package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/printworks/storefront-server-go/internal/model"
	redisclient "github.com/printworks/storefront-server-go/internal/redis"
	"github.com/printworks/storefront-server-go/internal/session"
)

const DefaultCartViewTTL = 5 * time.Minute

// CartViewCache maps a session token to its cached cart view. Every entry
// is keyed by the token's hash, so invalidation is always scoped to one
// session and never a global flush.
type CartViewCache struct {
	redis *redisclient.Client
	ttl   time.Duration
}

func NewCartViewCache(redisClient *redisclient.Client, ttl time.Duration) *CartViewCache {
	if ttl <= 0 {
		ttl = DefaultCartViewTTL
	}
	return &CartViewCache{redis: redisClient, ttl: ttl}
}

// Get returns the cached view for a session, or (nil, false) on miss.
// Cache failures degrade to a miss so the caller falls back to the store.
func (c *CartViewCache) Get(ctx context.Context, token string) (*model.CartView, bool) {
	key := redisclient.CartViewKey(session.Hash(token))

	data, err := c.redis.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false
	}
	if err != nil {
		log.Warn().Err(err).Msg("cart view cache read failed")
		return nil, false
	}

	var view model.CartView
	if err := json.Unmarshal(data, &view); err != nil {
		log.Warn().Err(err).Msg("cart view cache entry corrupt, dropping")
		c.redis.Del(ctx, key)
		return nil, false
	}

	return &view, true
}

// Set stores the view for a session. Failures are logged, not surfaced:
// the cache is an optimization, never a source of errors.
func (c *CartViewCache) Set(ctx context.Context, token string, view *model.CartView) {
	data, err := json.Marshal(view)
	if err != nil {
		log.Warn().Err(err).Msg("cart view cache encode failed")
		return
	}

	key := redisclient.CartViewKey(session.Hash(token))
	if err := c.redis.Set(ctx, key, data, c.ttl).Err(); err != nil {
		log.Warn().Err(err).Msg("cart view cache write failed")
	}
}

// Invalidate drops exactly one session's cached view.
func (c *CartViewCache) Invalidate(ctx context.Context, token string) {
	key := redisclient.CartViewKey(session.Hash(token))
	if err := c.redis.Del(ctx, key).Err(); err != nil {
		log.Warn().Err(err).Msg("cart view cache invalidation failed")
	}
}

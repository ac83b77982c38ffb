// README: Redis cache for the latest quote per route.
package history

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"cabnav/internal/modules/provider"
)

const (
	lastQuoteKeyPrefix = "history:last:%s:%s"
	// Quotes go stale fast; keep the cache short-lived.
	lastQuoteTTL = 15 * time.Minute
)

type Cache struct {
	redis *redis.Client
}

func NewCache(redis *redis.Client) *Cache {
	return &Cache{redis: redis}
}

// SetLastQuote stores the most recent quote for a provider/route pair.
func (c *Cache) SetLastQuote(ctx context.Context, pickup, destination string, q provider.PriceQuote) error {
	data, err := json.Marshal(q)
	if err != nil {
		return err
	}
	return c.redis.Set(ctx, lastQuoteKey(q.Provider, pickup, destination), data, lastQuoteTTL).Err()
}

// LastQuote returns the cached quote for a provider/route pair, with a
// miss reported as (nil, nil).
func (c *Cache) LastQuote(ctx context.Context, providerName, pickup, destination string) (*provider.PriceQuote, error) {
	val, err := c.redis.Get(ctx, lastQuoteKey(providerName, pickup, destination)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var q provider.PriceQuote
	if err := json.Unmarshal([]byte(val), &q); err != nil {
		return nil, err
	}
	return &q, nil
}

func lastQuoteKey(providerName, pickup, destination string) string {
	return fmt.Sprintf(lastQuoteKeyPrefix, providerName, routeHash(pickup, destination))
}

func routeHash(pickup, destination string) string {
	h := sha1.Sum([]byte(strings.ToLower(pickup) + "->" + strings.ToLower(destination)))
	return hex.EncodeToString(h[:8])
}

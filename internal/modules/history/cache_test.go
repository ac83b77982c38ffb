package history

import (
	"context"
	"os"
	"testing"

	"github.com/redis/go-redis/v9"

	"cabnav/internal/modules/provider"
)

func setupTestCache(t *testing.T) *Cache {
	t.Helper()

	addr := os.Getenv("CABNAV_TEST_REDIS")
	if addr == "" {
		t.Skip("CABNAV_TEST_REDIS not set; skipping cache integration test")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { rdb.Close() })

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		t.Fatalf("ping redis: %v", err)
	}
	return NewCache(rdb)
}

func TestCacheLastQuoteRoundTrip(t *testing.T) {
	c := setupTestCache(t)
	ctx := context.Background()

	q := provider.PriceQuote{
		Provider:       "uber",
		RideType:       "UberGo",
		EstimatedPrice: 142,
		EstimatedTime:  "4 mins",
		Currency:       "INR",
		Available:      true,
	}
	if err := c.SetLastQuote(ctx, "Current Location", "Airport", q); err != nil {
		t.Fatalf("SetLastQuote: %v", err)
	}

	got, err := c.LastQuote(ctx, "uber", "Current Location", "Airport")
	if err != nil {
		t.Fatalf("LastQuote: %v", err)
	}
	if got == nil {
		t.Fatal("LastQuote = nil, want cached quote")
	}
	if got.EstimatedPrice != 142 || got.RideType != "UberGo" {
		t.Errorf("got %+v", got)
	}

	// Route keys are case-insensitive.
	got, err = c.LastQuote(ctx, "uber", "current location", "AIRPORT")
	if err != nil || got == nil {
		t.Fatalf("case-insensitive lookup = (%+v, %v)", got, err)
	}
}

func TestCacheLastQuoteMiss(t *testing.T) {
	c := setupTestCache(t)

	got, err := c.LastQuote(context.Background(), "uber", "Nowhere", "Elsewhere")
	if err != nil {
		t.Fatalf("LastQuote: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil on miss", got)
	}
}

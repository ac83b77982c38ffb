// README: Fare history service; records comparisons and serves averages.
package history

import (
	"context"
	"log"
	"time"

	"cabnav/internal/modules/provider"
	"cabnav/internal/types"
)

// averageWindow caps how many recent rows feed an average.
const averageWindow = 100

// Service records finished comparisons and answers price-history
// queries. The cache is optional; without it only the store is used.
type Service struct {
	store  *Store
	cache  *Cache
	logger *log.Logger
}

func NewService(store *Store, cache *Cache, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{store: store, cache: cache, logger: logger}
}

// RecordComparison persists one row per quote. Cache writes are
// best-effort; a failed cache update never fails the recording.
func (s *Service) RecordComparison(ctx context.Context, pickup, destination string, quotes []provider.PriceQuote) error {
	now := time.Now()
	for _, q := range quotes {
		e := &Entry{
			ID:          types.NewID(),
			Provider:    q.Provider,
			RideType:    q.RideType,
			Price:       q.EstimatedPrice,
			Currency:    q.Currency,
			Pickup:      pickup,
			Destination: destination,
			CreatedAt:   now,
		}
		if err := s.store.Insert(ctx, e); err != nil {
			return err
		}
		if s.cache != nil {
			if err := s.cache.SetLastQuote(ctx, pickup, destination, q); err != nil {
				s.logger.Printf("history: cache update failed for %s: %v", q.Provider, err)
			}
		}
	}
	return nil
}

// AveragePrice returns the recent mean price for a provider/ride type.
func (s *Service) AveragePrice(ctx context.Context, providerName, rideType string) (float64, error) {
	return s.store.AveragePrice(ctx, providerName, rideType, averageWindow)
}

// LastQuote returns the cached most-recent quote for a route, or nil.
func (s *Service) LastQuote(ctx context.Context, providerName, pickup, destination string) (*provider.PriceQuote, error) {
	if s.cache == nil {
		return nil, nil
	}
	return s.cache.LastQuote(ctx, providerName, pickup, destination)
}

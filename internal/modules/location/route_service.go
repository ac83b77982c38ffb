// README: Google Maps route estimates used to backfill quote distances.
package location

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// RouteService handles interactions with the Google Maps API.
type RouteService struct {
	client *maps.Client
}

// NewRouteService creates a RouteService with the given API key.
func NewRouteService(apiKey string) (*RouteService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &RouteService{client: client}, nil
}

// EstimateRoute returns the driving duration and human-readable
// distance for a trip from pickup to destination.
func (s *RouteService) EstimateRoute(ctx context.Context, pickup, destination string) (time.Duration, string, error) {
	r := &maps.DirectionsRequest{
		Origin:      pickup,
		Destination: destination,
		Mode:        maps.TravelModeDriving,
		Region:      "IN", // Bias results to India
	}

	routes, _, err := s.client.Directions(ctx, r)
	if err != nil {
		return 0, "", fmt.Errorf("maps api error: %w", err)
	}

	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return 0, "", fmt.Errorf("no route found")
	}

	leg := routes[0].Legs[0]
	return leg.Duration, leg.Distance.HumanReadable, nil
}

// EstimateDistance adapts EstimateRoute to the orchestrator's
// RouteEstimator contract (distance only).
func (s *RouteService) EstimateDistance(ctx context.Context, pickup, destination string) (string, error) {
	_, distance, err := s.EstimateRoute(ctx, pickup, destination)
	return distance, err
}

// README: Comparison result model (ordered quote map + cheapest selection).
package compare

import "cabnav/internal/modules/provider"

// ComparisonResult is one completed round of quote collection.
// Prices holds one quote per responding provider, in configured
// provider order, never incidental map order. Cheapest always names
// an entry present in Prices, and Prices is never empty on a
// successfully constructed result.
type ComparisonResult struct {
	Prices        []provider.PriceQuote `json:"prices"`
	Cheapest      string                `json:"cheapest"`
	CheapestPrice float64               `json:"cheapest_price"`
	Summary       string                `json:"summary"`
}

// Quote returns the stored quote for a provider name.
func (r *ComparisonResult) Quote(name string) (provider.PriceQuote, bool) {
	for _, q := range r.Prices {
		if q.Provider == name {
			return q, true
		}
	}
	return provider.PriceQuote{}, false
}

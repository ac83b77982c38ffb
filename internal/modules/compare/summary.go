// README: Human-readable comparison summary with savings delta.
package compare

import (
	"fmt"
	"sort"
	"strings"

	"cabnav/internal/modules/provider"
)

// buildSummary renders the ranked quote list plus the savings between
// first and second place. Ranking sorts by price but keeps the
// configured order for equal prices, matching the selection tie-break.
func buildSummary(r *ComparisonResult) string {
	ranked := make([]provider.PriceQuote, len(r.Prices))
	copy(ranked, r.Prices)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].EstimatedPrice < ranked[j].EstimatedPrice
	})

	var b strings.Builder
	b.WriteString("Price Comparison Results\n")
	for rank, q := range ranked {
		fmt.Fprintf(&b, "#%d %s - %s: %s (%s)", rank+1, strings.ToUpper(q.Provider), q.RideType,
			FormatCurrency(q.EstimatedPrice, q.Currency), q.EstimatedTime)
		if q.Distance != nil {
			fmt.Fprintf(&b, ", %s", *q.Distance)
		}
		if q.ExtraCharges != nil {
			fmt.Fprintf(&b, " [%s]", *q.ExtraCharges)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Cheapest: %s at %s\n", strings.ToUpper(r.Cheapest),
		FormatCurrency(r.CheapestPrice, currencyOf(ranked[0])))

	if len(ranked) > 1 {
		savings := ranked[1].EstimatedPrice - ranked[0].EstimatedPrice
		if savings > 0 {
			pct := savings / ranked[1].EstimatedPrice * 100
			fmt.Fprintf(&b, "You save %s (%.1f%%) over the next option.\n",
				FormatCurrency(savings, currencyOf(ranked[0])), pct)
		}
	}
	return b.String()
}

func currencyOf(q provider.PriceQuote) string {
	if q.Currency != "" {
		return q.Currency
	}
	return provider.DefaultCurrency
}

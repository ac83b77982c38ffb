// README: Flat JSON snapshot of one comparison.
package compare

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type snapshotEntry struct {
	RideType       string  `json:"ride_type"`
	EstimatedPrice float64 `json:"estimated_price"`
	EstimatedTime  string  `json:"estimated_time"`
	Distance       *string `json:"distance"`
	Available      bool    `json:"available"`
}

type snapshot struct {
	Timestamp  string                   `json:"timestamp"`
	Comparison map[string]snapshotEntry `json:"comparison"`
}

// SaveSnapshot writes one comparison to path as a flat JSON document.
// One file per comparison; the caller picks the path.
func SaveSnapshot(path string, r *ComparisonResult) error {
	s := snapshot{
		Timestamp:  time.Now().Format(time.RFC3339),
		Comparison: make(map[string]snapshotEntry, len(r.Prices)),
	}
	for _, q := range r.Prices {
		s.Comparison[q.Provider] = snapshotEntry{
			RideType:       q.RideType,
			EstimatedPrice: q.EstimatedPrice,
			EstimatedTime:  q.EstimatedTime,
			Distance:       q.Distance,
			Available:      q.Available,
		}
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}
	return nil
}

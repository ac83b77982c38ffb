package compare

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cabnav/internal/modules/provider"
)

func TestSaveSnapshot(t *testing.T) {
	dist := "12.4 km"
	result := &ComparisonResult{
		Prices: []provider.PriceQuote{
			{Provider: "uber", RideType: "UberGo", EstimatedPrice: 120, EstimatedTime: "5 mins", Distance: &dist, Available: true},
			{Provider: "rapido", RideType: "Auto", EstimatedPrice: 99, EstimatedTime: "3 mins", Available: true},
		},
		Cheapest:      "rapido",
		CheapestPrice: 99,
	}

	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := SaveSnapshot(path, result); err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read snapshot: %v", err)
	}

	var got struct {
		Timestamp  string `json:"timestamp"`
		Comparison map[string]struct {
			RideType       string  `json:"ride_type"`
			EstimatedPrice float64 `json:"estimated_price"`
			EstimatedTime  string  `json:"estimated_time"`
			Distance       *string `json:"distance"`
			Available      bool    `json:"available"`
		} `json:"comparison"`
	}
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}

	if _, err := time.Parse(time.RFC3339, got.Timestamp); err != nil {
		t.Errorf("timestamp %q not RFC3339: %v", got.Timestamp, err)
	}
	if len(got.Comparison) != 2 {
		t.Fatalf("len(comparison) = %d, want 2", len(got.Comparison))
	}
	uber, ok := got.Comparison["uber"]
	if !ok {
		t.Fatal("uber entry missing")
	}
	if uber.EstimatedPrice != 120 || uber.RideType != "UberGo" || !uber.Available {
		t.Errorf("uber entry = %+v", uber)
	}
	if uber.Distance == nil || *uber.Distance != dist {
		t.Errorf("uber distance = %v, want %q", uber.Distance, dist)
	}
	if rapido := got.Comparison["rapido"]; rapido.Distance != nil {
		t.Errorf("rapido distance = %v, want nil", rapido.Distance)
	}
}

package history

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"cabnav/internal/types"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("CABNAV_TEST_DSN")
	if dsn == "" {
		t.Skip("CABNAV_TEST_DSN not set; skipping DB-backed history tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	schema, err := os.ReadFile("../../../migrations/0001_fare_history.sql")
	if err != nil {
		t.Fatalf("read migration: %v", err)
	}
	if _, err := db.Exec(ctx, string(schema)); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE fare_history"); err != nil {
		t.Fatalf("truncate: %v", err)
	}

	return NewStore(db)
}

func insertEntry(t *testing.T, s *Store, provider, rideType string, price float64, at time.Time) {
	t.Helper()
	e := &Entry{
		ID:          types.NewID(),
		Provider:    provider,
		RideType:    rideType,
		Price:       price,
		Currency:    "INR",
		Pickup:      "Current Location",
		Destination: "Airport",
		CreatedAt:   at,
	}
	if err := s.Insert(context.Background(), e); err != nil {
		t.Fatalf("insert: %v", err)
	}
}

func TestStoreAveragePrice(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now()

	insertEntry(t, s, "uber", "UberGo", 100, now.Add(-3*time.Minute))
	insertEntry(t, s, "uber", "UberGo", 140, now.Add(-2*time.Minute))
	insertEntry(t, s, "uber", "Uber Moto", 60, now.Add(-1*time.Minute))
	insertEntry(t, s, "ola", "Ola Prime", 200, now)

	avg, err := s.AveragePrice(ctx, "uber", "UberGo", 100)
	if err != nil {
		t.Fatalf("AveragePrice: %v", err)
	}
	if avg != 120 {
		t.Errorf("avg = %v, want 120", avg)
	}
}

func TestStoreAveragePriceWindow(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now()

	// Oldest row falls outside a window of 2.
	insertEntry(t, s, "uber", "UberGo", 1000, now.Add(-3*time.Minute))
	insertEntry(t, s, "uber", "UberGo", 100, now.Add(-2*time.Minute))
	insertEntry(t, s, "uber", "UberGo", 200, now.Add(-1*time.Minute))

	avg, err := s.AveragePrice(ctx, "uber", "UberGo", 2)
	if err != nil {
		t.Fatalf("AveragePrice: %v", err)
	}
	if avg != 150 {
		t.Errorf("avg = %v, want 150 (oldest row excluded)", avg)
	}
}

func TestStoreAveragePriceNoHistory(t *testing.T) {
	s := setupTestStore(t)

	_, err := s.AveragePrice(context.Background(), "uber", "UberGo", 100)
	if !errors.Is(err, ErrNoHistory) {
		t.Fatalf("err = %v, want ErrNoHistory", err)
	}
}

func TestStoreRecent(t *testing.T) {
	s := setupTestStore(t)
	ctx := context.Background()
	now := time.Now()

	insertEntry(t, s, "uber", "UberGo", 100, now.Add(-2*time.Minute))
	insertEntry(t, s, "ola", "Ola Prime", 150, now.Add(-1*time.Minute))
	insertEntry(t, s, "rapido", "Auto", 80, now)

	entries, err := s.Recent(ctx, "Current Location", "Airport", 2)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("len(entries) = %d, want 2", len(entries))
	}
	if entries[0].Provider != "rapido" || entries[1].Provider != "ola" {
		t.Errorf("order = %s, %s; want rapido, ola", entries[0].Provider, entries[1].Provider)
	}
}

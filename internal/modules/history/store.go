// README: Fare history store backed by PostgreSQL.
package history

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNoHistory = errors.New("no fare history for provider/ride type")

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Insert(ctx context.Context, e *Entry) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO fare_history (
			id, provider, ride_type, price, currency, pickup, destination, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		string(e.ID),
		e.Provider,
		e.RideType,
		e.Price,
		e.Currency,
		e.Pickup,
		e.Destination,
		e.CreatedAt,
	)
	return err
}

// AveragePrice returns the mean recorded price for one provider/ride
// type pair over the most recent limit rows.
func (s *Store) AveragePrice(ctx context.Context, provider, rideType string, limit int) (float64, error) {
	row := s.db.QueryRow(ctx, `
		SELECT AVG(price) FROM (
			SELECT price FROM fare_history
			WHERE provider = $1 AND ride_type = $2
			ORDER BY created_at DESC
			LIMIT $3
		) recent`,
		provider, rideType, limit,
	)

	var avg *float64
	err := row.Scan(&avg)
	if errors.Is(err, pgx.ErrNoRows) || (err == nil && avg == nil) {
		return 0, ErrNoHistory
	}
	if err != nil {
		return 0, err
	}
	return *avg, nil
}

// Recent returns the latest rows for one route, newest first.
func (s *Store) Recent(ctx context.Context, pickup, destination string, limit int) ([]Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, provider, ride_type, price, currency, pickup, destination, created_at
		FROM fare_history
		WHERE pickup = $1 AND destination = $2
		ORDER BY created_at DESC
		LIMIT $3`,
		pickup, destination, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Provider, &e.RideType, &e.Price, &e.Currency, &e.Pickup, &e.Destination, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

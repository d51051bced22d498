// README: Postgres-backed history store; trims to the server retention cap on write.
package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"wayfind/internal/types"
)

// PostgresStore persists history in the search_history table.
type PostgresStore struct {
	db    *pgxpool.Pool
	limit int
}

func NewPostgresStore(db *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{db: db, limit: ServerLimit}
}

func (s *PostgresStore) Append(ctx context.Context, e Entry) error {
	var latMin, latMax, lngMin, lngMax *float64
	if e.LatitudeRange != nil {
		latMin, latMax = &e.LatitudeRange.Min, &e.LatitudeRange.Max
	}
	if e.LongitudeRange != nil {
		lngMin, lngMax = &e.LongitudeRange.Min, &e.LongitudeRange.Max
	}

	_, err := s.db.Exec(ctx, `
		INSERT INTO search_history
			(id, location_id, location_name, address, latitude, longitude,
			 lat_min, lat_max, lng_min, lng_max, area, pincode, searched_at, search_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		e.ID, e.LocationID, e.LocationName, e.Address, e.Latitude, e.Longitude,
		latMin, latMax, lngMin, lngMax,
		e.Area, e.Pincode, e.Timestamp, e.SearchDate,
	)
	if err != nil {
		return fmt.Errorf("insert history entry: %w", err)
	}

	// Keep only the newest entries. seq is the table's bigserial insert
	// counter; it breaks ties between entries sharing a timestamp.
	_, err = s.db.Exec(ctx, `
		DELETE FROM search_history
		WHERE id NOT IN (
			SELECT id FROM search_history ORDER BY searched_at DESC, seq DESC LIMIT $1
		)`, s.limit)
	if err != nil {
		return fmt.Errorf("trim history: %w", err)
	}
	return nil
}

func (s *PostgresStore) List(ctx context.Context) ([]Entry, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, location_id, location_name, address, latitude, longitude,
		       lat_min, lat_max, lng_min, lng_max, area, pincode, searched_at, search_date
		FROM search_history
		ORDER BY searched_at DESC, seq DESC
		LIMIT $1`, s.limit)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (s *PostgresStore) Get(ctx context.Context, id string) (Entry, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, location_id, location_name, address, latitude, longitude,
		       lat_min, lat_max, lng_min, lng_max, area, pincode, searched_at, search_date
		FROM search_history
		WHERE id = $1`, id)

	e, err := scanEntry(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Entry{}, ErrNotFound
	}
	if err != nil {
		return Entry{}, fmt.Errorf("get history entry: %w", err)
	}
	return e, nil
}

func (s *PostgresStore) Clear(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, `DELETE FROM search_history`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}

func scanEntry(row pgx.Row) (Entry, error) {
	var e Entry
	var latMin, latMax, lngMin, lngMax *float64
	err := row.Scan(
		&e.ID, &e.LocationID, &e.LocationName, &e.Address, &e.Latitude, &e.Longitude,
		&latMin, &latMax, &lngMin, &lngMax, &e.Area, &e.Pincode, &e.Timestamp, &e.SearchDate,
	)
	if err != nil {
		return Entry{}, err
	}
	if latMin != nil && latMax != nil {
		e.LatitudeRange = &types.Range{Min: *latMin, Max: *latMax}
	}
	if lngMin != nil && lngMax != nil {
		e.LongitudeRange = &types.Range{Min: *lngMin, Max: *lngMax}
	}
	return e, nil
}

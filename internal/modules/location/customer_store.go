// README: Customer location store backed by PostgreSQL.
package location

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresCustomerStore persists customer location selections to the
// customer_locations table.
type PostgresCustomerStore struct {
	db *pgxpool.Pool
}

func NewPostgresCustomerStore(db *pgxpool.Pool) *PostgresCustomerStore {
	return &PostgresCustomerStore{db: db}
}

func (s *PostgresCustomerStore) SaveCustomerLocation(ctx context.Context, cl CustomerLocation) error {
	var latMin, latMax, lngMin, lngMax *float64
	if cl.LatitudeRange != nil {
		latMin, latMax = &cl.LatitudeRange.Min, &cl.LatitudeRange.Max
	}
	if cl.LongitudeRange != nil {
		lngMin, lngMax = &cl.LongitudeRange.Min, &cl.LongitudeRange.Max
	}

	_, err := s.db.Exec(ctx, `
        INSERT INTO customer_locations (
            customer_id, location_id, location_name, address,
            latitude, longitude,
            lat_min, lat_max, lng_min, lng_max,
            area, pincode, created_at
        ) VALUES (
            $1, $2, $3, $4,
            $5, $6,
            $7, $8, $9, $10,
            $11, $12, $13
        )`,
		cl.CustomerID,
		cl.LocationID,
		cl.LocationName,
		cl.Address,
		cl.Latitude, cl.Longitude,
		latMin, latMax, lngMin, lngMax,
		cl.Area,
		cl.Pincode,
		cl.Timestamp,
	)
	return err
}

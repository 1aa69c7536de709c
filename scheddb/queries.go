package scheddb

import (
	"context"
	"database/sql"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx.
type DBTX interface {
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}

// Queries bundles read access to the timetable tables.
type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

const listTrips = `
SELECT id, origin, destination, departure, duration, service,
       monday, tuesday, wednesday, thursday, friday, saturday, sunday,
       season
FROM trips
ORDER BY id
`

// ListTrips returns every stored trip in insertion order.
func (q *Queries) ListTrips(ctx context.Context) ([]TripRow, error) {
	rows, err := q.db.QueryContext(ctx, listTrips)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var trips []TripRow
	for rows.Next() {
		var t TripRow
		err := rows.Scan(
			&t.ID, &t.Origin, &t.Destination, &t.Departure, &t.Duration, &t.Service,
			&t.Monday, &t.Tuesday, &t.Wednesday, &t.Thursday, &t.Friday, &t.Saturday, &t.Sunday,
			&t.Season,
		)
		if err != nil {
			return nil, err
		}
		trips = append(trips, t)
	}
	return trips, rows.Err()
}

const listStations = `
SELECT name, is_origin, is_destination
FROM stations
ORDER BY name
`

// ListStations returns every stored station sorted by name.
func (q *Queries) ListStations(ctx context.Context) ([]StationRow, error) {
	rows, err := q.db.QueryContext(ctx, listStations)
	if err != nil {
		return nil, err
	}
	defer rows.Close() // nolint:errcheck

	var stations []StationRow
	for rows.Next() {
		var s StationRow
		if err := rows.Scan(&s.Name, &s.IsOrigin, &s.IsDestination); err != nil {
			return nil, err
		}
		stations = append(stations, s)
	}
	return stations, rows.Err()
}

// CountTrips returns the number of stored trips.
func (q *Queries) CountTrips(ctx context.Context) (int64, error) {
	var count int64
	err := q.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM trips").Scan(&count)
	return count, err
}

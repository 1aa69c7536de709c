package scheddb

import (
	"context"
	"fmt"
	"log/slog"

	"horaires.srtgn.tn/internal/logging"
)

// replaceTimetable atomically swaps the stored timetable for the given
// trips, rebuilding the stations table from the trip endpoints.
func (c *Client) replaceTimetable(ctx context.Context, trips []TripRow) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer logging.SafeRollbackWithLogging(tx,
		slog.Default().With(slog.String("component", "scheddb")),
		"replace_timetable")

	if _, err = tx.ExecContext(ctx, "DELETE FROM trips"); err != nil {
		return fmt.Errorf("error clearing trips: %w", err)
	}
	if _, err = tx.ExecContext(ctx, "DELETE FROM stations"); err != nil {
		return fmt.Errorf("error clearing stations: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO trips (
			origin, destination, departure, duration, service,
			monday, tuesday, wednesday, thursday, friday, saturday, sunday,
			season
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing statement: %w", err)
	}
	defer stmt.Close() // nolint:errcheck

	type stationFlags struct {
		isOrigin      bool
		isDestination bool
	}
	stations := make(map[string]*stationFlags)

	for _, trip := range trips {
		_, err := stmt.ExecContext(ctx,
			trip.Origin, trip.Destination, trip.Departure, trip.Duration, trip.Service,
			trip.Monday, trip.Tuesday, trip.Wednesday, trip.Thursday, trip.Friday,
			trip.Saturday, trip.Sunday, trip.Season,
		)
		if err != nil {
			return fmt.Errorf("error inserting trip: %w", err)
		}

		if stations[trip.Origin] == nil {
			stations[trip.Origin] = &stationFlags{}
		}
		stations[trip.Origin].isOrigin = true

		if stations[trip.Destination] == nil {
			stations[trip.Destination] = &stationFlags{}
		}
		stations[trip.Destination].isDestination = true
	}

	stationStmt, err := tx.PrepareContext(ctx, `
		INSERT INTO stations (name, is_origin, is_destination) VALUES (?, ?, ?);
	`)
	if err != nil {
		return fmt.Errorf("error preparing station statement: %w", err)
	}
	defer stationStmt.Close() // nolint:errcheck

	for name, flags := range stations {
		_, err := stationStmt.ExecContext(ctx, name, boolToInt(flags.isOrigin), boolToInt(flags.isDestination))
		if err != nil {
			return fmt.Errorf("error inserting station: %w", err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}

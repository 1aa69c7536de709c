package scheddb

import (
	"log/slog"

	"github.com/davecgh/go-spew/spew"

	"horaires.srtgn.tn/internal/logging"
)

// logImportSummary reports what an import produced. The spew dump of the
// first row makes malformed column mappings visible at a glance when a new
// export breaks the header layout.
func (c *Client) logImportSummary(trips []TripRow, skipped int) {
	logger := slog.Default().With(slog.String("component", "scheddb"))

	logging.LogOperation(logger, "timetable_import_complete",
		slog.Int("trips", len(trips)),
		slog.Int("rows_skipped", skipped),
		slog.Duration("duration", c.importRuntime))

	if len(trips) > 0 {
		logger.Debug("first imported row", slog.String("row", spew.Sdump(trips[0])))
	}
}

// TableCounts returns the row count of each timetable table.
func (c *Client) TableCounts() (map[string]int, error) {
	counts := make(map[string]int)

	for _, table := range []string{"stations", "trips"} {
		var query string

		// Constant query strings only; never interpolate the table name.
		switch table {
		case "stations":
			query = "SELECT COUNT(*) FROM stations"
		case "trips":
			query = "SELECT COUNT(*) FROM trips"
		}

		var count int
		if err := c.DB.QueryRow(query).Scan(&count); err != nil {
			return nil, err
		}
		counts[table] = count
	}

	return counts, nil
}

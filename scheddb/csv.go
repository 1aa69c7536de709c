package scheddb

import (
	"bytes"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"
)

// csvTrip is one row of the normalized timetable export.
type csvTrip struct {
	Origin      string `csv:"origin"`
	Destination string `csv:"destination"`
	Departure   string `csv:"departure"`
	Duration    string `csv:"duration"`
	Service     string `csv:"service"`
	Monday      string `csv:"monday"`
	Tuesday     string `csv:"tuesday"`
	Wednesday   string `csv:"wednesday"`
	Thursday    string `csv:"thursday"`
	Friday      string `csv:"friday"`
	Saturday    string `csv:"saturday"`
	Sunday      string `csv:"sunday"`
	Season      string `csv:"season"`
}

// parseTimetableCSV turns the raw CSV export into trip rows. Rows missing a
// parseable departure or duration are dropped, never stored; the count of
// dropped rows is returned for logging.
func parseTimetableCSV(data []byte) ([]TripRow, int, error) {
	// The export sometimes carries short records; don't reject the file
	// over them.
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.FieldsPerRecord = -1
		return r
	})

	var rawRows []csvTrip
	if err := gocsv.Unmarshal(bytes.NewReader(data), &rawRows); err != nil {
		return nil, 0, err
	}

	trips := make([]TripRow, 0, len(rawRows))
	skipped := 0

	for _, raw := range rawRows {
		origin := strings.TrimSpace(raw.Origin)
		destination := strings.TrimSpace(raw.Destination)
		departure, departureOK := parseMinutes(raw.Departure)
		duration, durationOK := parseMinutes(raw.Duration)

		if origin == "" || destination == "" || !departureOK || !durationOK || duration <= 0 {
			skipped++
			continue
		}

		trips = append(trips, TripRow{
			Origin:      origin,
			Destination: destination,
			Departure:   int64(departure),
			Duration:    int64(duration),
			Service:     strings.TrimSpace(raw.Service),
			Monday:      dayFlag(raw.Monday),
			Tuesday:     dayFlag(raw.Tuesday),
			Wednesday:   dayFlag(raw.Wednesday),
			Thursday:    dayFlag(raw.Thursday),
			Friday:      dayFlag(raw.Friday),
			Saturday:    dayFlag(raw.Saturday),
			Sunday:      dayFlag(raw.Sunday),
			Season:      strings.TrimSpace(raw.Season),
		})
	}

	return trips, skipped, nil
}

// parseMinutes accepts either a bare minute count ("90") or a clock time
// ("08:30", converted to minutes since midnight).
func parseMinutes(value string) (int, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}

	if strings.Contains(value, ":") {
		parts := strings.SplitN(value, ":", 2)
		h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH != nil || errM != nil || h < 0 || m < 0 || m > 59 {
			return 0, false
		}
		return h*60 + m, true
	}

	minutes, err := strconv.Atoi(value)
	if err != nil || minutes < 0 {
		return 0, false
	}
	return minutes, true
}

// dayFlag interprets the per-day operates column: the export writes "X" for
// operating days and leaves the cell empty otherwise.
func dayFlag(value string) int64 {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "x", "1", "true":
		return 1
	default:
		return 0
	}
}

package timetable

import (
	"time"

	"horaires.srtgn.tn/internal/appconf"
)

// Config holds the timetable data-source settings.
type Config struct {
	// SourceURL is either an http(s) URL or a local file path for the
	// normalized timetable CSV.
	SourceURL string
	// DataPath is the SQLite database path for the stored timetable.
	DataPath string
	// ReloadInterval is how often URL sources are re-downloaded.
	// Zero means the default of 24 hours.
	ReloadInterval time.Duration
	Env            appconf.Environment
	Verbose        bool
}

func (c Config) reloadInterval() time.Duration {
	if c.ReloadInterval <= 0 {
		return 24 * time.Hour
	}
	return c.ReloadInterval
}

package app

import (
	"log/slog"

	"horaires.srtgn.tn/internal/appconf"
	"horaires.srtgn.tn/internal/clock"
	"horaires.srtgn.tn/internal/engine"
	"horaires.srtgn.tn/internal/metrics"
	"horaires.srtgn.tn/internal/timetable"
	"horaires.srtgn.tn/internal/translate"
)

// Application holds the dependencies for our HTTP handlers, helpers,
// and middleware.
type Application struct {
	Config           appconf.Config
	TimetableConfig  timetable.Config
	Logger           *slog.Logger
	Translator       *translate.Translator
	TimetableManager *timetable.Manager
	Engine           *engine.Engine
	Clock            clock.Clock
	Metrics          *metrics.Metrics
}

// Snapshot returns the currently published timetable snapshot.
func (app *Application) Snapshot() *timetable.Snapshot {
	return app.TimetableManager.Snapshot()
}

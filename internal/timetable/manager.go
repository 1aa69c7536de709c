package timetable

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"horaires.srtgn.tn/internal/logging"
	"horaires.srtgn.tn/internal/translate"
	"horaires.srtgn.tn/scheddb"
)

// Manager owns the timetable database and publishes immutable snapshots of
// the loaded schedule. Readers grab the current snapshot and keep using it
// even while a reload swaps in a new one.
type Manager struct {
	config      Config
	translator  *translate.Translator
	scheduleDB  *scheddb.Client
	isLocalFile bool

	snapshot *Snapshot
	mutex    sync.RWMutex

	shutdownChan chan struct{}
	shutdownOnce sync.Once
	wg           sync.WaitGroup
}

// InitManager creates the timetable database, performs the initial import
// from the configured source and publishes the first snapshot. URL sources
// get a background refresh loop; local files are loaded once.
func InitManager(ctx context.Context, config Config, translator *translate.Translator) (*Manager, error) {
	isLocalFile := !strings.HasPrefix(config.SourceURL, "http://") && !strings.HasPrefix(config.SourceURL, "https://")

	client, err := scheddb.NewClient(scheddb.NewConfig(config.DataPath, config.Env, config.Verbose))
	if err != nil {
		return nil, err
	}

	manager := &Manager{
		config:       config,
		translator:   translator,
		scheduleDB:   client,
		isLocalFile:  isLocalFile,
		shutdownChan: make(chan struct{}),
	}

	if err := manager.Reload(ctx); err != nil {
		logging.SafeCloseWithLogging(client,
			slog.Default().With(slog.String("component", "timetable_manager")),
			"schedule_db")
		return nil, err
	}

	if !isLocalFile {
		manager.wg.Add(1)
		go manager.refreshLoop()
	}

	return manager, nil
}

// Snapshot returns the currently published schedule snapshot.
func (m *Manager) Snapshot() *Snapshot {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return m.snapshot
}

// Reload re-imports the timetable from the configured source and atomically
// publishes a fresh snapshot. The previous snapshot stays valid for readers
// that already hold it.
func (m *Manager) Reload(ctx context.Context) error {
	var err error
	if m.isLocalFile {
		err = m.scheduleDB.ImportFromFile(ctx, m.config.SourceURL)
	} else {
		err = m.scheduleDB.DownloadAndStore(ctx, m.config.SourceURL)
	}
	if err != nil {
		return fmt.Errorf("timetable import failed: %w", err)
	}

	snapshot, err := m.buildSnapshot(ctx)
	if err != nil {
		return err
	}

	m.setSnapshot(snapshot)
	return nil
}

func (m *Manager) setSnapshot(snapshot *Snapshot) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.snapshot = snapshot
}

func (m *Manager) buildSnapshot(ctx context.Context) (*Snapshot, error) {
	rows, err := m.scheduleDB.Queries.ListTrips(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading stored timetable: %w", err)
	}

	trips := make([]Trip, 0, len(rows))
	for _, row := range rows {
		trips = append(trips, m.rowToTrip(row))
	}

	return NewSnapshot(trips, m.translator), nil
}

func (m *Manager) rowToTrip(row scheddb.TripRow) Trip {
	seasonTag, _ := m.translator.SeasonTag(row.Season)
	trip := Trip{
		Origin:      row.Origin,
		Destination: row.Destination,
		Departure:   int(row.Departure),
		Duration:    int(row.Duration),
		Service:     ServiceClassFromRaw(row.Service),
		Season:      SeasonFromTag(seasonTag),
	}
	for i, flag := range row.DayFlags() {
		trip.Operates[i] = flag != 0
	}
	return trip
}

func (m *Manager) refreshLoop() {
	defer m.wg.Done()

	ticker := time.NewTicker(m.config.reloadInterval())
	defer ticker.Stop()

	logger := slog.Default().With(slog.String("component", "timetable_manager"))

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
			if err := m.Reload(ctx); err != nil {
				logging.LogError(logger, "scheduled timetable refresh failed", err,
					slog.String("source", m.config.SourceURL))
			}
			cancel()
		case <-m.shutdownChan:
			return
		}
	}
}

// Shutdown stops the refresh loop and closes the timetable database. It is
// safe to call more than once.
func (m *Manager) Shutdown() {
	m.shutdownOnce.Do(func() {
		close(m.shutdownChan)
		m.wg.Wait()
		logging.SafeCloseWithLogging(m.scheduleDB,
			slog.Default().With(slog.String("component", "timetable_manager")),
			"schedule_db")
	})
}

// LogStatistics writes a one-line summary of the published snapshot.
func (m *Manager) LogStatistics(logger *slog.Logger) {
	snapshot := m.Snapshot()
	if snapshot == nil {
		return
	}
	logger.Info("timetable loaded",
		slog.Int("trips", snapshot.TripCount()),
		slog.Int("stations", len(snapshot.Stations())),
		slog.Duration("import_runtime", m.scheduleDB.ImportRuntime()),
		slog.Time("loaded_at", snapshot.LoadedAt()))
}

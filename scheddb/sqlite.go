package scheddb

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"horaires.srtgn.tn/internal/appconf"
)

// createDB creates a new SQLite database with the timetable tables.
func createDB(config Config) (*sql.DB, error) {
	if config.Env == appconf.Test && config.DBPath != ":memory:" {
		log.Fatal("DB is being created in a file.", config.DBPath)
	}

	db, err := sql.Open("sqlite3", config.DBPath)
	if err != nil {
		return nil, fmt.Errorf("error opening database: %w", err)
	}

	configureConnectionPool(db, config)

	if _, err = db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		return nil, fmt.Errorf("error enabling foreign keys: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("error starting transaction: %w", err)
	}

	createTables(tx)

	_, err = tx.Exec(`
		CREATE INDEX IF NOT EXISTS idx_trips_origin ON trips(origin);
		CREATE INDEX IF NOT EXISTS idx_trips_destination ON trips(destination);
		CREATE INDEX IF NOT EXISTS idx_trips_pair ON trips(origin, destination);
	`)
	if err != nil {
		tx.Rollback() // nolint:errcheck
		return nil, fmt.Errorf("error creating indexes: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("error committing transaction: %w", err)
	}

	return db, nil
}

// configureConnectionPool sizes the connection pool for the database kind.
// An in-memory SQLite database exists per connection, so it must be pinned
// to a single one.
func configureConnectionPool(db *sql.DB, config Config) {
	if config.DBPath == ":memory:" {
		// Recycling the connection would discard the database with it.
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		return
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
}

func createTables(tx *sql.Tx) {
	createStationsTable(tx)
	createTripsTable(tx)
}

func createStationsTable(tx *sql.Tx) {
	createTable(tx, "stations", `
		CREATE TABLE IF NOT EXISTS stations (
			name TEXT PRIMARY KEY,
			is_origin INTEGER NOT NULL DEFAULT 0,
			is_destination INTEGER NOT NULL DEFAULT 0
		);
	`)
}

func createTripsTable(tx *sql.Tx) {
	createTable(tx, "trips", `
		CREATE TABLE IF NOT EXISTS trips (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			origin TEXT NOT NULL,
			destination TEXT NOT NULL,
			departure INTEGER NOT NULL,
			duration INTEGER NOT NULL,
			service TEXT NOT NULL DEFAULT '',
			monday INTEGER NOT NULL DEFAULT 0,
			tuesday INTEGER NOT NULL DEFAULT 0,
			wednesday INTEGER NOT NULL DEFAULT 0,
			thursday INTEGER NOT NULL DEFAULT 0,
			friday INTEGER NOT NULL DEFAULT 0,
			saturday INTEGER NOT NULL DEFAULT 0,
			sunday INTEGER NOT NULL DEFAULT 0,
			season TEXT NOT NULL DEFAULT ''
		);
	`)
}

// createTable creates a table in the database.
func createTable(tx *sql.Tx, tableName string, createStmt string) {
	if _, err := tx.Exec(createStmt); err != nil {
		log.Fatalf("Error creating table %s: %v", tableName, err)
	}
}

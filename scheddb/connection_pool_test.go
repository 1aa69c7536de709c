package scheddb

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "github.com/mattn/go-sqlite3"

	"horaires.srtgn.tn/internal/appconf"
)

func TestConnectionPoolPinsMemoryDatabase(t *testing.T) {
	client := newTestClient(t)

	stats := client.DB.Stats()
	assert.Equal(t, 1, stats.MaxOpenConnections)
}

func TestConnectionPoolConfiguration(t *testing.T) {
	tests := []struct {
		name            string
		dbPath          string
		expectedMaxConn int
	}{
		{"memory database", ":memory:", 1},
		{"file database", "/tmp/horaires-test.db", 25},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db, err := sql.Open("sqlite3", ":memory:")
			require.NoError(t, err)
			defer func() { _ = db.Close() }()

			configureConnectionPool(db, Config{DBPath: tc.dbPath, Env: appconf.Test})

			assert.Equal(t, tc.expectedMaxConn, db.Stats().MaxOpenConnections)
		})
	}
}
